package questionpool

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/quizlabs/triviacore/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func testQuestions() []*models.Question {
	return []*models.Question{
		{
			ID:             "q-1",
			Prompt:         "chemical symbol for gold?",
			Answer:         "Au",
			Weight:         10,
			TimeLimitTicks: 5,
		},
		{
			ID:             "q-2",
			Prompt:         "speed of light in km/s, rounded?",
			Answer:         "300000",
			Weight:         20,
			TimeLimitTicks: 8,
		},
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPool() {
	err := s.repo.SavePool(context.Background(), &SavePoolInput{
		PoolID:    "test-pool-id",
		Questions: testQuestions(),
	})
	s.Require().NoError(err)

	result, err := s.repo.GetPool(context.Background(), &GetPoolInput{
		PoolID: "test-pool-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(result)

	s.Equal("test-pool-id", result.PoolID)
	s.Require().Len(result.Questions, 2)
	s.Equal("q-1", result.Questions[0].ID)
	s.Equal("Au", result.Questions[0].Answer)
	s.Equal(uint64(10), result.Questions[0].Weight)
	s.Equal("q-2", result.Questions[1].ID)
	s.Equal(uint64(8), result.Questions[1].TimeLimitTicks)
}

func (s *RedisRepositoryTestSuite) TestSavePoolRejectsEmpty() {
	err := s.repo.SavePool(context.Background(), &SavePoolInput{
		PoolID:    "test-pool-id",
		Questions: nil,
	})
	s.Require().Error(err)
}

func (s *RedisRepositoryTestSuite) TestGetPoolNotFound() {
	_, err := s.repo.GetPool(context.Background(), &GetPoolInput{
		PoolID: "missing-pool-id",
	})
	s.Require().Error(err)
	s.Equal(ErrPoolNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestDeletePool() {
	err := s.repo.SavePool(context.Background(), &SavePoolInput{
		PoolID:    "test-pool-id",
		Questions: testQuestions(),
	})
	s.Require().NoError(err)

	err = s.repo.DeletePool(context.Background(), &DeletePoolInput{
		PoolID: "test-pool-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetPool(context.Background(), &GetPoolInput{
		PoolID: "test-pool-id",
	})
	s.Require().Error(err)
	s.Equal(ErrPoolNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestDeletePoolNotFound() {
	err := s.repo.DeletePool(context.Background(), &DeletePoolInput{
		PoolID: "missing-pool-id",
	})
	s.Require().Error(err)
	s.Equal(ErrPoolNotFound, err)
}
