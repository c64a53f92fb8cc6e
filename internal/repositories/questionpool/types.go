package questionpool

import "github.com/quizlabs/triviacore/internal/models"

type SavePoolInput struct {
	PoolID    string
	Questions []*models.Question
}

type GetPoolInput struct {
	PoolID string
}

type GetPoolOutput struct {
	PoolID    string
	Questions []*models.Question
}

type DeletePoolInput struct {
	PoolID string
}
