package questionpool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/quizlabs/triviacore/internal/models"
)

// Key prefix for Redis
const poolKeyPrefix = "pool:"

// ErrPoolNotFound is returned when a question pool is not found
var ErrPoolNotFound = errors.New("question pool not found")

// Config holds configuration for the Redis question pool repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed question pool repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SavePool persists a question pool to Redis
func (r *redisRepository) SavePool(ctx context.Context, input *SavePoolInput) error {
	if input == nil || input.PoolID == "" {
		return errors.New("input and pool ID cannot be empty")
	}

	if len(input.Questions) == 0 {
		return errors.New("questions cannot be empty")
	}

	poolJSON, err := json.Marshal(input.Questions)
	if err != nil {
		return fmt.Errorf("failed to marshal question pool: %w", err)
	}

	poolKey := fmt.Sprintf("%s%s", poolKeyPrefix, input.PoolID)
	if err := r.client.Set(ctx, poolKey, poolJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save question pool: %w", err)
	}

	return nil
}

// GetPool retrieves a question pool by ID from Redis
func (r *redisRepository) GetPool(ctx context.Context, input *GetPoolInput) (*GetPoolOutput, error) {
	if input == nil || input.PoolID == "" {
		return nil, errors.New("input and pool ID cannot be empty")
	}

	poolKey := fmt.Sprintf("%s%s", poolKeyPrefix, input.PoolID)
	poolJSON, err := r.client.Get(ctx, poolKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPoolNotFound
		}
		return nil, fmt.Errorf("failed to get question pool: %w", err)
	}

	var questions []*models.Question
	if err := json.Unmarshal([]byte(poolJSON), &questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question pool: %w", err)
	}

	return &GetPoolOutput{
		PoolID:    input.PoolID,
		Questions: questions,
	}, nil
}

// DeletePool removes a question pool from Redis
func (r *redisRepository) DeletePool(ctx context.Context, input *DeletePoolInput) error {
	if input == nil || input.PoolID == "" {
		return errors.New("input and pool ID cannot be empty")
	}

	poolKey := fmt.Sprintf("%s%s", poolKeyPrefix, input.PoolID)
	deleted, err := r.client.Del(ctx, poolKey).Result()
	if err != nil {
		return fmt.Errorf("failed to delete question pool: %w", err)
	}

	if deleted == 0 {
		return ErrPoolNotFound
	}

	return nil
}
