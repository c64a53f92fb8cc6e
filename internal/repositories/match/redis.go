package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/quizlabs/triviacore/internal/models"
)

const (
	// Key prefixes for Redis
	matchKeyPrefix   = "match:"
	activeMatchesKey = "active_matches"
)

// ErrMatchNotFound is returned when a match is not found
var ErrMatchNotFound = errors.New("match not found")

// Config holds configuration for the Redis match repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed match repository
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

// SaveMatch persists a match snapshot to Redis
func (r *redisRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	matchJSON, err := json.Marshal(input.Match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	pipe := r.client.Pipeline()

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.Match.ID)
	pipe.Set(ctx, matchKey, matchJSON, 0)

	// Track unfinished matches in the active set
	if input.Match.State != nil && input.Match.State.Phase != models.PhaseFinished {
		pipe.SAdd(ctx, activeMatchesKey, input.Match.ID)
	} else {
		pipe.SRem(ctx, activeMatchesKey, input.Match.ID)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

// GetMatch retrieves a match by ID from Redis
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.MatchID)
	matchJSON, err := r.client.Get(ctx, matchKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var m models.Match
	if err := json.Unmarshal([]byte(matchJSON), &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &m, nil
}

// DeleteMatch removes a match from Redis
func (r *redisRepository) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	// Fetch first so a missing match surfaces as ErrMatchNotFound
	if _, err := r.GetMatch(ctx, &GetMatchInput{MatchID: input.MatchID}); err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.MatchID)
	pipe.Del(ctx, matchKey)
	pipe.SRem(ctx, activeMatchesKey, input.MatchID)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	return nil
}

// GetActiveMatches retrieves all unfinished matches from Redis
func (r *redisRepository) GetActiveMatches(ctx context.Context, input *GetActiveMatchesInput) (*GetActiveMatchesOutput, error) {
	matchIDs, err := r.client.SMembers(ctx, activeMatchesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active match IDs: %w", err)
	}

	if len(matchIDs) == 0 {
		return &GetActiveMatchesOutput{
			Matches: []*models.Match{},
		}, nil
	}

	pipe := r.client.Pipeline()
	matchCommands := make(map[string]*redis.StringCmd)

	for _, matchID := range matchIDs {
		matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, matchID)
		matchCommands[matchID] = pipe.Get(ctx, matchKey)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active matches: %w", err)
	}

	matches := make([]*models.Match, 0, len(matchIDs))
	for matchID, cmd := range matchCommands {
		matchJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Match was deleted between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get match %s: %w", matchID, err)
		}

		var m models.Match
		if err := json.Unmarshal([]byte(matchJSON), &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match %s: %w", matchID, err)
		}

		matches = append(matches, &m)
	}

	return &GetActiveMatchesOutput{
		Matches: matches,
	}, nil
}
