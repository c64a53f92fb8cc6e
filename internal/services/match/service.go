// Package match glues the persistence layer to the deterministic core.
// It loads a match snapshot, dispatches one event through the core, and
// persists the resulting snapshot. Rejections reach the caller with the
// stored state untouched; retry policy belongs to the substrate.
package match

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/quizlabs/triviacore/internal/bank"
	"github.com/quizlabs/triviacore/internal/dispatch"
	"github.com/quizlabs/triviacore/internal/game"
	"github.com/quizlabs/triviacore/internal/models"
	matchRepo "github.com/quizlabs/triviacore/internal/repositories/match"
	poolRepo "github.com/quizlabs/triviacore/internal/repositories/questionpool"
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.MatchRepo == nil {
		return nil, ErrNilMatchRepo
	}
	if cfg.PoolRepo == nil {
		return nil, ErrNilPoolRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}

	return &service{config: cfg}, nil
}

// CreateMatch creates a match over a question pool and persists its
// initial snapshot
func (s *service) CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error) {
	pool, err := s.config.PoolRepo.GetPool(ctx, &poolRepo.GetPoolInput{
		PoolID: input.PoolID,
	})
	if err != nil {
		if errors.Is(err, poolRepo.ErrPoolNotFound) {
			return nil, ErrPoolNotFound
		}
		return nil, err
	}

	// Validate the pool against the configured round count up front
	questionBank, err := bank.New(pool.Questions)
	if err != nil {
		return nil, err
	}
	if questionBank.Size() < s.config.Rounds {
		return nil, bank.ErrQuestionBankExhausted
	}

	now := s.config.Clock.Now()
	m := &models.Match{
		ID:        s.config.UUIDGenerator.NewUUID(),
		PoolID:    input.PoolID,
		State:     models.NewGameState(input.Seed),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.config.MatchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{
		Match: m,
	})
	if err != nil {
		return nil, err
	}

	s.config.Logger.WithFields(logrus.Fields{
		"match_id": m.ID,
		"pool_id":  m.PoolID,
	}).Info("match created")

	return &CreateMatchOutput{
		Match: m,
	}, nil
}

// ProcessEvent folds one substrate event into a match's state and
// persists the resulting snapshot
func (s *service) ProcessEvent(ctx context.Context, input *ProcessEventInput) (*ProcessEventOutput, error) {
	if input.Event == nil {
		return nil, ErrNilEvent
	}

	m, err := s.config.MatchRepo.GetMatch(ctx, &matchRepo.GetMatchInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	dispatcher, err := s.dispatcherFor(ctx, m)
	if err != nil {
		return nil, err
	}

	newState, entries, err := dispatcher.Dispatch(m.State, input.Event)
	if err != nil {
		// Typed rejection from the core: the stored snapshot is untouched
		s.config.Logger.WithFields(logrus.Fields{
			"match_id":   input.MatchID,
			"event_type": input.Event.Type,
			"tick":       input.Event.Tick,
		}).WithError(err).Debug("event rejected")

		return nil, err
	}

	m.State = newState
	m.EventsApplied++
	m.UpdatedAt = s.config.Clock.Now()

	err = s.config.MatchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{
		Match: m,
	})
	if err != nil {
		return nil, err
	}

	if entries != nil {
		s.config.Logger.WithFields(logrus.Fields{
			"match_id": m.ID,
			"entries":  len(entries),
		}).Info("match settled")
	}

	return &ProcessEventOutput{
		Match:      m,
		Settlement: entries,
	}, nil
}

// GetMatch retrieves a match snapshot
func (s *service) GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error) {
	m, err := s.config.MatchRepo.GetMatch(ctx, &matchRepo.GetMatchInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	return &GetMatchOutput{
		Match: m,
	}, nil
}

// dispatcherFor builds the dispatcher for a match from its question pool
// and the configured game parameters. Construction is cheap and keeps the
// service stateless across events.
func (s *service) dispatcherFor(ctx context.Context, m *models.Match) (*dispatch.Dispatcher, error) {
	pool, err := s.config.PoolRepo.GetPool(ctx, &poolRepo.GetPoolInput{
		PoolID: m.PoolID,
	})
	if err != nil {
		if errors.Is(err, poolRepo.ErrPoolNotFound) {
			return nil, ErrPoolNotFound
		}
		return nil, err
	}

	questionBank, err := bank.New(pool.Questions)
	if err != nil {
		return nil, err
	}

	machine, err := game.New(&game.Config{
		MinPlayers:    s.config.MinPlayers,
		Rounds:        s.config.Rounds,
		PayoutWeights: s.config.PayoutWeights,
		Bank:          questionBank,
	})
	if err != nil {
		return nil, err
	}

	return dispatch.New(machine)
}
