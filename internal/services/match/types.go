package match

import (
	"github.com/sirupsen/logrus"

	"github.com/quizlabs/triviacore/internal/common/clock"
	"github.com/quizlabs/triviacore/internal/common/uuid"
	"github.com/quizlabs/triviacore/internal/models"
	matchRepo "github.com/quizlabs/triviacore/internal/repositories/match"
	poolRepo "github.com/quizlabs/triviacore/internal/repositories/questionpool"
)

// Config holds configuration for the match service
type Config struct {
	// MinPlayers is the minimum number of players required to start a match
	MinPlayers int

	// Rounds is the number of rounds per match
	Rounds int

	// PayoutWeights assigns a payout weight per final rank, best rank first
	PayoutWeights []uint64

	// Repository dependencies
	MatchRepo matchRepo.Repository
	PoolRepo  poolRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *logrus.Logger
}

// CreateMatchInput contains parameters for creating a match
type CreateMatchInput struct {
	// PoolID identifies the question pool the match draws from
	PoolID string

	// Seed drives deterministic question selection, distributed by the
	// substrate so every replaying party sees the same value
	Seed uint64
}

// CreateMatchOutput contains the result of creating a match
type CreateMatchOutput struct {
	// Match is the newly created match snapshot
	Match *models.Match
}

// ProcessEventInput contains parameters for processing one event
type ProcessEventInput struct {
	// MatchID is the match the event belongs to
	MatchID string

	// Event is the substrate event envelope
	Event *models.Event
}

// ProcessEventOutput contains the result of processing one event
type ProcessEventOutput struct {
	// Match is the match snapshot after the event was applied
	Match *models.Match

	// Settlement holds the final payout entries; non-nil exactly once,
	// on the event that finished the match
	Settlement []*models.SettlementEntry
}

// GetMatchInput contains parameters for retrieving a match
type GetMatchInput struct {
	// MatchID is the unique identifier for the match
	MatchID string
}

// GetMatchOutput contains the result of retrieving a match
type GetMatchOutput struct {
	// Match is the retrieved match snapshot
	Match *models.Match
}
