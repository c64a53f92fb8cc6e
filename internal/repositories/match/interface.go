package match

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/quizlabs/triviacore/internal/repositories/match Repository

import (
	"context"

	"github.com/quizlabs/triviacore/internal/models"
)

// Repository defines the interface for match snapshot persistence
type Repository interface {
	// SaveMatch persists a match snapshot
	SaveMatch(ctx context.Context, input *SaveMatchInput) error

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error)

	// DeleteMatch removes a match
	DeleteMatch(ctx context.Context, input *DeleteMatchInput) error

	// GetActiveMatches retrieves all matches that have not finished
	GetActiveMatches(ctx context.Context, input *GetActiveMatchesInput) (*GetActiveMatchesOutput, error)
}
