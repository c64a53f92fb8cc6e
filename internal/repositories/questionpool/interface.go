package questionpool

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/quizlabs/triviacore/internal/repositories/questionpool Repository

import (
	"context"
)

// Repository defines the interface for question pool persistence
type Repository interface {
	// SavePool persists a question pool
	SavePool(ctx context.Context, input *SavePoolInput) error

	// GetPool retrieves a question pool by ID
	GetPool(ctx context.Context, input *GetPoolInput) (*GetPoolOutput, error)

	// DeletePool removes a question pool
	DeletePool(ctx context.Context, input *DeletePoolInput) error
}
