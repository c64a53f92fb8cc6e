package match

import "context"

// Service defines the interface the substrate integration uses to drive
// matches through the deterministic core
type Service interface {
	// CreateMatch creates a match over a question pool and persists its
	// initial snapshot
	CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error)

	// ProcessEvent folds one substrate event into a match's state and
	// persists the resulting snapshot
	ProcessEvent(ctx context.Context, input *ProcessEventInput) (*ProcessEventOutput, error)

	// GetMatch retrieves a match snapshot
	GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error)
}
