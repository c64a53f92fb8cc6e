package models

import (
	"time"
)

// Match wraps a game state with the bookkeeping the persistence layer
// needs. The timestamps are metadata only; nothing inside GameState ever
// depends on wall-clock time.
type Match struct {
	// ID is the unique identifier for the match
	ID string `json:"id"`

	// PoolID identifies the question pool the match draws from
	PoolID string `json:"pool_id"`

	// State is the authoritative game state
	State *GameState `json:"state"`

	// EventsApplied counts events folded into State, for replay auditing
	EventsApplied uint64 `json:"events_applied"`

	// CreatedAt is when the match was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the match was last updated
	UpdatedAt time.Time `json:"updated_at"`
}
