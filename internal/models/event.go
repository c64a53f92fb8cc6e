package models

// EventType identifies the kind of event delivered by the substrate
type EventType string

const (
	// EventPlayerJoin indicates a player is joining the game
	EventPlayerJoin EventType = "player_join"

	// EventStartGame requests the transition from waiting to in progress
	EventStartGame EventType = "start_game"

	// EventSubmitAnswer carries a player's answer for the live round
	EventSubmitAnswer EventType = "submit_answer"

	// EventTick advances the logical clock
	EventTick EventType = "tick"

	// EventForceEnd terminates the game immediately
	EventForceEnd EventType = "force_end"
)

// Event is the envelope delivered by the substrate. Events arrive
// already authenticated and in a single total order; the core only
// validates structure and tick monotonicity.
type Event struct {
	// Type is the event variant
	Type EventType `json:"type"`

	// Tick is the logical time of the event, monotonically non-decreasing
	Tick uint64 `json:"tick"`

	// PlayerID is the authenticated sender, required for joins and submissions
	PlayerID string `json:"player_id,omitempty"`

	// Answer is the submitted answer, required for submissions
	Answer string `json:"answer,omitempty"`
}
