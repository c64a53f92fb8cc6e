package models

// Player represents a registered participant in a game
type Player struct {
	// ID is the opaque identity handle supplied by the substrate
	ID string `json:"id"`

	// JoinOrder is the player's position in join sequence, used as the
	// final ranking tie-break
	JoinOrder int `json:"join_order"`

	// JoinTick is the tick at which the player registered
	JoinTick uint64 `json:"join_tick"`

	// Score is the player's cumulative score across scored rounds
	Score uint64 `json:"score"`

	// SubmitTickTotal accumulates the tick of each submission the player
	// made; rounds the player missed accrue the round deadline instead
	SubmitTickTotal uint64 `json:"submit_tick_total"`

	// Active indicates the player is still eligible to submit
	Active bool `json:"active"`
}
