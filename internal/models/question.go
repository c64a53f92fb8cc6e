package models

// Question represents a single entry in a question pool. Questions are
// immutable once loaded into a bank.
type Question struct {
	// ID is the unique identifier for the question
	ID string `json:"id"`

	// Prompt is the payload shown to players
	Prompt string `json:"prompt"`

	// Answer is the canonical correct answer, compared by exact match
	Answer string `json:"answer"`

	// Weight is the score awarded for a correct submission
	Weight uint64 `json:"weight"`

	// TimeLimitTicks is how many ticks a round with this question stays
	// open before the deadline closes it
	TimeLimitTicks uint64 `json:"time_limit_ticks"`
}
