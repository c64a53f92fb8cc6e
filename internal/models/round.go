package models

// RoundStatus represents the lifecycle state of a round
type RoundStatus string

const (
	// RoundStatusOpen indicates the round is accepting submissions
	RoundStatusOpen RoundStatus = "open"

	// RoundStatusClosed indicates the round no longer accepts submissions
	// but has not been scored yet
	RoundStatusClosed RoundStatus = "closed"

	// RoundStatusScored indicates the round has been scored and archived
	RoundStatusScored RoundStatus = "scored"
)

// Submission records one player's answer for a round
type Submission struct {
	// PlayerID is the submitting player
	PlayerID string `json:"player_id"`

	// Answer is the submitted answer
	Answer string `json:"answer"`

	// Tick is when the submission was received
	Tick uint64 `json:"tick"`

	// Order is the submission's position within the round, starting at 0
	Order int `json:"order"`
}

// Round represents one question's lifecycle from distribution to scoring
type Round struct {
	// Index is the round number, starting at 0
	Index int `json:"index"`

	// Question is the question being played
	Question *Question `json:"question"`

	// Status is the round's lifecycle state
	Status RoundStatus `json:"status"`

	// OpenedAtTick is when the round opened
	OpenedAtTick uint64 `json:"opened_at_tick"`

	// DeadlineTick is the tick at or after which the round closes
	DeadlineTick uint64 `json:"deadline_tick"`

	// Submissions maps player ID to that player's submission
	Submissions map[string]*Submission `json:"submissions"`

	// SubmissionOrder lists player IDs in submission order; map iteration
	// is never used for anything that affects state
	SubmissionOrder []string `json:"submission_order"`
}

// RoundAward records points granted to one player when a round is scored
type RoundAward struct {
	// PlayerID is the awarded player
	PlayerID string `json:"player_id"`

	// Points is the score granted, zero for incorrect answers
	Points uint64 `json:"points"`

	// Correct indicates whether the submission matched the canonical answer
	Correct bool `json:"correct"`
}

// RoundSummary is the archived result of a scored round
type RoundSummary struct {
	// Index is the round number
	Index int `json:"index"`

	// QuestionID identifies the question that was played
	QuestionID string `json:"question_id"`

	// ClosedAtTick is when the round closed
	ClosedAtTick uint64 `json:"closed_at_tick"`

	// Awards lists per-player results in submission order
	Awards []*RoundAward `json:"awards"`
}
