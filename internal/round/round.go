// Package round drives a single question's lifecycle: Open → Closed →
// Scored. Like the registry, it mutates the GameState it is handed; the
// game state machine supplies a clone so failures stay all-or-nothing.
package round

import (
	"github.com/quizlabs/triviacore/internal/models"
	"github.com/quizlabs/triviacore/internal/registry"
)

// Error is a typed error for round lifecycle failures
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	// ErrRoundAlreadyOpen indicates a live round already exists
	ErrRoundAlreadyOpen Error = "round already open"

	// ErrRoundNotClosed indicates scoring was attempted out of order
	ErrRoundNotClosed Error = "round not closed"

	// ErrNoRound indicates there is no live round to operate on
	ErrNoRound Error = "no live round"
)

// Open creates a new live round for the given question. The deadline is
// the current tick plus the question's time limit.
func Open(state *models.GameState, question *models.Question, tick uint64) error {
	if state.Round != nil {
		return ErrRoundAlreadyOpen
	}

	state.Round = &models.Round{
		Index:           state.RoundIndex,
		Question:        question,
		Status:          models.RoundStatusOpen,
		OpenedAtTick:    tick,
		DeadlineTick:    tick + question.TimeLimitTicks,
		Submissions:     map[string]*models.Submission{},
		SubmissionOrder: []string{},
	}
	state.RoundIndex++

	return nil
}

// Accept records a player's answer, delegating validation to the registry
func Accept(state *models.GameState, playerID, answer string, tick uint64) error {
	return registry.RecordSubmission(state, playerID, answer, tick)
}

// ShouldClose reports whether the live round should close at the given
// tick: either the deadline has been reached or every active player has
// already submitted, whichever comes first.
func ShouldClose(state *models.GameState, tick uint64) bool {
	if state.Round == nil || state.Round.Status != models.RoundStatusOpen {
		return false
	}

	if tick >= state.Round.DeadlineTick {
		return true
	}

	return registry.AllActiveSubmitted(state)
}

// Close transitions the live round from Open to Closed
func Close(state *models.GameState) error {
	if state.Round == nil {
		return ErrNoRound
	}
	if state.Round.Status != models.RoundStatusOpen {
		return ErrRoundNotClosed
	}

	state.Round.Status = models.RoundStatusClosed

	return nil
}

// Score transitions the closed round to Scored: each submission equal to
// the canonical answer is awarded the question's weight, everything else
// scores zero. The round is archived as a summary and destroyed; players
// who did not submit accrue the deadline tick into their cumulative
// submission total so silence never wins a tie-break.
func Score(state *models.GameState) error {
	r := state.Round
	if r == nil {
		return ErrNoRound
	}
	if r.Status != models.RoundStatusClosed {
		return ErrRoundNotClosed
	}

	summary := &models.RoundSummary{
		Index:        r.Index,
		QuestionID:   r.Question.ID,
		ClosedAtTick: state.Tick,
		Awards:       []*models.RoundAward{},
	}

	for _, playerID := range r.SubmissionOrder {
		sub := r.Submissions[playerID]
		player := state.FindPlayer(playerID)

		award := &models.RoundAward{PlayerID: playerID}
		if sub.Answer == r.Question.Answer {
			award.Correct = true
			award.Points = r.Question.Weight
			player.Score += r.Question.Weight
		}
		player.SubmitTickTotal += sub.Tick

		summary.Awards = append(summary.Awards, award)
	}

	for _, p := range state.Players {
		if !p.Active {
			continue
		}
		if _, ok := r.Submissions[p.ID]; !ok {
			p.SubmitTickTotal += r.DeadlineTick
			summary.Awards = append(summary.Awards, &models.RoundAward{PlayerID: p.ID})
		}
	}

	r.Status = models.RoundStatusScored
	state.Summaries = append(state.Summaries, summary)
	state.Round = nil

	return nil
}
