// Package registry owns player membership and per-round submission
// records. All operations mutate the GameState they are handed; the game
// state machine always hands them a clone, so a rejected operation never
// leaks a partial mutation to the caller.
package registry

import (
	"sort"

	"github.com/quizlabs/triviacore/internal/models"
)

// Error is a typed error for registry failures
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	// ErrAlreadyJoined indicates the player is already registered
	ErrAlreadyJoined Error = "player already joined"

	// ErrRegistrationClosed indicates the game is no longer accepting players
	ErrRegistrationClosed Error = "registration closed"

	// ErrUnknownPlayer indicates the player is not registered
	ErrUnknownPlayer Error = "unknown player"

	// ErrRoundNotOpen indicates there is no round accepting submissions
	ErrRoundNotOpen Error = "round not open"

	// ErrDuplicateSubmission indicates the player already submitted this round
	ErrDuplicateSubmission Error = "duplicate submission"

	// ErrDeadlineExceeded indicates the submission arrived after the deadline
	ErrDeadlineExceeded Error = "deadline exceeded"
)

// Register adds a player to the game. Registration is only open while the
// game is waiting for players.
func Register(state *models.GameState, playerID string, joinTick uint64) error {
	if state.Phase != models.PhaseWaitingForPlayers {
		return ErrRegistrationClosed
	}

	if state.FindPlayer(playerID) != nil {
		return ErrAlreadyJoined
	}

	state.Players = append(state.Players, &models.Player{
		ID:        playerID,
		JoinOrder: len(state.Players),
		JoinTick:  joinTick,
		Active:    true,
	})

	return nil
}

// RecordSubmission stores a player's answer for the live round. A
// resubmission is rejected, not overwritten.
func RecordSubmission(state *models.GameState, playerID, answer string, tick uint64) error {
	player := state.FindPlayer(playerID)
	if player == nil {
		return ErrUnknownPlayer
	}

	round := state.Round
	if round == nil || round.Status != models.RoundStatusOpen {
		return ErrRoundNotOpen
	}

	if _, ok := round.Submissions[playerID]; ok {
		return ErrDuplicateSubmission
	}

	if tick > round.DeadlineTick {
		return ErrDeadlineExceeded
	}

	round.Submissions[playerID] = &models.Submission{
		PlayerID: playerID,
		Answer:   answer,
		Tick:     tick,
		Order:    len(round.SubmissionOrder),
	}
	round.SubmissionOrder = append(round.SubmissionOrder, playerID)

	return nil
}

// AllActiveSubmitted reports whether every active registered player has a
// submission in the live round. Used for the early-close rule.
func AllActiveSubmitted(state *models.GameState) bool {
	if state.Round == nil {
		return false
	}

	for _, p := range state.Players {
		if !p.Active {
			continue
		}
		if _, ok := state.Round.Submissions[p.ID]; !ok {
			return false
		}
	}

	return len(state.Players) > 0
}

// Scoreboard returns the players ranked by score descending, then by
// cumulative submission tick ascending, then by join order ascending.
// Join order is unique, so the result is a strict total order.
func Scoreboard(state *models.GameState) []*models.Player {
	ranked := make([]*models.Player, len(state.Players))
	copy(ranked, state.Players)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].SubmitTickTotal != ranked[j].SubmitTickTotal {
			return ranked[i].SubmitTickTotal < ranked[j].SubmitTickTotal
		}
		return ranked[i].JoinOrder < ranked[j].JoinOrder
	})

	return ranked
}
