package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizlabs/triviacore/internal/models"
)

func waitingState() *models.GameState {
	return models.NewGameState(1)
}

func openRoundState(playerIDs ...string) *models.GameState {
	state := models.NewGameState(1)
	for _, id := range playerIDs {
		if err := Register(state, id, 0); err != nil {
			panic(err)
		}
	}
	state.Phase = models.PhaseInProgress
	state.Round = &models.Round{
		Index:           0,
		Question:        &models.Question{ID: "q-0", Answer: "42", Weight: 10, TimeLimitTicks: 5},
		Status:          models.RoundStatusOpen,
		DeadlineTick:    5,
		Submissions:     map[string]*models.Submission{},
		SubmissionOrder: []string{},
	}
	return state
}

func TestRegister(t *testing.T) {
	state := waitingState()

	require.NoError(t, Register(state, "alice", 1))
	require.NoError(t, Register(state, "bob", 2))

	require.Len(t, state.Players, 2)
	assert.Equal(t, 0, state.Players[0].JoinOrder)
	assert.Equal(t, 1, state.Players[1].JoinOrder)
	assert.Equal(t, uint64(2), state.Players[1].JoinTick)
	assert.True(t, state.Players[0].Active)
}

func TestRegisterDuplicate(t *testing.T) {
	state := waitingState()

	require.NoError(t, Register(state, "alice", 1))
	err := Register(state, "alice", 2)
	require.ErrorIs(t, err, ErrAlreadyJoined)
	assert.Len(t, state.Players, 1)
}

func TestRegisterAfterStart(t *testing.T) {
	state := openRoundState("alice")

	err := Register(state, "bob", 3)
	require.ErrorIs(t, err, ErrRegistrationClosed)
}

func TestRecordSubmission(t *testing.T) {
	state := openRoundState("alice", "bob")

	require.NoError(t, RecordSubmission(state, "alice", "42", 2))
	require.NoError(t, RecordSubmission(state, "bob", "41", 3))

	require.Len(t, state.Round.Submissions, 2)
	assert.Equal(t, 0, state.Round.Submissions["alice"].Order)
	assert.Equal(t, 1, state.Round.Submissions["bob"].Order)
	assert.Equal(t, []string{"alice", "bob"}, state.Round.SubmissionOrder)
}

func TestRecordSubmissionUnknownPlayer(t *testing.T) {
	state := openRoundState("alice")

	err := RecordSubmission(state, "mallory", "42", 2)
	require.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestRecordSubmissionDuplicate(t *testing.T) {
	state := openRoundState("alice")

	require.NoError(t, RecordSubmission(state, "alice", "42", 2))
	err := RecordSubmission(state, "alice", "43", 3)
	require.ErrorIs(t, err, ErrDuplicateSubmission)

	// The original answer is kept, not overwritten
	assert.Equal(t, "42", state.Round.Submissions["alice"].Answer)
}

func TestRecordSubmissionAfterDeadline(t *testing.T) {
	state := openRoundState("alice")

	err := RecordSubmission(state, "alice", "42", 6)
	require.ErrorIs(t, err, ErrDeadlineExceeded)
}

func TestRecordSubmissionRoundNotOpen(t *testing.T) {
	state := openRoundState("alice")
	state.Round.Status = models.RoundStatusClosed

	err := RecordSubmission(state, "alice", "42", 2)
	require.ErrorIs(t, err, ErrRoundNotOpen)

	state.Round = nil
	err = RecordSubmission(state, "alice", "42", 2)
	require.ErrorIs(t, err, ErrRoundNotOpen)
}

func TestAllActiveSubmitted(t *testing.T) {
	state := openRoundState("alice", "bob")

	assert.False(t, AllActiveSubmitted(state))

	require.NoError(t, RecordSubmission(state, "alice", "42", 2))
	assert.False(t, AllActiveSubmitted(state))

	require.NoError(t, RecordSubmission(state, "bob", "42", 3))
	assert.True(t, AllActiveSubmitted(state))
}

func TestScoreboardTotalOrder(t *testing.T) {
	state := waitingState()
	require.NoError(t, Register(state, "alice", 1))
	require.NoError(t, Register(state, "bob", 1))
	require.NoError(t, Register(state, "carol", 2))

	// bob outscores everyone; alice and carol tie on score, alice
	// submitted earlier in aggregate
	state.Players[0].Score = 10
	state.Players[0].SubmitTickTotal = 3
	state.Players[1].Score = 20
	state.Players[1].SubmitTickTotal = 9
	state.Players[2].Score = 10
	state.Players[2].SubmitTickTotal = 7

	ranked := Scoreboard(state)
	require.Len(t, ranked, 3)
	assert.Equal(t, "bob", ranked[0].ID)
	assert.Equal(t, "alice", ranked[1].ID)
	assert.Equal(t, "carol", ranked[2].ID)
}

func TestScoreboardJoinOrderBreaksExactTies(t *testing.T) {
	state := waitingState()
	require.NoError(t, Register(state, "alice", 1))
	require.NoError(t, Register(state, "bob", 1))

	// Identical score and submission totals: join order decides
	ranked := Scoreboard(state)
	assert.Equal(t, "alice", ranked[0].ID)
	assert.Equal(t, "bob", ranked[1].ID)
}
