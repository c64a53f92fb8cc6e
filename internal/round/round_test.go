package round

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizlabs/triviacore/internal/models"
	"github.com/quizlabs/triviacore/internal/registry"
)

func testQuestion() *models.Question {
	return &models.Question{
		ID:             "q-0",
		Prompt:         "boiling point of water at sea level in celsius?",
		Answer:         "100",
		Weight:         10,
		TimeLimitTicks: 5,
	}
}

func stateWithPlayers(playerIDs ...string) *models.GameState {
	state := models.NewGameState(1)
	for _, id := range playerIDs {
		if err := registry.Register(state, id, 0); err != nil {
			panic(err)
		}
	}
	state.Phase = models.PhaseInProgress
	return state
}

func TestOpen(t *testing.T) {
	state := stateWithPlayers("alice")
	state.Tick = 3

	require.NoError(t, Open(state, testQuestion(), state.Tick))

	require.NotNil(t, state.Round)
	assert.Equal(t, models.RoundStatusOpen, state.Round.Status)
	assert.Equal(t, uint64(3), state.Round.OpenedAtTick)
	assert.Equal(t, uint64(8), state.Round.DeadlineTick)
	assert.Equal(t, 1, state.RoundIndex)
}

func TestOpenTwice(t *testing.T) {
	state := stateWithPlayers("alice")

	require.NoError(t, Open(state, testQuestion(), 0))
	err := Open(state, testQuestion(), 0)
	require.ErrorIs(t, err, ErrRoundAlreadyOpen)
}

func TestShouldCloseOnDeadline(t *testing.T) {
	state := stateWithPlayers("alice", "bob")
	require.NoError(t, Open(state, testQuestion(), 0))

	assert.False(t, ShouldClose(state, 4))
	assert.True(t, ShouldClose(state, 5))
	assert.True(t, ShouldClose(state, 9))
}

func TestShouldCloseEarlyWhenAllSubmitted(t *testing.T) {
	state := stateWithPlayers("alice", "bob")
	require.NoError(t, Open(state, testQuestion(), 0))

	require.NoError(t, Accept(state, "alice", "100", 1))
	assert.False(t, ShouldClose(state, 1))

	require.NoError(t, Accept(state, "bob", "99", 2))
	assert.True(t, ShouldClose(state, 2))
}

func TestScoreAwardsWeightForExactMatch(t *testing.T) {
	state := stateWithPlayers("alice", "bob", "carol")
	require.NoError(t, Open(state, testQuestion(), 0))

	require.NoError(t, Accept(state, "alice", "100", 1))
	require.NoError(t, Accept(state, "bob", "212", 2))
	state.Tick = 3

	require.NoError(t, Close(state))
	require.NoError(t, Score(state))

	assert.Equal(t, uint64(10), state.Players[0].Score)
	assert.Equal(t, uint64(0), state.Players[1].Score)
	assert.Equal(t, uint64(0), state.Players[2].Score)

	// Submitters accrue their submission tick; carol missed the round and
	// accrues the deadline instead
	assert.Equal(t, uint64(1), state.Players[0].SubmitTickTotal)
	assert.Equal(t, uint64(2), state.Players[1].SubmitTickTotal)
	assert.Equal(t, uint64(5), state.Players[2].SubmitTickTotal)

	// The round is archived and destroyed
	require.Nil(t, state.Round)
	require.Len(t, state.Summaries, 1)

	summary := state.Summaries[0]
	assert.Equal(t, "q-0", summary.QuestionID)
	assert.Equal(t, uint64(3), summary.ClosedAtTick)
	require.Len(t, summary.Awards, 3)
	assert.True(t, summary.Awards[0].Correct)
	assert.Equal(t, uint64(10), summary.Awards[0].Points)
	assert.False(t, summary.Awards[1].Correct)
	assert.Equal(t, uint64(0), summary.Awards[1].Points)
}

func TestScoreNeverDoubleCounts(t *testing.T) {
	state := stateWithPlayers("alice", "bob")
	q := testQuestion()
	require.NoError(t, Open(state, q, 0))

	require.NoError(t, Accept(state, "alice", "100", 1))
	require.NoError(t, Accept(state, "bob", "100", 2))

	require.NoError(t, Close(state))
	require.NoError(t, Score(state))

	// Each correct submission is worth exactly one weight increment
	var total uint64
	for _, p := range state.Players {
		total += p.Score
	}
	assert.Equal(t, q.Weight*2, total)
}

func TestScoreRequiresClosedRound(t *testing.T) {
	state := stateWithPlayers("alice")
	require.NoError(t, Open(state, testQuestion(), 0))

	err := Score(state)
	require.ErrorIs(t, err, ErrRoundNotClosed)
}

func TestCloseWithoutRound(t *testing.T) {
	state := stateWithPlayers("alice")

	require.ErrorIs(t, Close(state), ErrNoRound)
	require.ErrorIs(t, Score(state), ErrNoRound)
}
