package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizlabs/triviacore/internal/models"
)

func TestBuildAssignsUniqueRanksAndWeights(t *testing.T) {
	scoreboard := []*models.Player{
		{ID: "bob", Score: 30},
		{ID: "alice", Score: 20},
		{ID: "carol", Score: 20},
		{ID: "dave", Score: 0},
	}

	entries := Build(scoreboard, []uint64{50, 30, 20})
	require.Len(t, entries, 4)

	ranks := map[int]bool{}
	for _, e := range entries {
		assert.False(t, ranks[e.Rank], "duplicate rank %d", e.Rank)
		ranks[e.Rank] = true
	}

	assert.Equal(t, &models.SettlementEntry{PlayerID: "bob", Rank: 1, Score: 30, PayoutWeight: 50}, entries[0])
	assert.Equal(t, &models.SettlementEntry{PlayerID: "alice", Rank: 2, Score: 20, PayoutWeight: 30}, entries[1])
	assert.Equal(t, &models.SettlementEntry{PlayerID: "carol", Rank: 3, Score: 20, PayoutWeight: 20}, entries[2])

	// Ranks beyond the weights list settle with weight zero
	assert.Equal(t, uint64(0), entries[3].PayoutWeight)
}

func TestBuildEmptyScoreboard(t *testing.T) {
	entries := Build(nil, []uint64{50})
	assert.Empty(t, entries)
}

func TestBuildDoesNotModifyScoreboard(t *testing.T) {
	scoreboard := []*models.Player{{ID: "alice", Score: 5}}
	Build(scoreboard, nil)

	assert.Equal(t, "alice", scoreboard[0].ID)
	assert.Equal(t, uint64(5), scoreboard[0].Score)
}
