// Package settlement converts a final scoreboard into the ordered payout
// instruction list handed to the external chain-settlement layer.
package settlement

import (
	"github.com/quizlabs/triviacore/internal/models"
)

// Build assigns ranks from the scoreboard's total order and attaches the
// payout weight configured for each rank. Positions beyond the weights
// list settle with weight zero. Pure function; the scoreboard is not
// modified.
func Build(scoreboard []*models.Player, payoutWeights []uint64) []*models.SettlementEntry {
	entries := make([]*models.SettlementEntry, 0, len(scoreboard))

	for i, p := range scoreboard {
		var weight uint64
		if i < len(payoutWeights) {
			weight = payoutWeights[i]
		}

		entries = append(entries, &models.SettlementEntry{
			PlayerID:     p.ID,
			Rank:         i + 1,
			Score:        p.Score,
			PayoutWeight: weight,
		})
	}

	return entries
}
