package models

// SettlementEntry is one line of the final payout instruction list handed
// to the external chain-settlement layer. Produced once, on the transition
// to Finished; immutable thereafter.
type SettlementEntry struct {
	// PlayerID is the player being settled
	PlayerID string `json:"player_id"`

	// Rank is the player's final rank, starting at 1; ranks are unique
	Rank int `json:"rank"`

	// Score is the player's final score
	Score uint64 `json:"score"`

	// PayoutWeight is the share of the pot assigned to this rank
	PayoutWeight uint64 `json:"payout_weight"`
}
