package game

import (
	"github.com/quizlabs/triviacore/internal/bank"
)

// Config holds configuration for the game state machine
type Config struct {
	// MinPlayers is the minimum number of registered players required to
	// start the game
	MinPlayers int

	// Rounds is the number of rounds played before the game finishes
	Rounds int

	// PayoutWeights assigns a payout weight per final rank, best rank
	// first; ranks beyond the list settle with weight zero
	PayoutWeights []uint64

	// Bank supplies deterministic question selection
	Bank *bank.Bank
}
