package game

// Error is a typed error for game-level transition rejections
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	// ErrNotEnoughPlayers indicates StartGame arrived below the minimum
	// player count
	ErrNotEnoughPlayers Error = "not enough players to start"

	// ErrGameAlreadyStarted indicates StartGame arrived while in progress
	ErrGameAlreadyStarted Error = "game already started"

	// ErrGameNotStarted indicates a submission arrived before StartGame
	ErrGameNotStarted Error = "game not started"

	// ErrGameFinished indicates an event arrived after the game finished
	ErrGameFinished Error = "game finished"

	// ErrUnsupportedEvent indicates an event type the machine has no
	// transition for
	ErrUnsupportedEvent Error = "unsupported event type"

	// ErrNilConfig indicates the machine was constructed without a config
	ErrNilConfig Error = "config cannot be nil"

	// ErrNilBank indicates the machine was constructed without a question bank
	ErrNilBank Error = "question bank cannot be nil"

	// ErrInvalidRounds indicates a non-positive round count
	ErrInvalidRounds Error = "round count must be positive"

	// ErrInvalidMinPlayers indicates a non-positive minimum player count
	ErrInvalidMinPlayers Error = "minimum player count must be positive"
)
