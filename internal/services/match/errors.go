package match

// MatchError is a custom error type for match service errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMatchNotFound    MatchError = "match not found"
	ErrPoolNotFound     MatchError = "question pool not found"
	ErrNilConfig        MatchError = "config cannot be nil"
	ErrNilMatchRepo     MatchError = "match repository cannot be nil"
	ErrNilPoolRepo      MatchError = "question pool repository cannot be nil"
	ErrNilClock         MatchError = "clock cannot be nil"
	ErrNilUUIDGenerator MatchError = "UUID generator cannot be nil"
	ErrNilEvent         MatchError = "event cannot be nil"
)
