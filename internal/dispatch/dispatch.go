// Package dispatch maps inbound event envelopes onto game state machine
// transitions. It validates structural well-formedness before dispatch;
// malformed events are rejected without touching the state.
package dispatch

import (
	"github.com/quizlabs/triviacore/internal/game"
	"github.com/quizlabs/triviacore/internal/models"
)

// Error is a typed error for dispatcher-level failures
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	// ErrMalformedEvent indicates the envelope failed structural validation
	ErrMalformedEvent Error = "malformed event"

	// ErrNilMachine indicates the dispatcher was constructed without a machine
	ErrNilMachine Error = "machine cannot be nil"
)

// Dispatcher validates envelopes and forwards them to the state machine
type Dispatcher struct {
	machine *game.Machine
}

// New creates a new dispatcher over the given machine
func New(machine *game.Machine) (*Dispatcher, error) {
	if machine == nil {
		return nil, ErrNilMachine
	}

	return &Dispatcher{machine: machine}, nil
}

// Dispatch is the single entry point for the substrate: it validates the
// envelope and applies it to the state. The returned settlement entries
// are non-nil exactly once, on the transition to Finished.
func (d *Dispatcher) Dispatch(state *models.GameState, event *models.Event) (*models.GameState, []*models.SettlementEntry, error) {
	if err := validate(state, event); err != nil {
		return state, nil, err
	}

	return d.machine.Apply(state, event)
}

// validate checks required fields and tick monotonicity. Semantic guards
// (phase, membership, deadlines) belong to the state machine.
func validate(state *models.GameState, event *models.Event) error {
	if event == nil {
		return ErrMalformedEvent
	}

	if event.Tick < state.Tick {
		return ErrMalformedEvent
	}

	switch event.Type {
	case models.EventPlayerJoin:
		if event.PlayerID == "" {
			return ErrMalformedEvent
		}
	case models.EventSubmitAnswer:
		if event.PlayerID == "" || event.Answer == "" {
			return ErrMalformedEvent
		}
	case models.EventStartGame, models.EventTick, models.EventForceEnd:
	default:
		return ErrMalformedEvent
	}

	return nil
}
