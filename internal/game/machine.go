// Package game implements the game state machine: it orchestrates
// sequential rounds, aggregates scores, and decides termination and
// ranking. Apply is a pure function of (prior state, event); a rejected
// event returns the prior state untouched.
package game

import (
	"github.com/quizlabs/triviacore/internal/models"
	"github.com/quizlabs/triviacore/internal/registry"
	"github.com/quizlabs/triviacore/internal/round"
	"github.com/quizlabs/triviacore/internal/settlement"
)

// Machine drives game transitions. It holds only immutable configuration;
// all mutable state lives in the GameState threaded through Apply.
type Machine struct {
	cfg *Config
}

// New creates a new game state machine
func New(cfg *Config) (*Machine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Bank == nil {
		return nil, ErrNilBank
	}
	if cfg.Rounds < 1 {
		return nil, ErrInvalidRounds
	}
	if cfg.MinPlayers < 1 {
		return nil, ErrInvalidMinPlayers
	}

	return &Machine{cfg: cfg}, nil
}

// Apply folds one event into the state. On success it returns a new
// state; the input state is never modified. On the transition to Finished
// it also returns the settlement entries, exactly once per game. On
// failure it returns the input state unchanged with a typed rejection.
func (m *Machine) Apply(state *models.GameState, event *models.Event) (*models.GameState, []*models.SettlementEntry, error) {
	if state.Phase == models.PhaseFinished {
		return state, nil, ErrGameFinished
	}

	next := state.Clone()
	next.Tick = event.Tick

	var entries []*models.SettlementEntry
	var err error

	switch event.Type {
	case models.EventPlayerJoin:
		err = registry.Register(next, event.PlayerID, event.Tick)

	case models.EventStartGame:
		err = m.startGame(next)

	case models.EventSubmitAnswer:
		entries, err = m.submitAnswer(next, event)

	case models.EventTick:
		entries, err = m.advanceTick(next)

	case models.EventForceEnd:
		entries, err = m.forceEnd(next)

	default:
		err = ErrUnsupportedEvent
	}

	if err != nil {
		return state, nil, err
	}

	return next, entries, nil
}

func (m *Machine) startGame(next *models.GameState) error {
	if next.Phase != models.PhaseWaitingForPlayers {
		return ErrGameAlreadyStarted
	}
	if len(next.Players) < m.cfg.MinPlayers {
		return ErrNotEnoughPlayers
	}

	if err := m.openRound(next); err != nil {
		return err
	}

	next.Phase = models.PhaseInProgress
	return nil
}

func (m *Machine) submitAnswer(next *models.GameState, event *models.Event) ([]*models.SettlementEntry, error) {
	if next.Phase != models.PhaseInProgress {
		return nil, ErrGameNotStarted
	}

	if err := round.Accept(next, event.PlayerID, event.Answer, event.Tick); err != nil {
		return nil, err
	}

	// Early close: if this submission completed the set, the round closes
	// without waiting out the deadline.
	if round.ShouldClose(next, event.Tick) {
		return m.closeAndAdvance(next)
	}

	return nil, nil
}

func (m *Machine) advanceTick(next *models.GameState) ([]*models.SettlementEntry, error) {
	if next.Phase != models.PhaseInProgress {
		return nil, nil
	}

	if round.ShouldClose(next, next.Tick) {
		return m.closeAndAdvance(next)
	}

	return nil, nil
}

func (m *Machine) forceEnd(next *models.GameState) ([]*models.SettlementEntry, error) {
	if next.Round != nil && next.Round.Status == models.RoundStatusOpen {
		if err := round.Close(next); err != nil {
			return nil, err
		}
		if err := round.Score(next); err != nil {
			return nil, err
		}
	}

	return m.finalize(next), nil
}

// closeAndAdvance scores the live round, then either opens the next round
// or finalizes the game when the configured round count is reached.
func (m *Machine) closeAndAdvance(next *models.GameState) ([]*models.SettlementEntry, error) {
	if err := round.Close(next); err != nil {
		return nil, err
	}
	if err := round.Score(next); err != nil {
		return nil, err
	}

	if next.RoundIndex >= m.cfg.Rounds {
		return m.finalize(next), nil
	}

	if err := m.openRound(next); err != nil {
		return nil, err
	}

	return nil, nil
}

func (m *Machine) openRound(next *models.GameState) error {
	question, err := m.cfg.Bank.Select(next.Seed, next.RoundIndex)
	if err != nil {
		return err
	}

	return round.Open(next, question, next.Tick)
}

func (m *Machine) finalize(next *models.GameState) []*models.SettlementEntry {
	scoreboard := registry.Scoreboard(next)
	entries := settlement.Build(scoreboard, m.cfg.PayoutWeights)

	next.Settlement = entries
	next.Phase = models.PhaseFinished

	return entries
}
