package models

// Phase represents the current phase of a game
type Phase string

const (
	// PhaseWaitingForPlayers indicates the game is accepting registrations
	PhaseWaitingForPlayers Phase = "waiting_for_players"

	// PhaseInProgress indicates rounds are being played
	PhaseInProgress Phase = "in_progress"

	// PhaseFinished indicates the game has ended and settled
	PhaseFinished Phase = "finished"
)

// GameState is the single authoritative state of one game. It is the only
// value the substrate persists and replays; every transition produces a
// new state and leaves the prior one untouched.
type GameState struct {
	// Phase is the current game phase
	Phase Phase `json:"phase"`

	// Seed drives deterministic question selection, supplied by the
	// substrate at game creation
	Seed uint64 `json:"seed"`

	// Tick is the logical clock, advanced only by dispatched events
	Tick uint64 `json:"tick"`

	// Players lists registered players in join order
	Players []*Player `json:"players"`

	// Round is the live round; non-nil exactly while Phase is InProgress
	Round *Round `json:"round,omitempty"`

	// RoundIndex is the index the next opened round will get
	RoundIndex int `json:"round_index"`

	// Summaries lists scored rounds in play order
	Summaries []*RoundSummary `json:"summaries"`

	// Settlement holds the final payout entries, set exactly once on the
	// transition to Finished
	Settlement []*SettlementEntry `json:"settlement,omitempty"`
}

// NewGameState creates the initial state for a game with the given seed
func NewGameState(seed uint64) *GameState {
	return &GameState{
		Phase:     PhaseWaitingForPlayers,
		Seed:      seed,
		Players:   []*Player{},
		Summaries: []*RoundSummary{},
	}
}

// Clone returns a deep copy of the state. Transitions mutate a clone and
// return it, which keeps failed transitions all-or-nothing.
func (s *GameState) Clone() *GameState {
	c := &GameState{
		Phase:      s.Phase,
		Seed:       s.Seed,
		Tick:       s.Tick,
		RoundIndex: s.RoundIndex,
		Players:    make([]*Player, len(s.Players)),
		Summaries:  make([]*RoundSummary, len(s.Summaries)),
	}

	for i, p := range s.Players {
		cp := *p
		c.Players[i] = &cp
	}

	// Summaries and settlement entries are immutable once appended, so
	// sharing the elements is safe.
	copy(c.Summaries, s.Summaries)

	if s.Settlement != nil {
		c.Settlement = make([]*SettlementEntry, len(s.Settlement))
		copy(c.Settlement, s.Settlement)
	}

	if s.Round != nil {
		r := &Round{
			Index:           s.Round.Index,
			Question:        s.Round.Question,
			Status:          s.Round.Status,
			OpenedAtTick:    s.Round.OpenedAtTick,
			DeadlineTick:    s.Round.DeadlineTick,
			Submissions:     make(map[string]*Submission, len(s.Round.Submissions)),
			SubmissionOrder: make([]string, len(s.Round.SubmissionOrder)),
		}
		for id, sub := range s.Round.Submissions {
			cs := *sub
			r.Submissions[id] = &cs
		}
		copy(r.SubmissionOrder, s.Round.SubmissionOrder)
		c.Round = r
	}

	return c
}

// FindPlayer returns the registered player with the given ID, or nil
func (s *GameState) FindPlayer(playerID string) *Player {
	for _, p := range s.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}
