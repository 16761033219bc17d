package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// GameEngine drives complete hands against a set of agents: it owns turn
// order, betting-round completion, the fold-win short circuit, the all-in
// runout and showdown resolution. The table itself only exposes the state
// transitions; this loop decides when each one fires.
type GameEngine struct {
	table         *Table
	agents        map[int]Agent
	logger        *log.Logger
	clock         quartz.Clock
	actionTimeout time.Duration
}

// EngineOption configures a GameEngine
type EngineOption func(*GameEngine)

// WithClock substitutes the clock used for decision timeouts (mockable
// in tests)
func WithClock(clock quartz.Clock) EngineOption {
	return func(e *GameEngine) { e.clock = clock }
}

// WithActionTimeout bounds how long an agent may take per decision; a
// timed-out agent folds. Zero disables the timeout.
func WithActionTimeout(timeout time.Duration) EngineOption {
	return func(e *GameEngine) { e.actionTimeout = timeout }
}

// NewGameEngine creates an engine for the table with one agent per seat
func NewGameEngine(table *Table, agents map[int]Agent, logger *log.Logger, opts ...EngineOption) *GameEngine {
	e := &GameEngine{
		table:  table,
		agents: agents,
		logger: logger.WithPrefix("engine"),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// HandResult summarizes one completed hand
type HandResult struct {
	HandNumber int
	Payouts    []Payout
	Showdown   bool
	Actions    []ActionRecord
}

// PlayHand runs one complete hand and returns its result. Chip
// conservation is checked before returning: chips only move between
// stacks and the pot, never appear or vanish (undistributed orphan pots
// excepted and accounted for).
func (e *GameEngine) PlayHand() (*HandResult, error) {
	chipsBefore := e.stackTotal()

	e.table.StartHand()

	for e.table.Street() != Showdown {
		if e.unfoldedCount() <= 1 {
			break
		}
		if err := e.playStreet(); err != nil {
			return nil, err
		}
		if e.unfoldedCount() <= 1 {
			break
		}
		e.table.MoveToNextStreet()
	}

	result := &HandResult{HandNumber: e.table.HandNumber()}

	if e.unfoldedCount() <= 1 && e.table.Street() != Showdown {
		// Everyone else folded: the last player takes the pot uncontested,
		// no cards shown.
		winner := e.lastUnfolded()
		amount := e.table.PotTotal()
		winner.AddWinnings(amount)
		result.Payouts = []Payout{{Seat: winner.Seat, Amount: amount}}
		e.logger.Info("hand won uncontested",
			"hand", result.HandNumber, "winner", winner.Name, "amount", amount)
	} else {
		payouts, err := e.table.ResolveShowdown()
		if err != nil {
			return nil, err
		}
		result.Payouts = payouts
		result.Showdown = true
		e.logger.Info("hand resolved at showdown",
			"hand", result.HandNumber, "payouts", len(payouts), "board", e.table.Board())
	}

	result.Actions = e.table.ActionLog()

	// Chips paid out must balance chips wagered; the only legitimate gap
	// is an orphaned pot whose contributors all folded.
	orphaned := 0
	if result.Showdown {
		orphaned = e.table.Ledger().Unpartitioned(e.table.showdownSeats())
	}
	if after := e.stackTotal() + orphaned; after != chipsBefore {
		return nil, fmt.Errorf("chip conservation violated: had %d, now %d (orphaned %d)",
			chipsBefore, after, orphaned)
	}

	return result, nil
}

// playStreet runs one betting round: action proceeds from the table's
// pointer, each actor decides under the timeout, and the round ends when
// every player who can act has acted and matched the top bet.
func (e *GameEngine) playStreet() error {
	players := e.table.Players()
	n := len(players)
	acted := make(map[int]bool, n)

	from := e.table.CurrentBettor()
	if from < 0 {
		from = (e.table.Dealer() + 1) % n
	}

	for {
		if e.unfoldedCount() <= 1 {
			return nil
		}
		seat, ok := e.nextActor(from, acted)
		if !ok {
			return nil
		}
		e.table.SetCurrentBettor(seat)

		agent := e.agents[seat]
		if agent == nil {
			return fmt.Errorf("no agent for seat %d", seat)
		}

		view := e.table.PlayerView(seat)
		legal := e.table.LegalMoves(seat)
		decision := e.decide(agent, view, legal)

		highBefore := e.table.HighestStreetBet()
		if err := e.table.ApplyAction(seat, decision.Move, decision.Amount); err != nil {
			// A misbehaving agent folds rather than stalling the hand.
			e.logger.Error("agent decision rejected, folding",
				"seat", seat, "agent", agent.Name(), "error", err)
			if foldErr := e.table.ApplyAction(seat, Fold, 0); foldErr != nil {
				return foldErr
			}
		}

		if e.table.StreetBet(seat) > highBefore {
			// A raise reopens the action for everyone behind.
			acted = make(map[int]bool, n)
		}
		acted[seat] = true
		from = (seat + 1) % n
	}
}

// nextActor scans the table from the given seat for a player who still
// owes action: anyone who can act and either has not acted this round or
// no longer matches the top bet.
func (e *GameEngine) nextActor(from int, acted map[int]bool) (int, bool) {
	players := e.table.Players()
	n := len(players)
	high := e.table.HighestStreetBet()
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		p := players[seat]
		if !p.CanAct() {
			continue
		}
		if !acted[seat] || e.table.StreetBet(seat) < high {
			return seat, true
		}
	}
	return -1, false
}

// decide asks the agent for a decision, folding it if the timeout fires
// first.
func (e *GameEngine) decide(agent Agent, view View, legal []Move) Decision {
	if e.actionTimeout <= 0 {
		return agent.Decide(view, legal)
	}

	decisionCh := make(chan Decision, 1)
	go func() {
		decisionCh <- agent.Decide(view, legal)
	}()

	timedOut := make(chan struct{})
	timer := e.clock.AfterFunc(e.actionTimeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case decision := <-decisionCh:
		return decision
	case <-timedOut:
		e.logger.Warn("decision timeout, folding", "agent", agent.Name(), "seat", view.Seat)
		return Decision{Move: Fold}
	}
}

// unfoldedCount returns how many players are still contesting the hand
func (e *GameEngine) unfoldedCount() int {
	count := 0
	for _, p := range e.table.Players() {
		if p.InHand() && (p.Stack > 0 || e.table.Ledger().Contribution(p.Seat) > 0) {
			count++
		}
	}
	return count
}

// lastUnfolded returns the sole remaining player in the hand
func (e *GameEngine) lastUnfolded() *Player {
	for _, p := range e.table.Players() {
		if p.InHand() && (p.Stack > 0 || e.table.Ledger().Contribution(p.Seat) > 0) {
			return p
		}
	}
	return nil
}

// stackTotal sums every player stack; measured between hands when the
// pot is settled, it is the table's conserved chip count.
func (e *GameEngine) stackTotal() int {
	total := 0
	for _, p := range e.table.Players() {
		total += p.Stack
	}
	return total
}
