package game

import "github.com/lox/holdem-engine/internal/deck"

// View is the read-only snapshot a decision-maker sees for one seat.
// It carries no references into table state.
type View struct {
	Seat      int
	HoleCards []deck.Card
	Board     []deck.Card
	Street    Street
	Pot       int
	Stack     int
	ToCall    int
	BigBlind  int
	Opponents int
}

// Decision is an agent's chosen action. Amount is the absolute
// contribution total for the street and is ignored for fold and check.
type Decision struct {
	Move   MoveName
	Amount int
}

// Agent makes decisions for a seat given its view and legal moves. The
// engine treats every seat uniformly through this interface; agents are
// black boxes that consume legal-move lists and produce one action.
type Agent interface {
	Name() string
	Decide(view View, legal []Move) Decision
}

// PlayerView builds the decision snapshot for a seat
func (t *Table) PlayerView(seat int) View {
	p := t.players[seat]
	opponents := 0
	for _, other := range t.players {
		if other.Seat != seat && other.InHand() {
			opponents++
		}
	}
	hole := make([]deck.Card, len(p.HoleCards))
	copy(hole, p.HoleCards)
	return View{
		Seat:      seat,
		HoleCards: hole,
		Board:     t.Board(),
		Street:    t.street,
		Pot:       t.ledger.Total(),
		Stack:     p.Stack,
		ToCall:    max(0, t.HighestStreetBet()-t.currentBets[seat]),
		BigBlind:  t.blinds.BigBlind,
		Opponents: opponents,
	}
}

// CallingBot checks when it can and calls when it must. Used as the
// stand-in for human seats in non-interactive runs and as test filler.
type CallingBot struct{ BotName string }

// Name returns the bot's name
func (b *CallingBot) Name() string { return b.BotName }

// Decide always prefers check, then call, then fold
func (b *CallingBot) Decide(_ View, legal []Move) Decision {
	for _, m := range legal {
		if m.Name == Check {
			return Decision{Move: Check}
		}
	}
	for _, m := range legal {
		if m.Name == Call {
			return Decision{Move: Call, Amount: m.Min}
		}
	}
	return Decision{Move: Fold}
}

// FoldingBot folds whenever facing a bet and checks otherwise
type FoldingBot struct{ BotName string }

// Name returns the bot's name
func (b *FoldingBot) Name() string { return b.BotName }

// Decide checks if free, folds otherwise
func (b *FoldingBot) Decide(_ View, legal []Move) Decision {
	for _, m := range legal {
		if m.Name == Check {
			return Decision{Move: Check}
		}
	}
	return Decision{Move: Fold}
}
