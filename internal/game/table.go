package game

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/evaluator"
)

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

// String returns the string representation of a street
func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	default:
		return "unknown"
	}
}

// MoveName identifies a betting action
type MoveName int

const (
	Fold MoveName = iota
	Check
	Call
	Bet
	Raise
)

// String returns the string representation of a move
func (m MoveName) String() string {
	switch m {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}

// Move is one legal action for a seat. Min and Max are absolute target
// contribution totals for the street, not deltas; for fold, check and
// call they collapse to a single value.
type Move struct {
	Name MoveName
	Min  int
	Max  int
}

// ActionRecord is one applied action in the hand's append-only log
type ActionRecord struct {
	Seat   int
	Move   MoveName
	Amount int
	Street Street
}

// Payout is chips won by a seat at showdown
type Payout struct {
	Seat   int
	Amount int
}

// Table owns the state of one Hold'em table across hands: seats, button,
// board, deck, the contribution ledger and per-street betting state. A
// table is logically single-threaded; callers must serialize mutations.
type Table struct {
	players       []*Player
	blinds        BlindStructure
	deck          *deck.Deck
	dealer        int
	board         []deck.Card
	burned        []deck.Card
	ledger        *Ledger
	street        Street
	currentBets   map[int]int
	lastRaise     int
	currentBettor int
	actionLog     []ActionRecord
	handNumber    int
	logger        *log.Logger
}

// NewTable creates a table for the given players. The random source feeds
// the deck; the logger is used for hand-lifecycle diagnostics.
func NewTable(players []*Player, blinds BlindStructure, rng *rand.Rand, logger *log.Logger) *Table {
	return &Table{
		players:       players,
		blinds:        blinds,
		deck:          deck.NewDeck(rng),
		dealer:        len(players) - 1, // first StartHand rotates onto seat 0
		ledger:        NewLedger(),
		currentBets:   make(map[int]int),
		currentBettor: -1,
		logger:        logger.WithPrefix("table"),
	}
}

// StartHand rotates the button, resets per-hand state, deals hole cards
// and posts blinds.
func (t *Table) StartHand() {
	t.dealer = RotateButton(len(t.players), t.dealer)
	t.ResetForNewHand()
	t.DealHoleCards()
	t.PostBlinds()
	t.handNumber++
	t.logger.Debug("hand started",
		"hand", t.handNumber, "dealer", t.dealer, "players", len(t.activePlayers()))
}

// ResetForNewHand clears the board, burn pile, ledger and betting state
// and reshuffles the deck. Players who reach a new hand with an empty
// stack are eliminated permanently and never dealt back in; fold flags
// are cleared for everyone else.
func (t *Table) ResetForNewHand() {
	t.board = t.board[:0]
	t.burned = t.burned[:0]
	t.ledger.Reset()
	t.deck.Reset()
	t.street = Preflop
	t.actionLog = t.actionLog[:0]
	t.currentBets = make(map[int]int)
	t.lastRaise = t.blinds.BigBlind
	t.currentBettor = -1
	for _, p := range t.players {
		p.HoleCards = nil
		p.Folded = false
		if p.Stack == 0 {
			p.Eliminated = true
		}
	}
}

// activePlayers returns the players dealt into the current hand
func (t *Table) activePlayers() []*Player {
	active := make([]*Player, 0, len(t.players))
	for _, p := range t.players {
		if p.CanAct() {
			active = append(active, p)
		}
	}
	return active
}

// DealHoleCards deals two cards to every active player, one card per pass
// around the table so dealing order is fair.
func (t *Table) DealHoleCards() {
	for pass := 0; pass < 2; pass++ {
		for _, p := range t.activePlayers() {
			p.HoleCards = append(p.HoleCards, t.deck.MustDraw(1)...)
		}
	}
	for _, p := range t.activePlayers() {
		p.Stats.HandsPlayed++
	}
}

// PostBlinds posts antes from every live seat in posting order, then the
// small and big blinds, each capped at the seat's stack (short all-in
// posting is allowed). Sets the opening raise size and points the action
// at the seat after the big blind.
func (t *Table) PostBlinds() {
	order := PostingOrder(len(t.players), t.dealer)

	if t.blinds.Ante > 0 {
		for _, seat := range order {
			p := t.players[seat]
			if !p.CanAct() {
				continue
			}
			ante := min(t.blinds.Ante, p.Stack)
			if ante == 0 {
				continue
			}
			// Antes are dead money: they feed the ledger but not the
			// street bet, so they never count toward calling.
			t.mustBet(p, ante)
		}
	}

	blindSeats := make([]int, 0, 2)
	for _, seat := range order {
		if t.players[seat].CanAct() {
			blindSeats = append(blindSeats, seat)
		}
		if len(blindSeats) == 2 {
			break
		}
	}

	if len(blindSeats) >= 1 {
		seat := blindSeats[0]
		amount := min(t.blinds.SmallBlind, t.players[seat].Stack)
		t.mustBet(t.players[seat], amount)
		t.currentBets[seat] = amount
	}
	if len(blindSeats) >= 2 {
		seat := blindSeats[1]
		amount := min(t.blinds.BigBlind, t.players[seat].Stack)
		t.mustBet(t.players[seat], amount)
		t.currentBets[seat] = amount
		t.lastRaise = amount - t.blinds.SmallBlind
		t.currentBettor = (seat + 1) % len(t.players)
	}
}

// mustBet moves chips already validated against the stack into the ledger
func (t *Table) mustBet(p *Player, amount int) {
	if err := p.Bet(amount); err != nil {
		panic(fmt.Sprintf("validated bet failed: %v", err))
	}
	if err := t.ledger.AddBet(p.Seat, amount); err != nil {
		panic(fmt.Sprintf("validated contribution failed: %v", err))
	}
}

// MoveToNextStreet advances the street, burning and dealing community
// cards as required, and resets the per-street betting state.
func (t *Table) MoveToNextStreet() {
	switch t.street {
	case Preflop:
		t.burn()
		t.board = append(t.board, t.deck.MustDraw(3)...)
		t.street = Flop
	case Flop:
		t.burn()
		t.board = append(t.board, t.deck.MustDraw(1)...)
		t.street = Turn
	case Turn:
		t.burn()
		t.board = append(t.board, t.deck.MustDraw(1)...)
		t.street = River
	case River:
		t.street = Showdown
	case Showdown:
		return
	}
	t.currentBets = make(map[int]int)
	t.lastRaise = 0
	t.currentBettor = (t.dealer + 1) % len(t.players)
	t.logger.Debug("street advanced", "street", t.street, "board", t.board)
}

func (t *Table) burn() {
	t.burned = append(t.burned, t.deck.MustDraw(1)...)
}

// LegalMoves derives the legal actions for a seat from its street
// contribution, the table's current high bet and the seat's stack.
// Amounts are absolute contribution totals for the street.
func (t *Table) LegalMoves(seat int) []Move {
	p := t.players[seat]
	contributed := t.currentBets[seat]
	toCall := max(0, t.HighestStreetBet()-contributed)
	stack := p.Stack

	moves := []Move{{Name: Fold, Min: contributed, Max: contributed}}

	if toCall <= 0 {
		moves = append(moves, Move{Name: Check, Min: contributed, Max: contributed})
	} else {
		callTotal := contributed + min(toCall, stack)
		moves = append(moves, Move{Name: Call, Min: callTotal, Max: callTotal})
	}

	if stack-toCall > 0 {
		minTotal := contributed + toCall + max(t.lastRaise, t.blinds.BigBlind)
		maxTotal := contributed + stack
		if minTotal > maxTotal {
			minTotal = maxTotal
		}
		moves = append(moves, Move{Name: Raise, Min: minTotal, Max: maxTotal})
	} else if toCall == 0 && stack > 0 {
		betTotal := contributed + min(t.blinds.BigBlind, stack)
		moves = append(moves, Move{Name: Bet, Min: betTotal, Max: contributed + stack})
	}

	return moves
}

// ApplyAction validates and applies one action for a seat. The move must
// appear in the seat's legal moves and, for call, bet and raise, the
// amount must lie within the advertised range. Rejected actions leave the
// table unchanged. Every applied action is appended to the action log.
func (t *Table) ApplyAction(seat int, move MoveName, amount int) error {
	if seat < 0 || seat >= len(t.players) {
		return fmt.Errorf("%w: no seat %d", ErrInvalidInput, seat)
	}
	p := t.players[seat]
	if !p.InHand() {
		return fmt.Errorf("%w: seat %d is not in the hand", ErrIllegalAction, seat)
	}

	var legal *Move
	for _, m := range t.LegalMoves(seat) {
		if m.Name == move {
			legal = &m
			break
		}
	}
	if legal == nil {
		return fmt.Errorf("%w: %s not available to seat %d", ErrIllegalAction, move, seat)
	}

	switch move {
	case Fold:
		p.Folded = true
		amount = 0

	case Check:
		amount = 0

	case Call, Bet, Raise:
		if amount < legal.Min || amount > legal.Max {
			return fmt.Errorf("%w: %s amount %d outside [%d, %d] for seat %d",
				ErrIllegalAction, move, amount, legal.Min, legal.Max, seat)
		}
		contributed := t.currentBets[seat]
		delta := amount - contributed
		if delta > 0 {
			t.mustBet(p, delta)
			t.currentBets[seat] = amount
			if t.street == Preflop {
				p.Stats.VPIP++
			}
		}
		if (move == Bet || move == Raise) && delta > 0 {
			t.lastRaise = delta
		}
	}

	t.actionLog = append(t.actionLog, ActionRecord{Seat: seat, Move: move, Amount: amount, Street: t.street})
	t.logger.Debug("action applied", "seat", seat, "move", move, "amount", amount, "street", t.street)
	return nil
}

// showdownSeats returns the seats eligible to contest pots: unfolded,
// not eliminated, and either holding chips or having contributed this hand
// (all-in players have empty stacks but stay eligible).
func (t *Table) showdownSeats() []int {
	seats := make([]int, 0, len(t.players))
	for _, p := range t.players {
		if p.InHand() && (p.Stack > 0 || t.ledger.Contribution(p.Seat) > 0) {
			seats = append(seats, p.Seat)
		}
	}
	return seats
}

// ResolveShowdown builds the side pots from the ledger and pays each one
// to the best eligible hand(s). Tied hands split the pot with odd chips
// going to the earliest eligible seats. Pots whose contributors all folded
// are left undistributed and logged.
func (t *Table) ResolveShowdown() ([]Payout, error) {
	activeSeats := t.showdownSeats()
	pots := t.ledger.Build(activeSeats)

	if orphaned := t.ledger.Unpartitioned(activeSeats); orphaned > 0 {
		t.logger.Warn("chips with no eligible winners left undistributed",
			"amount", orphaned, "contributors", seatsAscending(t.ledger.contributions))
	}

	var payouts []Payout
	for _, pot := range pots {
		winners, err := t.potWinners(pot)
		if err != nil {
			return nil, err
		}
		if len(winners) == 0 {
			t.logger.Warn("pot has no eligible contenders", "amount", pot.Amount)
			continue
		}

		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)
		for i, seat := range winners {
			won := share
			if i < remainder {
				won++
			}
			t.players[seat].AddWinnings(won)
			t.players[seat].Stats.ShowdownsWon++
			payouts = append(payouts, Payout{Seat: seat, Amount: won})
		}
	}

	t.street = Showdown
	return payouts, nil
}

// potWinners ranks every eligible unfolded contender's best five-of-seven
// hand and returns the seats sharing the maximum, in eligibility order.
func (t *Table) potWinners(pot SidePot) ([]int, error) {
	var best evaluator.HandRank
	var winners []int
	for _, seat := range pot.EligibleSeats {
		p := t.players[seat]
		if !p.InHand() || len(p.HoleCards) != 2 {
			continue
		}
		cards := make([]deck.Card, 0, 7)
		cards = append(cards, p.HoleCards...)
		cards = append(cards, t.board...)
		rank, err := evaluator.RankHand(cards)
		if err != nil {
			return nil, fmt.Errorf("ranking seat %d: %w", seat, err)
		}
		switch {
		case len(winners) == 0 || best.Less(rank):
			best = rank
			winners = []int{seat}
		case rank.Equal(best):
			winners = append(winners, seat)
		}
	}
	return winners, nil
}

// HighestStreetBet returns the largest contribution this street
func (t *Table) HighestStreetBet() int {
	highest := 0
	for _, amount := range t.currentBets {
		if amount > highest {
			highest = amount
		}
	}
	return highest
}

// Board returns a copy of the community cards
func (t *Table) Board() []deck.Card {
	board := make([]deck.Card, len(t.board))
	copy(board, t.board)
	return board
}

// Street returns the current street
func (t *Table) Street() Street {
	return t.street
}

// Players returns the seats at the table
func (t *Table) Players() []*Player {
	return t.players
}

// Dealer returns the current button position
func (t *Table) Dealer() int {
	return t.dealer
}

// HandNumber returns the number of hands started
func (t *Table) HandNumber() int {
	return t.handNumber
}

// PotTotal returns the chips contributed so far this hand
func (t *Table) PotTotal() int {
	return t.ledger.Total()
}

// StreetBet returns a seat's contribution this street
func (t *Table) StreetBet(seat int) int {
	return t.currentBets[seat]
}

// CurrentBettor returns the seat whose turn it nominally is, or -1
func (t *Table) CurrentBettor() int {
	return t.currentBettor
}

// SetCurrentBettor moves the action pointer; the hand driver owns turn
// order beyond the defaults the table sets on blinds and street changes.
func (t *Table) SetCurrentBettor(seat int) {
	t.currentBettor = seat
}

// ActionLog returns a copy of the hand's action log
func (t *Table) ActionLog() []ActionRecord {
	logCopy := make([]ActionRecord, len(t.actionLog))
	copy(logCopy, t.actionLog)
	return logCopy
}

// Ledger exposes the contribution ledger for the hand driver
func (t *Table) Ledger() *Ledger {
	return t.ledger
}
