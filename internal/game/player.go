package game

import (
	"fmt"

	"github.com/lox/holdem-engine/internal/deck"
)

// PlayerKind tags who drives a seat's decisions. The table treats every
// seat uniformly; only the decision layer cares about the kind.
type PlayerKind int

const (
	Human PlayerKind = iota
	AI
)

// String returns the string representation of a player kind
func (k PlayerKind) String() string {
	if k == Human {
		return "human"
	}
	return "ai"
}

// PlayerStats tracks per-player counters across hands
type PlayerStats struct {
	HandsPlayed  int
	VPIP         int // Hands where the player voluntarily put chips in preflop
	ShowdownsWon int
}

// Player represents a seat at the table. The stack is the single source
// of truth for a player's chips and is only mutated through Bet and
// AddWinnings. Folded is per-hand state; Eliminated is permanent once a
// player starts a hand with an empty stack.
type Player struct {
	Seat       int
	Name       string
	Kind       PlayerKind
	Profile    string
	Stack      int
	HoleCards  []deck.Card
	Folded     bool
	Eliminated bool
	Stats      PlayerStats
}

// NewPlayer creates a player with a starting stack
func NewPlayer(seat int, name string, kind PlayerKind, stack int) *Player {
	return &Player{Seat: seat, Name: name, Kind: kind, Stack: stack}
}

// Bet removes amount from the player's stack
func (p *Player) Bet(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: bet amount %d is negative", ErrInvalidInput, amount)
	}
	if amount > p.Stack {
		return fmt.Errorf("%w: bet %d exceeds stack %d for seat %d", ErrInsufficientStack, amount, p.Stack, p.Seat)
	}
	p.Stack -= amount
	return nil
}

// AddWinnings credits won chips to the player's stack
func (p *Player) AddWinnings(amount int) {
	p.Stack += amount
}

// InHand reports whether the player is still contesting the current hand
func (p *Player) InHand() bool {
	return !p.Folded && !p.Eliminated
}

// CanAct reports whether the player can still take betting actions
// (in the hand with chips behind)
func (p *Player) CanAct() bool {
	return p.InHand() && p.Stack > 0
}
