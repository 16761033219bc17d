package game

import (
	"fmt"
	"sort"
)

// SidePot is one layer of the pot with the seats that may contest it.
// A hand produces an ordered list of side pots, main pot first, each with
// a shrinking eligibility set as all-in levels stack up.
type SidePot struct {
	Amount        int
	EligibleSeats []int
}

// Ledger accumulates per-seat contributions across a hand. Contributions
// are monotonically non-decreasing within a hand and cleared by Reset at
// the start of the next one.
type Ledger struct {
	contributions map[int]int
}

// NewLedger creates an empty contribution ledger
func NewLedger() *Ledger {
	return &Ledger{contributions: make(map[int]int)}
}

// AddBet accumulates amount into the seat's running contribution. The
// caller guarantees amount does not exceed the seat's stack.
func (l *Ledger) AddBet(seat, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: contribution %d is negative", ErrInvalidInput, amount)
	}
	l.contributions[seat] += amount
	return nil
}

// Contribution returns the seat's cumulative contribution this hand
func (l *Ledger) Contribution(seat int) int {
	return l.contributions[seat]
}

// Total returns the sum of all contributions this hand
func (l *Ledger) Total() int {
	total := 0
	for _, amount := range l.contributions {
		total += amount
	}
	return total
}

// Reset clears all contributions for a new hand
func (l *Ledger) Reset() {
	l.contributions = make(map[int]int)
}

// Build partitions the contributions into layered pots. Each iteration
// takes the smallest remaining contribution among still-eligible seats as
// the level; the pot at that level collects the level from every seat
// with chips remaining (folded seats pay in but cannot win) and is
// contested by the current eligible set. Build never mutates the stored
// contributions, so repeated calls return identical pots.
func (l *Ledger) Build(activeSeats []int) []SidePot {
	remaining := make(map[int]int, len(l.contributions))
	for seat, amount := range l.contributions {
		if amount > 0 {
			remaining[seat] = amount
		}
	}

	var pots []SidePot
	for len(remaining) > 0 {
		eligible := make([]int, 0, len(activeSeats))
		for _, seat := range activeSeats {
			if remaining[seat] > 0 {
				eligible = append(eligible, seat)
			}
		}
		if len(eligible) == 0 {
			break
		}

		level := remaining[eligible[0]]
		for _, seat := range eligible[1:] {
			if remaining[seat] < level {
				level = remaining[seat]
			}
		}

		pots = append(pots, SidePot{
			Amount:        level * len(remaining),
			EligibleSeats: eligible,
		})

		for seat := range remaining {
			remaining[seat] -= level
			if remaining[seat] <= 0 {
				delete(remaining, seat)
			}
		}
	}
	return pots
}

// Unpartitioned returns the chips that Build cannot place into any pot for
// the given eligible seats: contributions stranded above the last level
// any active seat can contest. Non-zero only in the degenerate case where
// every contributor to a layer folded.
func (l *Ledger) Unpartitioned(activeSeats []int) int {
	total := 0
	for _, pot := range l.Build(activeSeats) {
		total += pot.Amount
	}
	return l.Total() - total
}

// seatsAscending is a small helper for deterministic iteration in logs
// and tests.
func seatsAscending(contributions map[int]int) []int {
	seats := make([]int, 0, len(contributions))
	for seat := range contributions {
		seats = append(seats, seat)
	}
	sort.Ints(seats)
	return seats
}
