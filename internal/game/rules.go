package game

import "sort"

// BlindStructure defines the forced bets for a table
type BlindStructure struct {
	SmallBlind int
	BigBlind   int
	Ante       int
}

// MinRaise returns the minimum legal total for a raise given the current
// bet and the size of the last raise, capped by the player's stack. An
// all-in below the minimum raise is always allowed.
func MinRaise(currentBet, lastRaise, playerStack int) int {
	minTotal := currentBet + max(lastRaise, currentBet)
	return min(minTotal, playerStack)
}

// RotateButton advances the dealer button one seat, wrapping at the end
// of the table.
func RotateButton(numPlayers, currentDealer int) int {
	return (currentDealer + 1) % numPlayers
}

// PostingOrder returns every seat in blind-posting order: starting left
// of the dealer and wrapping the table exactly once, ending on the dealer.
func PostingOrder(numPlayers, dealerIndex int) []int {
	order := make([]int, 0, numPlayers)
	for offset := 1; offset <= numPlayers; offset++ {
		order = append(order, (dealerIndex+offset)%numPlayers)
	}
	return order
}

// LegalBetSizes suggests a canonical menu of bet totals (fractions of the
// pot plus the all-in), clamped to the player's stack. Decision layers use
// this to discretize the continuous raise range.
func LegalBetSizes(currentBet, lastRaise, playerStack, potSize int) []int {
	minTotal := currentBet
	if minTotal == 0 {
		minTotal = max(lastRaise, potSize/3)
		if minTotal == 0 {
			minTotal = 1
		}
	}

	var sizes []int
	seen := make(map[int]bool)
	for _, fraction := range []float64{1.0 / 3, 0.5, 0.75, 1.0, 1.5} {
		size := int(float64(potSize)*fraction + 0.5)
		if size < minTotal {
			continue
		}
		if size > playerStack {
			size = playerStack
		}
		if !seen[size] {
			seen[size] = true
			sizes = append(sizes, size)
		}
	}
	if !seen[playerStack] {
		sizes = append(sizes, playerStack)
	}
	sort.Ints(sizes)
	return sizes
}
