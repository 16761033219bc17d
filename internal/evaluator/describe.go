package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-engine/internal/deck"
)

// Describe returns a human-readable description of the hand, e.g.
// "Full House (Aces over Kings)" or "Pair of Queens (A T 4 kickers)".
func (h HandRank) Describe() string {
	if len(h.Tiebreak) == 0 {
		return h.Category.String()
	}
	switch h.Category {
	case StraightFlush:
		return fmt.Sprintf("Straight Flush (%s)", joinRanks(h.Tiebreak, "-"))
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind (%s)", h.Tiebreak[0].Plural())
	case FullHouse:
		return fmt.Sprintf("Full House (%s over %s)", h.Tiebreak[0].Plural(), h.Tiebreak[3].Plural())
	case Flush:
		return fmt.Sprintf("Flush (%s)", joinRanks(h.Tiebreak, " "))
	case Straight:
		return fmt.Sprintf("Straight (%s)", joinRanks(h.Tiebreak, "-"))
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind (%s)", h.Tiebreak[0].Plural())
	case TwoPair:
		return fmt.Sprintf("Two Pair (%s and %s with %s kicker)",
			h.Tiebreak[0].Plural(), h.Tiebreak[1].Plural(), rankSymbol(h.Tiebreak[2]))
	case OnePair:
		return fmt.Sprintf("Pair of %s (%s kickers)",
			h.Tiebreak[0].Plural(), joinRanks(h.Tiebreak[1:], " "))
	default:
		return fmt.Sprintf("High Card %s", joinRanks(h.Tiebreak, " "))
	}
}

// rankSymbol renders a tiebreak rank, mapping the ace-low rank 1 back to
// the ace so wheel straights print as A.
func rankSymbol(r deck.Rank) string {
	if r == 1 {
		return deck.Ace.String()
	}
	return r.String()
}

func joinRanks(ranks []deck.Rank, sep string) string {
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = rankSymbol(r)
	}
	return strings.Join(parts, sep)
}
