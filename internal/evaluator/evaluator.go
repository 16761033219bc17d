package evaluator

import (
	"fmt"
	"sort"

	"github.com/lox/holdem-engine/internal/deck"
)

// Category is the major class of a poker hand, high card lowest
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandRank is a comparable ranking of a five-card hand: a category plus up
// to five tiebreak ranks, most significant first. Ordering is lexicographic
// on (category, tiebreak). Values are immutable once computed.
type HandRank struct {
	Category Category
	Tiebreak []deck.Rank
}

// Compare returns -1 if h ranks below other, 0 if equal, 1 if above
func (h HandRank) Compare(other HandRank) int {
	if h.Category != other.Category {
		if h.Category < other.Category {
			return -1
		}
		return 1
	}
	for i := 0; i < len(h.Tiebreak) && i < len(other.Tiebreak); i++ {
		if h.Tiebreak[i] != other.Tiebreak[i] {
			if h.Tiebreak[i] < other.Tiebreak[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether h ranks strictly below other
func (h HandRank) Less(other HandRank) bool {
	return h.Compare(other) < 0
}

// Equal reports whether the two rankings tie exactly
func (h HandRank) Equal(other HandRank) bool {
	return h.Compare(other) == 0
}

// Encode packs the rank into a single ordered integer: the category above
// five 4-bit tiebreak nibbles, most significant first. The induced order
// matches Compare exactly.
func (h HandRank) Encode() uint32 {
	encoded := uint32(h.Category) << 20
	for i := 0; i < 5; i++ {
		var v uint32
		if i < len(h.Tiebreak) {
			v = uint32(h.Tiebreak[i]) & 0xF
		}
		encoded |= v << (16 - 4*i)
	}
	return encoded
}

// String returns the category name
func (h HandRank) String() string {
	return h.Category.String()
}

// RankHand ranks the best five-card hand out of the supplied cards. With
// more than five cards every C(n,5) combination is evaluated and the
// maximum kept; at seven cards that is 21 combinations, so brute force is
// both exact and cheap.
func RankHand(cards []deck.Card) (HandRank, error) {
	if len(cards) < 5 {
		return HandRank{}, fmt.Errorf("ranking requires at least five cards, got %d", len(cards))
	}

	n := len(cards)
	var best HandRank
	first := true
	var combo [5]deck.Card
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						combo[0], combo[1], combo[2], combo[3], combo[4] =
							cards[a], cards[b], cards[c], cards[d], cards[e]
						rank := RankFive(combo)
						if first || best.Less(rank) {
							best = rank
							first = false
						}
					}
				}
			}
		}
	}
	return best, nil
}

// Compare ranks two hands of at least five cards each and returns -1, 0
// or 1 as a ranks below, ties with or beats b.
func Compare(a, b []deck.Card) (int, error) {
	rankA, err := RankHand(a)
	if err != nil {
		return 0, err
	}
	rankB, err := RankHand(b)
	if err != nil {
		return 0, err
	}
	return rankA.Compare(rankB), nil
}

// RankFive ranks exactly five cards. Category assignment checks the
// strongest class first; the first match wins.
func RankFive(cards [5]deck.Card) HandRank {
	ranks := make([]deck.Rank, 5)
	for i, card := range cards {
		ranks[i] = card.Rank
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	flush := true
	for _, card := range cards[1:] {
		if card.Suit != cards[0].Suit {
			flush = false
			break
		}
	}

	straightHigh := straightHigh(ranks)

	if flush && straightHigh != 0 {
		return HandRank{StraightFlush, straightSequence(straightHigh)}
	}

	groups := groupRanks(ranks)

	if groups[0].count == 4 {
		quad := groups[0].rank
		kicker := groups[1].rank
		return HandRank{FourOfAKind, []deck.Rank{quad, quad, quad, quad, kicker}}
	}

	if groups[0].count == 3 && len(groups) > 1 && groups[1].count == 2 {
		trip, pair := groups[0].rank, groups[1].rank
		return HandRank{FullHouse, []deck.Rank{trip, trip, trip, pair, pair}}
	}

	if flush {
		return HandRank{Flush, ranks}
	}

	if straightHigh != 0 {
		return HandRank{Straight, straightSequence(straightHigh)}
	}

	if groups[0].count == 3 {
		trip := groups[0].rank
		tiebreak := []deck.Rank{trip, trip, trip}
		for _, r := range ranks {
			if r != trip {
				tiebreak = append(tiebreak, r)
			}
		}
		return HandRank{ThreeOfAKind, tiebreak}
	}

	if groups[0].count == 2 && len(groups) > 1 && groups[1].count == 2 {
		high, low := groups[0].rank, groups[1].rank
		var kicker deck.Rank
		for _, r := range ranks {
			if r != high && r != low {
				kicker = r
				break
			}
		}
		return HandRank{TwoPair, []deck.Rank{high, low, kicker}}
	}

	if groups[0].count == 2 {
		pair := groups[0].rank
		tiebreak := []deck.Rank{pair}
		for _, r := range ranks {
			if r != pair {
				tiebreak = append(tiebreak, r)
			}
		}
		return HandRank{OnePair, tiebreak}
	}

	return HandRank{HighCard, ranks}
}

type rankGroup struct {
	rank  deck.Rank
	count int
}

// groupRanks collapses sorted ranks into (rank, count) groups ordered by
// count then rank, both descending, so the defining group comes first.
func groupRanks(sorted []deck.Rank) []rankGroup {
	var groups []rankGroup
	for _, r := range sorted {
		if len(groups) > 0 && groups[len(groups)-1].rank == r {
			groups[len(groups)-1].count++
			continue
		}
		groups = append(groups, rankGroup{rank: r, count: 1})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})
	return groups
}

// straightHigh returns the top rank of a five-card straight, 5 for the
// wheel, or 0 when the ranks are not consecutive. The ace is also tried
// as a one so A-2-3-4-5 qualifies.
func straightHigh(sorted []deck.Rank) deck.Rank {
	unique := make([]deck.Rank, 0, 6)
	for _, r := range sorted {
		if len(unique) == 0 || unique[len(unique)-1] != r {
			unique = append(unique, r)
		}
	}
	if len(unique) < 5 {
		return 0
	}
	if unique[0] == deck.Ace {
		unique = append(unique, 1)
	}
	for i := 0; i+4 < len(unique); i++ {
		if unique[i]-unique[i+4] == 4 {
			if unique[i] == 5 {
				return 5
			}
			return unique[i]
		}
	}
	return 0
}

// straightSequence expands a straight's top rank into its five ranks
// descending; the wheel ends in the ace-low rank 1.
func straightSequence(high deck.Rank) []deck.Rank {
	return []deck.Rank{high, high - 1, high - 2, high - 3, high - 4}
}
