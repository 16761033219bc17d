package deck

import (
	"fmt"
	"math/rand"
)

// Deck represents an ordered deck of playing cards. The random source is
// injected so callers control seeding; a deck is owned by a single hand
// and is not safe for concurrent use.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a shuffled 52-card deck using the supplied random source
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.Reset()
	return d
}

// Reset restores the deck to a full 52-card deck and shuffles it
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	d.Shuffle()
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the first n cards from the deck
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("draw count must be non-negative, got %d", n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("cannot draw %d cards, %d remaining", n, len(d.cards))
	}
	drawn := make([]Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn, nil
}

// MustDraw is Draw for dealing paths where the count can never exceed
// the cards remaining. It panics if the deck is exhausted.
func (d *Deck) MustDraw(n int) []Card {
	cards, err := d.Draw(n)
	if err != nil {
		panic(err)
	}
	return cards
}

// Remove deletes specific known cards from the deck, used to keep
// simulation decks consistent with visible cards. Every card must
// currently be present.
func (d *Deck) Remove(cards ...Card) error {
	for _, card := range cards {
		found := false
		for i, c := range d.cards {
			if c == card {
				d.cards = append(d.cards[:i], d.cards[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("card %s not present in deck", card)
		}
	}
	return nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
