package deck

import (
	rand "math/rand/v2"
)

// Deck is an ordered pool of ranks built from one or more 13-rank sets.
type Deck struct {
	cards []Rank
	rng   *rand.Rand
}

// NewDeck creates a pool of numDecks copies of the 13-rank set and shuffles it
// with rng. numDecks below one yields an empty deck.
func NewDeck(numDecks int, rng *rand.Rand) *Deck {
	if numDecks < 0 {
		numDecks = 0
	}
	deck := &Deck{
		cards: make([]Rank, 0, len(Ranks)*numDecks),
		rng:   rng,
	}

	for i := 0; i < numDecks; i++ {
		deck.cards = append(deck.cards, Ranks[:]...)
	}

	deck.Shuffle()
	return deck
}

// Shuffle randomizes the order of cards in the deck
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Cards returns a copy of the deck in its current order.
func (d *Deck) Cards() []Rank {
	out := make([]Rank, len(d.cards))
	copy(out, d.cards)
	return out
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Shoe hands the deck's cards to a shared, never-ending Source.
func (d *Deck) Shoe() *Shoe {
	return NewShoe(d.Cards())
}
