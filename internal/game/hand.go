package game

import "github.com/lox/blackjack/internal/deck"

// Hand is an ordered set of cards with a running total. The total is computed
// from scratch only when the hand is created; Add keeps it current.
type Hand struct {
	cards []deck.Rank
	total int
}

// NewHand creates a hand holding cards.
func NewHand(cards ...deck.Rank) Hand {
	h := Hand{cards: append([]deck.Rank(nil), cards...)}
	h.total = deck.Sum(h.cards)
	return h
}

// Add appends a card and adds its value to the total.
func (h *Hand) Add(card deck.Rank) {
	h.cards = append(h.cards, card)
	h.total += card.Value()
}

// Total returns the running point total.
func (h Hand) Total() int {
	return h.total
}

// Len returns the number of cards in the hand.
func (h Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in deal order.
func (h Hand) Cards() []deck.Rank {
	return append([]deck.Rank(nil), h.cards...)
}

// Card returns the i'th card.
func (h Hand) Card(i int) deck.Rank {
	return h.cards[i]
}

// IsPair reports whether the hand is exactly two cards of equal point value.
// A king and a ten form a pair.
func (h Hand) IsPair() bool {
	return len(h.cards) == 2 && h.cards[0].Value() == h.cards[1].Value()
}

func (h Hand) String() string {
	return deck.FormatRanks(h.cards)
}
