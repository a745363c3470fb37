package deck

import "sync/atomic"

// Source supplies cards to a game. Implementations must be safe for
// concurrent use and must never run out.
type Source interface {
	Draw() Rank
}

// Shoe is a Source over a fixed card order that wraps around once exhausted.
// Each Draw claims exactly one position through an atomic cursor, so
// concurrent games never observe the same position twice within a cycle.
type Shoe struct {
	cards  []Rank
	cursor atomic.Uint64
}

// NewShoe creates a shoe over cards. The slice is owned by the shoe afterwards.
// It panics if cards is empty, since an empty shoe could never satisfy Draw.
func NewShoe(cards []Rank) *Shoe {
	if len(cards) == 0 {
		panic("deck: shoe needs at least one card")
	}
	return &Shoe{cards: cards}
}

// Draw returns the next card in shuffle order.
func (s *Shoe) Draw() Rank {
	n := s.cursor.Add(1) - 1
	return s.cards[n%uint64(len(s.cards))]
}

// Drawn returns how many cards have been drawn so far.
func (s *Shoe) Drawn() uint64 {
	return s.cursor.Load()
}

// Len returns the number of distinct positions in one cycle of the shoe.
func (s *Shoe) Len() int {
	return len(s.cards)
}
