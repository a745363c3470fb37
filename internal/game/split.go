package game

import "github.com/lox/blackjack/internal/deck"

// SplitPolicy turns a pair into two hands and decides which single player
// total the round is scored on afterwards.
type SplitPolicy interface {
	Split(pair Hand, src deck.Source) (hands []Hand, total int)
}

// CombinedSplit moves the second card into a new hand, deals one card to each
// hand in order, and scores the round on the sum of both hands.
//
// TODO: score each hand against the dealer separately once per-hand outcomes
// are reported by Result.
type CombinedSplit struct{}

// Split implements SplitPolicy.
func (CombinedSplit) Split(pair Hand, src deck.Source) ([]Hand, int) {
	first := NewHand(pair.Card(0))
	second := NewHand(pair.Card(1))

	first.Add(src.Draw())
	second.Add(src.Draw())

	return []Hand{first, second}, first.Total() + second.Total()
}
