package game

import (
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/strategy"
)

// recordingTable is a Lookuper that remembers every key it was asked for.
type recordingTable struct {
	entries map[string]strategy.Action
	keys    []string
}

func newRecordingTable(entries map[string]strategy.Action) *recordingTable {
	return &recordingTable{entries: entries}
}

func (r *recordingTable) Lookup(key string) (strategy.Action, error) {
	r.keys = append(r.keys, key)
	action, ok := r.entries[key]
	if !ok {
		return 0, &strategy.MissingEntryError{Table: "recording", Key: key}
	}
	return action, nil
}

// scriptedPolicy returns its actions in order, repeating the last one.
type scriptedPolicy struct {
	actions []strategy.Action
	calls   int
}

func (p *scriptedPolicy) Decide(Hand, deck.Rank) (strategy.Action, error) {
	i := p.calls
	if i >= len(p.actions) {
		i = len(p.actions) - 1
	}
	p.calls++
	return p.actions[i], nil
}

// fixedSplit deals nothing and reports a fixed total.
type fixedSplit struct {
	total  int
	called bool
}

func (s *fixedSplit) Split(pair Hand, _ deck.Source) ([]Hand, int) {
	s.called = true
	return []Hand{NewHand(pair.Card(0)), NewHand(pair.Card(1))}, s.total
}

// shoe builds a Source that deals cards in the given order, then repeats.
func shoe(cards string) *deck.Shoe {
	return deck.NewShoe(deck.MustParseRanks(cards))
}

// frozen builds a game directly from totals, bypassing the deal.
func frozen(player, dealer int, dealerBeatsPlayer bool) *Game {
	return &Game{
		dealer:            Hand{cards: []deck.Rank{deck.Two}, total: dealer},
		playerTotal:       player,
		dealerBeatsPlayer: dealerBeatsPlayer,
	}
}
