package game

import (
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/strategy"
)

// Policy chooses the player's next action.
type Policy interface {
	Decide(hand Hand, dealerUp deck.Rank) (strategy.Action, error)
}

// Lookuper resolves a strategy key to an action. *strategy.Table satisfies it.
type Lookuper interface {
	Lookup(key string) (strategy.Action, error)
}

// TablePolicy plays a strategy chart. Totals outside the chart's range are
// forced: below the lowest row the player hits, above the highest row the
// player stands. Pairs are checked before either.
type TablePolicy struct {
	table Lookuper
}

// NewTablePolicy creates a policy backed by table.
func NewTablePolicy(table Lookuper) *TablePolicy {
	return &TablePolicy{table: table}
}

// Decide implements Policy.
func (p *TablePolicy) Decide(hand Hand, dealerUp deck.Rank) (strategy.Action, error) {
	up := dealerUp.Value()

	if hand.IsPair() {
		return p.table.Lookup(strategy.PairKey(hand.Card(0).Value(), up))
	}

	total := hand.Total()
	switch {
	case total < strategy.MinHardTotal:
		return strategy.Hit, nil
	case total > strategy.MaxHardTotal:
		return strategy.Stand, nil
	}

	return p.table.Lookup(strategy.HardKey(total, up))
}
