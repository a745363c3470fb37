package game

import (
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/strategy"
)

// Result is a snapshot of a finished round for reporting and aggregation.
type Result struct {
	UpCard       deck.Rank         `json:"up_card"`
	DealerCards  []deck.Rank       `json:"dealer_cards"`
	DealerTotal  int               `json:"dealer_total"`
	HoleRevealed bool              `json:"hole_revealed"`
	PlayerHands  [][]deck.Rank     `json:"player_hands"`
	PlayerTotals []int             `json:"player_totals"`
	PlayerTotal  int               `json:"player_total"`
	StartTotal   int               `json:"start_total"`
	Actions      []strategy.Action `json:"actions"`
	Outcome      Outcome           `json:"outcome"`
}

// Result snapshots the round. DealerCards always lists the hole card second,
// even when the round ended before it was counted.
func (g *Game) Result() Result {
	dealerCards := g.dealer.Cards()
	if !g.holeRevealed {
		dealerCards = append(dealerCards, g.hole)
	}

	hands := make([][]deck.Rank, len(g.hands))
	totals := make([]int, len(g.hands))
	for i, h := range g.hands {
		hands[i] = h.Cards()
		totals[i] = h.Total()
	}

	return Result{
		UpCard:       g.UpCard(),
		DealerCards:  dealerCards,
		DealerTotal:  g.dealer.Total(),
		HoleRevealed: g.holeRevealed,
		PlayerHands:  hands,
		PlayerTotals: totals,
		PlayerTotal:  g.playerTotal,
		StartTotal:   g.startTotal,
		Actions:      g.Actions(),
		Outcome:      g.outcome,
	}
}

// Split reports whether the player split.
func (r Result) Split() bool {
	return len(r.PlayerHands) > 1
}

// Doubled reports whether the player doubled down.
func (r Result) Doubled() bool {
	for _, a := range r.Actions {
		if a == strategy.Double {
			return true
		}
	}
	return false
}
