package game

import (
	"fmt"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/strategy"
)

// IllegalActionError reports a policy choosing an action the rules forbid in
// the current state.
type IllegalActionError struct {
	Action strategy.Action
	Hand   string
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal %s on hand [%s]: %s", e.Action, e.Hand, e.Reason)
}

// Option configures a Game during creation.
type Option func(*Game)

// WithSplitPolicy replaces the default CombinedSplit.
func WithSplitPolicy(sp SplitPolicy) Option {
	return func(g *Game) { g.split = sp }
}

// Game is a single round between one player and the dealer.
type Game struct {
	src    deck.Source
	policy Policy
	split  SplitPolicy

	// dealer holds the counted cards: the up card, then the hole card once
	// revealed, then every hit.
	dealer       Hand
	hole         deck.Rank
	holeRevealed bool

	hands       []Hand
	playerTotal int
	startTotal  int
	actions     []strategy.Action

	playerDone        bool
	dealerBeatsPlayer bool
	outcome           Outcome
}

// New deals a round: dealer up card, dealer hole card, then two player cards,
// in that draw order.
func New(src deck.Source, policy Policy, opts ...Option) *Game {
	if src == nil {
		panic("card source is required for game creation")
	}
	if policy == nil {
		panic("policy is required for game creation")
	}

	g := &Game{
		src:    src,
		policy: policy,
		split:  CombinedSplit{},
	}
	for _, opt := range opts {
		opt(g)
	}

	up := src.Draw()
	g.hole = src.Draw()
	g.dealer = NewHand(up)

	first := src.Draw()
	second := src.Draw()
	g.hands = []Hand{NewHand(first, second)}
	g.playerTotal = g.hands[0].Total()
	g.startTotal = g.playerTotal

	return g
}

// Play runs the round until Status is terminal. The only errors are a policy
// failure (such as a strategy table with no entry for the situation) and an
// illegal action; both mean the configuration is broken, so the round is
// abandoned rather than retried.
func (g *Game) Play() error {
	for {
		if outcome := g.Status(); outcome.Terminal() {
			g.outcome = outcome
			return nil
		}

		switch {
		case !g.playerDone:
			if err := g.playerTurn(); err != nil {
				return err
			}
		case !g.holeRevealed:
			g.revealHole()
		default:
			g.dealerHit()
		}
	}
}

// Status evaluates the termination rules against the current state. It does
// not modify the game, so repeated calls on a finished round agree.
func (g *Game) Status() Outcome {
	player, dealer := g.playerTotal, g.dealer.Total()

	switch {
	case player == dealer:
		return Push
	case g.dealerBeatsPlayer:
		return DealerWins
	case player == 21:
		return PlayerWins
	case dealer == 21:
		return DealerWins
	case player > 21:
		return DealerWins
	case dealer > 21:
		return PlayerWins
	}
	return Undecided
}

func (g *Game) playerTurn() error {
	hand := &g.hands[0]

	action, err := g.policy.Decide(*hand, g.UpCard())
	if err != nil {
		return fmt.Errorf("player decision on [%s] vs %s: %w", hand, g.UpCard(), err)
	}

	switch action {
	case strategy.Hit:
		g.hitPlayer(hand)
	case strategy.Double:
		g.hitPlayer(hand)
		g.playerDone = true
	case strategy.Stand:
		g.playerDone = true
	case strategy.Split:
		if len(g.actions) > 0 {
			return &IllegalActionError{Action: action, Hand: hand.String(), Reason: "split is only allowed as the first decision"}
		}
		if !hand.IsPair() {
			return &IllegalActionError{Action: action, Hand: hand.String(), Reason: "split needs two cards of equal value"}
		}
		g.hands, g.playerTotal = g.split.Split(*hand, g.src)
		g.playerDone = true
	default:
		return &IllegalActionError{Action: action, Hand: hand.String(), Reason: "unknown action"}
	}

	g.actions = append(g.actions, action)
	return nil
}

func (g *Game) hitPlayer(hand *Hand) {
	card := g.src.Draw()
	hand.Add(card)
	g.playerTotal += card.Value()
}

func (g *Game) revealHole() {
	g.dealer.Add(g.hole)
	g.holeRevealed = true
}

func (g *Game) dealerHit() {
	g.dealer.Add(g.src.Draw())
	if total := g.dealer.Total(); total <= 21 && total > g.playerTotal {
		g.dealerBeatsPlayer = true
	}
}

// UpCard returns the dealer's visible card.
func (g *Game) UpCard() deck.Rank {
	return g.dealer.Card(0)
}

// PlayerTotal returns the total the round is scored on.
func (g *Game) PlayerTotal() int {
	return g.playerTotal
}

// DealerTotal returns the dealer's counted total. Before the reveal it is the
// up card alone.
func (g *Game) DealerTotal() int {
	return g.dealer.Total()
}

// Actions returns the player's decisions in order.
func (g *Game) Actions() []strategy.Action {
	return append([]strategy.Action(nil), g.actions...)
}

// Outcome returns the result recorded by Play, or Undecided if Play has not
// finished.
func (g *Game) Outcome() Outcome {
	return g.outcome
}
