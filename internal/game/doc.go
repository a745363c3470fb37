// Package game implements the blackjack round state machine.
//
// A Game owns one dealer hand and the player's hand(s). New deals the opening
// cards from a shared deck.Source; Play then drives the round to a terminal
// Outcome:
//
//	g := game.New(shoe, game.NewTablePolicy(table))
//	if err := g.Play(); err != nil {
//	    // incomplete strategy table or illegal action: fatal for the run
//	}
//	result := g.Result()
//
// # Round flow
//
// The player acts first, using a Policy to choose hit, stand, double or split.
// Once the player is done the dealer's hole card is turned over, then the
// dealer draws one card per step. Status is re-checked before every step, in
// this order: equal totals push, a dealer hit that beat the player, player 21,
// dealer 21, player bust, dealer bust.
//
// Aces always count 11. Splitting produces two hands but the round is still
// scored on a single combined player total; SplitPolicy isolates that rule so
// a per-hand resolution can replace it.
package game
