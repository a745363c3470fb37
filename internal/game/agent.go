package game

import "fmt"

// Agent identifies a side of the table.
type Agent int

const (
	Dealer Agent = iota
	Player
)

func (a Agent) String() string {
	switch a {
	case Dealer:
		return "dealer"
	case Player:
		return "player"
	default:
		return fmt.Sprintf("agent(%d)", int(a))
	}
}

// Outcome is the state of a round as seen by the termination check.
type Outcome int

const (
	Undecided Outcome = iota
	PlayerWins
	DealerWins
	Push
)

func (o Outcome) String() string {
	switch o {
	case Undecided:
		return "undecided"
	case PlayerWins:
		return "player wins"
	case DealerWins:
		return "dealer wins"
	case Push:
		return "push"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Terminal reports whether the round is over.
func (o Outcome) Terminal() bool {
	return o != Undecided
}

// Winner returns the winning agent. ok is false for a push or an unfinished
// round.
func (o Outcome) Winner() (winner Agent, ok bool) {
	switch o {
	case PlayerWins:
		return Player, true
	case DealerWins:
		return Dealer, true
	default:
		return 0, false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
