package strategy

import (
	"fmt"
	"strings"
)

// Action is a player decision.
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
)

// Actions lists every action in declaration order.
var Actions = [...]Action{Hit, Stand, Double, Split}

func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	case Split:
		return "split"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Short returns the one-letter chart code used in strategy files.
func (a Action) Short() string {
	switch a {
	case Hit:
		return "H"
	case Stand:
		return "S"
	case Double:
		return "D"
	case Split:
		return "P"
	default:
		return "?"
	}
}

// ParseAction accepts either the chart code (H, S, D, P) or the full name.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hit":
		return Hit, nil
	case "s", "stand":
		return Stand, nil
	case "d", "double":
		return Double, nil
	case "p", "split":
		return Split, nil
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// MarshalText implements encoding.TextMarshaler so actions serialise by name.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
