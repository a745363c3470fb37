package deck

import (
	"fmt"
	"strings"
)

// Rank represents a card rank. Suits play no part in blackjack scoring, so a
// card is fully described by its rank.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks is the 13-rank set that makes up one deck.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten:
		return fmt.Sprintf("%d", int(r))
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Value returns the blackjack point value of the rank. Face cards count 10 and
// an ace always counts 11; it is never demoted to 1.
func (r Rank) Value() int {
	switch {
	case r >= Two && r <= Ten:
		return int(r)
	case r >= Jack && r <= King:
		return 10
	case r == Ace:
		return 11
	default:
		return 0
	}
}

// Valid reports whether r is one of the 13 ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// IsFaceCard returns true if the card is a face card (J, Q, K)
func (r Rank) IsFaceCard() bool {
	return r >= Jack && r <= King
}

// ParseRank parses a single rank label ("2".."10", "T", "J", "Q", "K", "A").
func ParseRank(s string) (Rank, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "10", "T":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}
	return 0, fmt.Errorf("invalid rank: %q", s)
}

// ParseRanks parses a compact run of rank labels such as "A8KT" or "10 9 A".
// Whitespace and commas are ignored.
func ParseRanks(s string) ([]Rank, error) {
	s = strings.NewReplacer(" ", "", ",", "", "\t", "").Replace(s)
	ranks := make([]Rank, 0, len(s))
	for i := 0; i < len(s); i++ {
		label := s[i : i+1]
		if s[i] == '1' && i+1 < len(s) && s[i+1] == '0' {
			label = "10"
			i++
		}
		r, err := ParseRank(label)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		ranks = append(ranks, r)
	}
	return ranks, nil
}

// MustParseRanks is like ParseRanks but panics on error. Intended for tests
// and fixed fixtures.
func MustParseRanks(s string) []Rank {
	ranks, err := ParseRanks(s)
	if err != nil {
		panic(err)
	}
	return ranks
}

// Sum returns the total point value of the given ranks.
func Sum(ranks []Rank) int {
	total := 0
	for _, r := range ranks {
		total += r.Value()
	}
	return total
}

// FormatRanks renders ranks space separated, e.g. "K 7 A".
func FormatRanks(ranks []Rank) string {
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}

// MarshalText implements encoding.TextMarshaler so ranks serialise by label.
func (r Rank) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rank) UnmarshalText(text []byte) error {
	parsed, err := ParseRank(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
