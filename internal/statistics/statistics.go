package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/strategy"
)

// OutcomeCounts buckets finished rounds by who won.
type OutcomeCounts struct {
	Games      int `json:"games"`
	PlayerWins int `json:"player_wins"`
	DealerWins int `json:"dealer_wins"`
	Pushes     int `json:"pushes"`
}

func (c *OutcomeCounts) add(o game.Outcome) {
	c.Games++
	switch o {
	case game.PlayerWins:
		c.PlayerWins++
	case game.DealerWins:
		c.DealerWins++
	case game.Push:
		c.Pushes++
	}
}

// PlayerWinPct returns the share of rounds the player won, in percent. It is
// NaN when no rounds were counted.
func (c OutcomeCounts) PlayerWinPct() float64 {
	return percent(c.PlayerWins, c.Games)
}

// DealerWinPct returns the share of rounds the dealer won, in percent.
func (c OutcomeCounts) DealerWinPct() float64 {
	return percent(c.DealerWins, c.Games)
}

// PushPct returns the share of tied rounds, in percent.
func (c OutcomeCounts) PushPct() float64 {
	return percent(c.Pushes, c.Games)
}

// ConfidenceInterval95 returns the 95% normal-approximation interval, in
// percent, for a bucket holding count of the rounds.
func (c OutcomeCounts) ConfidenceInterval95(count int) (float64, float64) {
	if c.Games == 0 {
		return math.NaN(), math.NaN()
	}
	p := float64(count) / float64(c.Games)
	se := math.Sqrt(p * (1 - p) / float64(c.Games))
	margin := 1.96 * se // 95% confidence
	return math.Max(0, p-margin) * 100, math.Min(1, p+margin) * 100
}

// Balanced reports whether every round landed in exactly one bucket.
func (c OutcomeCounts) Balanced() bool {
	return c.PlayerWins+c.DealerWins+c.Pushes == c.Games
}

func percent(n, total int) float64 {
	if total == 0 {
		return math.NaN()
	}
	return float64(n) / float64(total) * 100
}

// Tally aggregates finished rounds.
type Tally struct {
	OutcomeCounts

	// ByUpCard is indexed by dealer up-card value (2..11).
	ByUpCard [strategy.MaxUpValue + 1]OutcomeCounts `json:"-"`
	// ByStartTotal buckets rounds by the player's two-card total.
	ByStartTotal map[int]*OutcomeCounts `json:"-"`

	Actions [len(strategy.Actions)]int `json:"-"`
	Splits  int                        `json:"splits"`
	Doubles int                        `json:"doubles"`
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{ByStartTotal: make(map[int]*OutcomeCounts)}
}

// Add counts one finished round. Unfinished rounds are rejected so that the
// buckets always sum to the game count.
func (t *Tally) Add(r game.Result) error {
	if !r.Outcome.Terminal() {
		return fmt.Errorf("cannot tally unfinished round (player %d, dealer %d)", r.PlayerTotal, r.DealerTotal)
	}
	if t.ByStartTotal == nil {
		t.ByStartTotal = make(map[int]*OutcomeCounts)
	}

	t.OutcomeCounts.add(r.Outcome)

	if up := r.UpCard.Value(); up >= strategy.MinUpValue && up <= strategy.MaxUpValue {
		t.ByUpCard[up].add(r.Outcome)
	}

	start, ok := t.ByStartTotal[r.StartTotal]
	if !ok {
		start = &OutcomeCounts{}
		t.ByStartTotal[r.StartTotal] = start
	}
	start.add(r.Outcome)

	for _, a := range r.Actions {
		if int(a) >= 0 && int(a) < len(t.Actions) {
			t.Actions[a]++
		}
	}
	if r.Split() {
		t.Splits++
	}
	if r.Doubled() {
		t.Doubles++
	}
	return nil
}

// ActionCount returns how often the player chose a.
func (t *Tally) ActionCount(a strategy.Action) int {
	if int(a) < 0 || int(a) >= len(t.Actions) {
		return 0
	}
	return t.Actions[a]
}

// StartTotals returns the observed starting totals in ascending order.
func (t *Tally) StartTotals() []int {
	totals := make([]int, 0, len(t.ByStartTotal))
	for total := range t.ByStartTotal {
		totals = append(totals, total)
	}
	sort.Ints(totals)
	return totals
}

// Validate checks that every breakdown accounts for every round.
func (t *Tally) Validate() error {
	if !t.OutcomeCounts.Balanced() {
		return fmt.Errorf("outcome buckets sum to %d, want %d",
			t.PlayerWins+t.DealerWins+t.Pushes, t.Games)
	}

	byUp := 0
	for up := strategy.MinUpValue; up <= strategy.MaxUpValue; up++ {
		c := t.ByUpCard[up]
		if !c.Balanced() {
			return fmt.Errorf("up card %d buckets are unbalanced", up)
		}
		byUp += c.Games
	}
	if byUp != t.Games {
		return fmt.Errorf("up card breakdown counts %d games, want %d", byUp, t.Games)
	}

	byStart := 0
	for total, c := range t.ByStartTotal {
		if !c.Balanced() {
			return fmt.Errorf("start total %d buckets are unbalanced", total)
		}
		byStart += c.Games
	}
	if byStart != t.Games {
		return fmt.Errorf("start total breakdown counts %d games, want %d", byStart, t.Games)
	}
	return nil
}
