package report

import (
	"math"
	"strconv"

	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/simulator"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/strategy"
)

// Export is the JSON shape written by WriteJSON. Percentages are null when no
// games were played.
type Export struct {
	Strategy       string                   `json:"strategy"`
	Decks          int                      `json:"decks"`
	Games          int                      `json:"games"`
	Seed           int64                    `json:"seed"`
	ElapsedSeconds float64                  `json:"elapsed_seconds"`
	CardsDrawn     uint64                   `json:"cards_drawn"`
	Outcomes       statistics.OutcomeCounts `json:"outcomes"`
	PlayerWinPct   *float64                 `json:"player_win_pct"`
	DealerWinPct   *float64                 `json:"dealer_win_pct"`
	PushPct        *float64                 `json:"push_pct"`
	Splits         int                      `json:"splits"`
	Doubles        int                      `json:"doubles"`
	Actions        map[string]int           `json:"actions"`
	ByUpCard       []BucketExport           `json:"by_up_card"`
	ByStartTotal   []BucketExport           `json:"by_start_total"`
	Sample         *game.Result             `json:"sample,omitempty"`
}

// BucketExport is one row of a breakdown.
type BucketExport struct {
	statistics.OutcomeCounts

	Key          string   `json:"key"`
	PlayerWinPct *float64 `json:"player_win_pct"`
}

// NewExport flattens a summary into its JSON form.
func NewExport(sum *simulator.Summary) Export {
	t := sum.Tally
	e := Export{
		Strategy:       sum.Strategy,
		Decks:          sum.Decks,
		Games:          sum.Games,
		Seed:           sum.Seed,
		ElapsedSeconds: sum.Elapsed.Seconds(),
		CardsDrawn:     sum.CardsDrawn,
		Outcomes:       t.OutcomeCounts,
		PlayerWinPct:   finite(t.PlayerWinPct()),
		DealerWinPct:   finite(t.DealerWinPct()),
		PushPct:        finite(t.PushPct()),
		Splits:         t.Splits,
		Doubles:        t.Doubles,
		Actions:        make(map[string]int, len(strategy.Actions)),
		Sample:         sum.Sample,
	}
	for _, a := range strategy.Actions {
		e.Actions[a.String()] = t.ActionCount(a)
	}
	for up := strategy.MinUpValue; up <= strategy.MaxUpValue; up++ {
		e.ByUpCard = append(e.ByUpCard, bucket(strategy.PairLabel(up), t.ByUpCard[up]))
	}
	for _, total := range t.StartTotals() {
		e.ByStartTotal = append(e.ByStartTotal, bucket(strconv.Itoa(total), *t.ByStartTotal[total]))
	}
	return e
}

// WriteJSON exports sum to filename, replacing any previous export atomically.
func WriteJSON(filename string, sum *simulator.Summary) error {
	return fileutil.WriteJSONAtomic(filename, NewExport(sum), 0o644)
}

func bucket(key string, c statistics.OutcomeCounts) BucketExport {
	return BucketExport{Key: key, OutcomeCounts: c, PlayerWinPct: finite(c.PlayerWinPct())}
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
