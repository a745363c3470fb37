package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/simulator"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/strategy"
)

func plain(buf *bytes.Buffer) *Reporter {
	return New(buf, WithColorProfile(termenv.Ascii))
}

func sampleResult() game.Result {
	return game.Result{
		UpCard:       deck.Six,
		DealerCards:  deck.MustParseRanks("6K5"),
		DealerTotal:  21,
		HoleRevealed: true,
		PlayerHands:  [][]deck.Rank{deck.MustParseRanks("98")},
		PlayerTotals: []int{17},
		PlayerTotal:  17,
		StartTotal:   17,
		Actions:      []strategy.Action{strategy.Stand},
		Outcome:      game.DealerWins,
	}
}

func sampleSummary(t *testing.T) *simulator.Summary {
	t.Helper()
	tally := statistics.NewTally()
	outcomes := []game.Outcome{game.PlayerWins, game.DealerWins, game.DealerWins, game.Push}
	for _, o := range outcomes {
		r := sampleResult()
		r.Outcome = o
		require.NoError(t, tally.Add(r))
	}
	sample := sampleResult()
	return &simulator.Summary{
		Decks:      6,
		Games:      len(outcomes),
		Seed:       42,
		Strategy:   "basic.hcl",
		Tally:      tally,
		Sample:     &sample,
		Elapsed:    2 * time.Millisecond,
		CardsDrawn: 17,
	}
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	plain(&buf).Banner()
	assert.Contains(t, buf.String(), "Testing effectiveness of 'basic strategy'")
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	plain(&buf).Trace(sampleResult())
	out := buf.String()

	assert.Contains(t, out, "Sample game")
	assert.Contains(t, out, "(21)")
	assert.Contains(t, out, "(17)")
	assert.Contains(t, out, "stand")
	assert.Contains(t, out, "dealer")
	for _, c := range []string{"6", "K", "5", "9", "8"} {
		assert.Contains(t, out, c)
	}
}

func TestTraceHiddenHoleCard(t *testing.T) {
	r := sampleResult()
	r.DealerCards = deck.MustParseRanks("6T")
	r.DealerTotal = 6
	r.HoleRevealed = false
	r.Outcome = game.Push

	var buf bytes.Buffer
	plain(&buf).Trace(r)
	out := buf.String()

	assert.Contains(t, out, "[10]")
	assert.Contains(t, out, "tie")
}

func TestTraceSplitHands(t *testing.T) {
	r := sampleResult()
	r.PlayerHands = [][]deck.Rank{deck.MustParseRanks("83"), deck.MustParseRanks("84")}
	r.PlayerTotals = []int{11, 12}
	r.PlayerTotal = 23
	r.Actions = []strategy.Action{strategy.Split}
	r.Outcome = game.DealerWins

	var buf bytes.Buffer
	plain(&buf).Trace(r)
	out := buf.String()

	assert.Contains(t, out, "Hand 1:")
	assert.Contains(t, out, "Hand 2:")
	assert.Contains(t, out, "(11)")
	assert.Contains(t, out, "(12)")
	assert.Contains(t, out, "(23)")
	assert.Contains(t, out, "split")
}

func TestTraceNoActions(t *testing.T) {
	r := sampleResult()
	r.Actions = nil

	var buf bytes.Buffer
	plain(&buf).Trace(r)
	assert.Contains(t, buf.String(), "none")
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	plain(&buf).Summary(sampleSummary(t))
	out := buf.String()

	assert.Contains(t, out, "Deck size:")
	assert.Contains(t, out, "Simulated games:")
	assert.Contains(t, out, "Player wins:")
	assert.Contains(t, out, "25.00%")
	assert.Contains(t, out, "Dealer wins:")
	assert.Contains(t, out, "50.00%")
	assert.Contains(t, out, "Ties:")
	assert.Contains(t, out, "basic.hcl")
	assert.Contains(t, out, "games/sec")
}

func TestSummaryNoGames(t *testing.T) {
	sum := &simulator.Summary{Decks: 1, Tally: statistics.NewTally()}

	var buf bytes.Buffer
	plain(&buf).Summary(sum)
	out := buf.String()

	assert.Equal(t, 9, strings.Count(out, "NaN"), "three percentages and both interval bounds")
}

func TestBreakdown(t *testing.T) {
	var buf bytes.Buffer
	plain(&buf).Breakdown(sampleSummary(t).Tally)
	out := buf.String()

	assert.Contains(t, out, "By dealer up card")
	assert.Contains(t, out, "Decisions")
	for _, a := range strategy.Actions {
		assert.Contains(t, out, a.String())
	}

	var sixRow string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "6 ") {
			sixRow = line
		}
	}
	require.NotEmpty(t, sixRow)
	assert.Contains(t, sixRow, "25.00%")
}

func TestFormatPct(t *testing.T) {
	assert.Equal(t, "12.35%", formatPct(12.345))
	assert.Equal(t, "0.00%", formatPct(0))
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	require.NoError(t, WriteJSON(path, sampleSummary(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "basic.hcl", got["strategy"])
	assert.Equal(t, float64(4), got["games"])
	assert.Equal(t, float64(25), got["player_win_pct"])
	assert.Equal(t, float64(4), got["actions"].(map[string]any)["stand"])

	sample := got["sample"].(map[string]any)
	assert.Equal(t, "dealer wins", sample["outcome"])
	assert.Equal(t, []any{"6", "K", "5"}, sample["dealer_cards"])
}

func TestExportNoGames(t *testing.T) {
	e := NewExport(&simulator.Summary{Decks: 1, Tally: statistics.NewTally()})
	assert.Nil(t, e.PlayerWinPct)
	assert.Nil(t, e.DealerWinPct)
	assert.Nil(t, e.PushPct)
	assert.Len(t, e.ByUpCard, strategy.MaxUpValue-strategy.MinUpValue+1)
	assert.Empty(t, e.ByStartTotal)

	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, WriteJSON(path, &simulator.Summary{Decks: 1, Tally: statistics.NewTally()}))
}
