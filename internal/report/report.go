// Package report renders simulation results for the terminal and exports them
// as JSON.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/simulator"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/strategy"
)

// Banner is printed before anything else.
const Banner = "Testing effectiveness of 'basic strategy'"

// Option configures a Reporter.
type Option func(*Reporter)

// WithColorProfile forces a colour profile instead of detecting one from the
// writer. termenv.Ascii disables styling entirely.
func WithColorProfile(p termenv.Profile) Option {
	return func(r *Reporter) {
		r.renderer.SetColorProfile(p)
	}
}

// Reporter writes human-readable simulation output.
type Reporter struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	styles   *Styles
}

// New creates a reporter writing to w.
func New(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.styles = NewStyles(r.renderer)
	return r
}

// Banner prints the heading.
func (r *Reporter) Banner() {
	fmt.Fprintln(r.w, r.styles.Header.Render(" "+Banner+" "))
	fmt.Fprintln(r.w)
}

// Trace prints one round: both hands, the player's decisions and the winner.
func (r *Reporter) Trace(res game.Result) {
	s := r.styles
	fmt.Fprintln(r.w, s.SubHeader.Render("Sample game"))

	fmt.Fprintf(r.w, "  %s %s %s\n",
		s.Label.Render("Dealer: "),
		r.dealerCards(res),
		s.Muted.Render(fmt.Sprintf("(%d)", res.DealerTotal)))

	if len(res.PlayerHands) == 1 {
		fmt.Fprintf(r.w, "  %s %s %s\n",
			s.Label.Render("Player: "),
			r.cards(res.PlayerHands[0]),
			s.Muted.Render(fmt.Sprintf("(%d)", res.PlayerTotal)))
	} else {
		for i, hand := range res.PlayerHands {
			fmt.Fprintf(r.w, "  %s %s %s\n",
				s.Label.Render(fmt.Sprintf("Hand %d: ", i+1)),
				r.cards(hand),
				s.Muted.Render(fmt.Sprintf("(%d)", res.PlayerTotals[i])))
		}
		fmt.Fprintf(r.w, "  %s %s\n", s.Label.Render("Player: "), s.Muted.Render(fmt.Sprintf("(%d)", res.PlayerTotal)))
	}

	fmt.Fprintf(r.w, "  %s %s\n", s.Label.Render("Actions:"), r.actions(res.Actions))
	fmt.Fprintf(r.w, "  %s %s\n", s.Label.Render("Winner: "), r.outcome(res.Outcome))
	fmt.Fprintln(r.w)
}

func (r *Reporter) dealerCards(res game.Result) string {
	if res.HoleRevealed || len(res.DealerCards) < 2 {
		return r.cards(res.DealerCards)
	}
	// The hole card is listed second but was never counted.
	parts := []string{r.styles.Card.Render(res.DealerCards[0].String())}
	parts = append(parts, r.styles.Hidden.Render("["+res.DealerCards[1].String()+"]"))
	for _, c := range res.DealerCards[2:] {
		parts = append(parts, r.styles.Card.Render(c.String()))
	}
	return strings.Join(parts, " ")
}

func (r *Reporter) cards(cards []deck.Rank) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.styles.Card.Render(c.String())
	}
	return strings.Join(parts, " ")
}

func (r *Reporter) actions(actions []strategy.Action) string {
	if len(actions) == 0 {
		return r.styles.Muted.Render("none")
	}
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = a.String()
	}
	return r.styles.Action.Render(strings.Join(parts, ", "))
}

func (r *Reporter) outcome(o game.Outcome) string {
	winner, ok := o.Winner()
	switch {
	case !ok:
		return r.styles.Push.Render("tie")
	case winner == game.Player:
		return r.styles.Winner.Render(winner.String())
	default:
		return r.styles.Loser.Render(winner.String())
	}
}

// Summary prints the aggregate percentages.
func (r *Reporter) Summary(sum *simulator.Summary) {
	s := r.styles
	t := sum.Tally

	fmt.Fprintf(r.w, "%s %d\n", s.Label.Render("Deck size:      "), sum.Decks)
	fmt.Fprintf(r.w, "%s %d\n", s.Label.Render("Simulated games:"), sum.Games)
	fmt.Fprintf(r.w, "%s %s\n", s.Label.Render("Strategy:       "), sum.Strategy)
	fmt.Fprintf(r.w, "%s %d\n", s.Label.Render("Seed:           "), sum.Seed)
	fmt.Fprintln(r.w)

	r.percentLine("Player wins:", t.PlayerWinPct(), t.OutcomeCounts, t.PlayerWins, s.Winner)
	r.percentLine("Dealer wins:", t.DealerWinPct(), t.OutcomeCounts, t.DealerWins, s.Loser)
	r.percentLine("Ties:       ", t.PushPct(), t.OutcomeCounts, t.Pushes, s.Push)
	fmt.Fprintln(r.w)

	fmt.Fprintf(r.w, "%s %s\n", s.Muted.Render("Elapsed:"), formatElapsed(sum.Elapsed, sum.Games))
	fmt.Fprintf(r.w, "%s %d %s\n", s.Muted.Render("Cards drawn:"), sum.CardsDrawn,
		s.Muted.Render(fmt.Sprintf("(splits %d, doubles %d)", t.Splits, t.Doubles)))
}

func (r *Reporter) percentLine(label string, pct float64, counts statistics.OutcomeCounts, n int, style lipgloss.Style) {
	lo, hi := counts.ConfidenceInterval95(n)
	fmt.Fprintf(r.w, "%s %s %s\n",
		r.styles.Label.Render(label),
		style.Render(formatPct(pct)),
		r.styles.Muted.Render(fmt.Sprintf("(95%% CI %s-%s)", formatPct(lo), formatPct(hi))))
}

// Breakdown prints win rates per dealer up card.
func (r *Reporter) Breakdown(t *statistics.Tally) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.SubHeader.Render("By dealer up card"))

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Up\tGames\tPlayer\tDealer\tTies")
	for up := strategy.MinUpValue; up <= strategy.MaxUpValue; up++ {
		c := t.ByUpCard[up]
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
			strategy.PairLabel(up), c.Games,
			formatPct(c.PlayerWinPct()), formatPct(c.DealerWinPct()), formatPct(c.PushPct()))
	}
	tw.Flush()

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.SubHeader.Render("Decisions"))
	tw = tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	for _, a := range strategy.Actions {
		fmt.Fprintf(tw, "%s\t%d\n", a, t.ActionCount(a))
	}
	tw.Flush()
}

func formatPct(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f%%", v)
}

func formatElapsed(d time.Duration, games int) string {
	if d <= 0 || games == 0 {
		return d.String()
	}
	rate := float64(games) / d.Seconds()
	return fmt.Sprintf("%s (%.0f games/sec)", d.Round(time.Microsecond), rate)
}
