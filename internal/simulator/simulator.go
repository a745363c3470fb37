package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/strategy"
)

// Config holds configuration for running simulations
type Config struct {
	Decks int // 13-rank sets in the shared shoe
	Games int
	Seed  int64 // 0 derives a seed from the clock

	// Concurrency caps how many games run at once; 0 runs every game in its
	// own goroutine at the same time.
	Concurrency int

	Table *strategy.Table
	// Policy overrides the table-driven policy when set.
	Policy game.Policy
	Split  game.SplitPolicy

	Logger *log.Logger
	Clock  quartz.Clock
}

// Validate checks the configuration before any game is dealt.
func (c Config) Validate() error {
	if c.Decks < 1 {
		return fmt.Errorf("decks must be at least 1, got %d", c.Decks)
	}
	if c.Games < 0 {
		return fmt.Errorf("games must not be negative, got %d", c.Games)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	if c.Table == nil && c.Policy == nil {
		return errors.New("a strategy table is required")
	}
	return nil
}

// PanicError carries a panic raised while a game was running.
type PanicError struct {
	Game  int
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("game %d panicked: %v", e.Game, e.Value)
}

// Summary is the aggregate of a completed run.
type Summary struct {
	Decks      int
	Games      int
	Seed       int64
	Strategy   string
	Tally      *statistics.Tally
	Sample     *game.Result // first game's trace; nil when no games ran
	Elapsed    time.Duration
	CardsDrawn uint64
}

// Simulator runs blackjack rounds against one shared shoe.
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Split == nil {
		config.Split = game.CombinedSplit{}
	}
	return &Simulator{
		config: config,
		logger: config.Logger.WithPrefix("simulator"),
	}
}

// Run shuffles the shoe, plays every game concurrently and aggregates the
// results once all of them have finished. Any game error or panic aborts the
// run and no statistics are returned.
func (s *Simulator) Run(ctx context.Context) (*Summary, error) {
	cfg := s.config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	seed := randutil.Resolve(cfg.Seed, cfg.Clock.Now())
	shoe := deck.NewDeck(cfg.Decks, randutil.New(seed)).Shoe()

	policy := cfg.Policy
	strategyName := "custom"
	if policy == nil {
		policy = game.NewTablePolicy(cfg.Table)
		strategyName = cfg.Table.Name()
	}

	s.logger.Debug("Starting simulation",
		"games", cfg.Games,
		"decks", cfg.Decks,
		"seed", seed,
		"strategy", strategyName,
		"concurrency", cfg.Concurrency)

	start := cfg.Clock.Now()
	results := make([]game.Result, cfg.Games)

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}
	for i := 0; i < cfg.Games; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := playOne(i, shoe, policy, cfg.Split)
			if err != nil {
				return err
			}
			results[i] = r
			s.logger.Debug("Game finished", "game", i, "outcome", r.Outcome, "player", r.PlayerTotal, "dealer", r.DealerTotal)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("Simulation aborted", "err", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	elapsed := cfg.Clock.Now().Sub(start)

	tally := statistics.NewTally()
	for i, r := range results {
		if err := tally.Add(r); err != nil {
			return nil, fmt.Errorf("game %d: %w", i, err)
		}
	}
	if err := tally.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	summary := &Summary{
		Decks:      cfg.Decks,
		Games:      cfg.Games,
		Seed:       seed,
		Strategy:   strategyName,
		Tally:      tally,
		Elapsed:    elapsed,
		CardsDrawn: shoe.Drawn(),
	}
	if len(results) > 0 {
		sample := results[0]
		summary.Sample = &sample
	}

	s.logger.Debug("Simulation complete",
		"games", tally.Games,
		"player_wins", tally.PlayerWins,
		"dealer_wins", tally.DealerWins,
		"pushes", tally.Pushes,
		"elapsed", elapsed)

	return summary, nil
}

// playOne runs a single round, converting a panic into a PanicError so that a
// crashed game fails the run instead of vanishing from the totals.
func playOne(idx int, src deck.Source, policy game.Policy, split game.SplitPolicy) (result game.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Game: idx, Value: r, Stack: debug.Stack()}
		}
	}()

	g := game.New(src, policy, game.WithSplitPolicy(split))
	if err := g.Play(); err != nil {
		return game.Result{}, fmt.Errorf("game %d: %w", idx, err)
	}
	return g.Result(), nil
}
