package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/report"
	"github.com/lox/blackjack/internal/simulator"
	"github.com/lox/blackjack/internal/strategy"
)

type CLI struct {
	Decks       int    `short:"d" default:"6" help:"Number of decks in the shared shoe"`
	Games       int    `short:"n" default:"10000" help:"Number of games to simulate"`
	Seed        int64  `default:"0" help:"Shuffle seed (0 derives one from the clock)"`
	Strategy    string `short:"s" type:"existingfile" help:"HCL strategy table (defaults to the built-in basic strategy)"`
	Concurrency int    `default:"0" help:"Maximum games in flight (0 runs all at once)"`
	JSON        string `name:"json" type:"path" help:"Also write the summary as JSON to this file"`
	Breakdown   bool   `short:"b" help:"Show results per dealer up card and decision counts"`
	NoColor     bool   `help:"Disable colored output"`
	Verbose     bool   `short:"v" help:"Verbose logging"`
}

// Validate is called by kong after flags are parsed.
func (c *CLI) Validate() error {
	if c.Decks < 1 {
		return fmt.Errorf("--decks must be at least 1, got %d", c.Decks)
	}
	if c.Games < 1 {
		return fmt.Errorf("--games must be at least 1, got %d", c.Games)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("--concurrency must not be negative, got %d", c.Concurrency)
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Simulate blackjack games to measure a basic strategy table"),
		kong.UsageOnError(),
	)

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: cli.Verbose,
	})

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(sigCtx, cli, os.Stdout, logger); err != nil {
		fmt.Fprintln(os.Stderr, diagnose(err))
		stop()
		ctx.Exit(1)
	}
}

func run(ctx context.Context, cli CLI, out io.Writer, logger *log.Logger) error {
	table, err := loadTable(cli.Strategy)
	if err != nil {
		return err
	}

	var opts []report.Option
	if cli.NoColor {
		opts = append(opts, report.WithColorProfile(termenv.Ascii))
	}
	rep := report.New(out, opts...)
	rep.Banner()

	sim := simulator.New(simulator.Config{
		Decks:       cli.Decks,
		Games:       cli.Games,
		Seed:        cli.Seed,
		Concurrency: cli.Concurrency,
		Table:       table,
		Logger:      logger,
	})
	summary, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	if summary.Sample != nil {
		rep.Trace(*summary.Sample)
	}
	rep.Summary(summary)
	if cli.Breakdown {
		rep.Breakdown(summary.Tally)
	}

	if cli.JSON != "" {
		if err := report.WriteJSON(cli.JSON, summary); err != nil {
			return fmt.Errorf("failed to write JSON report: %w", err)
		}
		logger.Info("Wrote JSON report", "path", cli.JSON)
	}
	return nil
}

func loadTable(path string) (*strategy.Table, error) {
	if path == "" {
		return strategy.Basic()
	}
	return strategy.Load(path)
}

// diagnose renders err for the terminal, naming the situation that stopped the
// run when one is known.
func diagnose(err error) string {
	var missing *strategy.MissingEntryError
	var illegal *game.IllegalActionError
	var crashed *simulator.PanicError
	switch {
	case errors.As(err, &missing):
		return fmt.Sprintf("fatal: no strategy entry for key %q in %s\n  %v", missing.Key, missing.Table, err)
	case errors.As(err, &illegal):
		return fmt.Sprintf("fatal: illegal %s on [%s]\n  %v", illegal.Action, illegal.Hand, err)
	case errors.As(err, &crashed):
		return fmt.Sprintf("fatal: %v\n%s", crashed, crashed.Stack)
	case errors.Is(err, context.Canceled):
		return "interrupted before all games finished"
	default:
		return fmt.Sprintf("error: %v", err)
	}
}
