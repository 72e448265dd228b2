package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/geange/cerny"
	"github.com/geange/cerny/internal/config"
	"github.com/geange/cerny/internal/report"
)

// batchPerWorker automata are searched per worker between two report flushes.
const batchPerWorker = 256

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Enumerate automata and print the slowly synchronizing ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cmd)

		start := time.Now()
		summary, err := runSearch(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
		if err != nil {
			return err
		}
		logger.Info("search complete",
			slog.Uint64("scanned", summary.Scanned),
			slog.Uint64("reported", summary.Reported),
			slog.Int("longest", summary.Longest),
			slog.Duration("elapsed", time.Since(start)))
		return nil
	},
}

func init() {
	f := searchCmd.Flags()
	f.String("config", "", "YAML file with search settings")
	f.Int("letters", 0, "Number of letters")
	f.Int("states", 0, "Number of states")
	f.Int("threshold", 0, "Minimum word length to report")
	f.String("alphabet", "", "Symbols used to spell words, one per letter")
	f.Int("workers", 0, "Number of concurrent searches")
	f.Bool("skip-non-sync", true, "Skip automata failing the pair test before searching")
	rootCmd.AddCommand(searchCmd)
}

// loadConfig reads --config and applies the flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()
	path, _ := f.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if f.Changed("letters") {
		cfg.Letters, _ = f.GetInt("letters")
	}
	if f.Changed("states") {
		cfg.States, _ = f.GetInt("states")
	}
	if f.Changed("threshold") {
		cfg.Threshold, _ = f.GetInt("threshold")
	}
	if f.Changed("alphabet") {
		cfg.Alphabet, _ = f.GetString("alphabet")
	}
	if f.Changed("workers") {
		cfg.Workers, _ = f.GetInt("workers")
	}
	if f.Changed("skip-non-sync") {
		cfg.SkipNonSynchronizing, _ = f.GetBool("skip-non-sync")
	}
	return cfg, cfg.Validate()
}

// runSearch searches every automaton of the configured size. Automata are cut into
// batches searched concurrently; results are reported in enumeration order.
func runSearch(ctx context.Context, cfg config.Config, out io.Writer, logger *slog.Logger) (report.Summary, error) {
	alphabet, err := cfg.ParseAlphabet()
	if err != nil {
		return report.Summary{}, err
	}
	e, err := cerny.NewEnumerator(cfg.Letters, cfg.States)
	if err != nil {
		return report.Summary{}, err
	}
	total, _ := cerny.Total(cfg.Letters, cfg.States)
	logger.Debug("enumerating automata",
		slog.Int("letters", cfg.Letters),
		slog.Int("states", cfg.States),
		slog.Uint64("total", total),
		slog.Int("workers", cfg.Workers))

	w := report.NewWriter(out, cfg.Threshold)
	batchSize := cfg.Workers * batchPerWorker
	batch := make([]*cerny.Automaton, 0, batchSize)
	results := make([]cerny.Result, batchSize)

	flush := func() error {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Workers)
		for i, a := range batch {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				if cfg.SkipNonSynchronizing && !cerny.IsSynchronizing(a) {
					results[i] = cerny.NoPath
					return nil
				}
				res, err := cerny.FindSyncWord(a, cerny.WithAlphabet(alphabet))
				if err != nil {
					return fmt.Errorf("search automaton %v: %w", a, err)
				}
				results[i] = res
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for i, a := range batch {
			if _, err := w.Report(a, results[i]); err != nil {
				return err
			}
		}
		logger.Debug("batch done", slog.Uint64("scanned", w.Summary().Scanned))
		batch = batch[:0]
		return nil
	}

	for a := range e.All() {
		batch = append(batch, a)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return w.Summary(), err
			}
		}
	}
	if err := flush(); err != nil {
		return w.Summary(), err
	}
	return w.Summary(), nil
}
