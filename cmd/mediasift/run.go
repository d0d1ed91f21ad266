package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofrs/flock"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"mediasift/internal/config"
	"mediasift/internal/history"
	"mediasift/internal/logging"
	"mediasift/internal/scan"
	"mediasift/internal/sift"
)

// runPipeline drives a full pass for one root: single-instance lock,
// discovery, the worker pool, live reporting, the summary table, and the
// history record. Per-file failures are counted, never escalated; the
// returned error is reserved for setup problems and interruption.
func runPipeline(ctx context.Context, out io.Writer, cfg *config.Config, logger *slog.Logger, mode, root string, pipeline *sift.Pipeline) error {
	lock, err := acquireRunLock(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	files, err := scan.Discover(root, scan.Options{
		Extension: cfg.Scan.Extension,
		MaxAge:    time.Duration(cfg.Scan.MaxAgeDays) * 24 * time.Hour,
	})
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "No %s files found under %s\n", cfg.Scan.Extension, root)
		return nil
	}

	bar := newProgressBar(len(files), mode)
	pipeline.OnResult = func(result sift.FileResult) {
		if bar != nil {
			_ = bar.Add(1)
		}
		reportResult(out, result)
	}

	startedAt := time.Now().UTC()
	summary, _, runErr := pipeline.Run(ctx, files)
	if bar != nil {
		_ = bar.Finish()
	}

	fmt.Fprintln(out, renderSummaryTable(mode, summary))

	recordRun(cfg, logger, history.Run{
		Mode:      mode,
		Root:      root,
		StartedAt: startedAt,
		Summary:   summary,
	})

	return runErr
}

func acquireRunLock(cfg *config.Config) (*flock.Flock, error) {
	lockPath := filepath.Join(cfg.Paths.StateDir, "mediasift.lock")
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another mediasift run holds %s", lockPath)
	}
	return lock, nil
}

func newProgressBar(total int, description string) *progressbar.ProgressBar {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// reportResult prints the lines an operator acts on; routine outcomes stay in
// the debug log.
func reportResult(out io.Writer, result sift.FileResult) {
	switch result.Outcome {
	case sift.OutcomeConverted:
		for _, action := range result.Actions {
			if action.Outcome == sift.OutcomeConverted {
				fmt.Fprintf(out, "extracted %s\n", action.Target)
			}
		}
	case sift.OutcomeFlagged:
		fmt.Fprintf(out, "%s: %s\n", result.Path, result.Profile)
	case sift.OutcomeFailed:
		fmt.Fprintf(out, "failed %s: %v\n", result.Path, result.Err)
	}
}

func renderSummaryTable(mode string, summary sift.Summary) string {
	rows := [][]string{
		{"Scanned", strconv.Itoa(summary.Scanned)},
	}
	if mode == "profiles" {
		rows = append(rows, []string{"Flagged", strconv.Itoa(summary.Flagged)})
	} else {
		rows = append(rows,
			[]string{"Converted", strconv.Itoa(summary.Converted)},
			[]string{"Skipped existing", strconv.Itoa(summary.Skipped)},
		)
	}
	rows = append(rows,
		[]string{"No streams", strconv.Itoa(summary.NoStreams)},
		[]string{"No match", strconv.Itoa(summary.NoMatch)},
		[]string{"Failed", strconv.Itoa(summary.Failed)},
	)
	return renderTable([]string{"Result", "Count"}, rows, []columnAlignment{alignLeft, alignRight})
}

func recordRun(cfg *config.Config, logger *slog.Logger, run history.Run) {
	store, err := history.Open(cfg)
	if err != nil {
		logger.Warn("run history unavailable", logging.Args(logging.Error(err))...)
		return
	}
	defer store.Close()

	if _, err := store.Record(context.Background(), run); err != nil {
		logger.Warn("record run history", logging.Args(logging.Error(err))...)
	}
}

// applyRunFlags folds per-invocation flag overrides into the loaded config.
func applyRunFlags(cfg *config.Config, jobs, maxAgeDays int) {
	if jobs > 0 {
		cfg.Scan.Workers = jobs
	}
	if maxAgeDays >= 0 {
		cfg.Scan.MaxAgeDays = maxAgeDays
	}
}
