package sift

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"mediasift/internal/config"
	"mediasift/internal/language"
	"mediasift/internal/logging"
	"mediasift/internal/media/probe"
	"mediasift/internal/policy"
	"mediasift/internal/runner"
)

type mode int

const (
	modeExtract mode = iota
	modeProfiles
)

// Pipeline processes discovered files end to end. Construct one per run with
// NewExtract or NewProfiles; the policy snapshot and runner selection are
// fixed for the pipeline's lifetime.
type Pipeline struct {
	cfg      *config.Config
	sel      runner.Selection
	logger   *slog.Logger
	mode     mode
	subRules policy.SubtitleRules
	prfRules policy.ProfileRules

	// OnResult, when set, observes every finished file. Calls are serialized.
	OnResult func(FileResult)
}

// NewExtract builds the subtitle-extraction pipeline.
func NewExtract(cfg *config.Config, sel runner.Selection, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		sel:      sel,
		logger:   logging.NewComponentLogger(logger, "extract"),
		mode:     modeExtract,
		subRules: policy.NewSubtitleRules(cfg),
	}
}

// NewProfiles builds the format-profile report pipeline.
func NewProfiles(cfg *config.Config, sel runner.Selection, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		sel:      sel,
		logger:   logging.NewComponentLogger(logger, "profiles"),
		mode:     modeProfiles,
		prfRules: policy.NewProfileRules(cfg),
	}
}

// Run processes the files with a bounded worker pool. Per-file failures are
// recorded in the results, never returned; the error is non-nil only when
// the context was cancelled before every file was accepted. Result order is
// completion order.
func (p *Pipeline) Run(ctx context.Context, files []string) (Summary, []FileResult, error) {
	var (
		mu      sync.Mutex
		summary Summary
		results = make([]FileResult, 0, len(files))
	)
	record := func(result FileResult) {
		mu.Lock()
		defer mu.Unlock()
		summary.add(result)
		results = append(results, result)
		if p.OnResult != nil {
			p.OnResult(result)
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(p.workers())

	for _, path := range files {
		// Cancellation stops intake; workers already running finish or
		// abandon their file cleanly.
		if groupCtx.Err() != nil {
			break
		}
		path := path
		group.Go(func() error {
			if groupCtx.Err() != nil {
				return nil
			}
			record(p.processFile(groupCtx, path))
			return nil
		})
	}
	_ = group.Wait()

	return summary, results, ctx.Err()
}

func (p *Pipeline) workers() int {
	if p.cfg.Scan.Workers > 0 {
		return p.cfg.Scan.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (p *Pipeline) processFile(ctx context.Context, path string) FileResult {
	if p.mode == modeProfiles {
		return p.processProfile(ctx, path)
	}
	return p.processExtract(ctx, path)
}

func (p *Pipeline) processExtract(ctx context.Context, path string) FileResult {
	log := p.logger.With(logging.String("file", filepath.Base(path)))

	streams, err := probe.Subtitles(ctx, p.sel.FFprobe, p.cfg.Runner.FFprobe, path)
	if err != nil {
		wrapped := Wrap(ErrProbe, "extract", path, err)
		log.Error("stream probe failed", logging.Args(logging.Error(err))...)
		return FileResult{Path: path, Outcome: OutcomeFailed, Err: wrapped}
	}
	if len(streams) == 0 {
		log.Debug("no subtitle streams")
		return FileResult{Path: path, Outcome: OutcomeNoStreams}
	}

	actions := make([]StreamAction, 0, len(streams))
	for _, stream := range streams {
		actions = append(actions, p.actOnStream(ctx, log, path, stream))
	}

	result := FileResult{Path: path, Outcome: fileOutcome(actions), Actions: actions}
	if result.Outcome == OutcomeFailed {
		for _, action := range actions {
			if action.Err != nil {
				result.Err = action.Err
				break
			}
		}
	}
	return result
}

func (p *Pipeline) actOnStream(ctx context.Context, log *slog.Logger, path string, stream probe.Stream) StreamAction {
	decision := p.subRules.Subtitle(stream)
	action := StreamAction{Stream: stream, Decision: decision}
	streamAttrs := []logging.Attr{
		logging.Int("stream", stream.Index),
		logging.String("codec", stream.Codec),
		logging.String("language", stream.Language),
	}

	if !decision.Matched {
		action.Outcome = OutcomeNoMatch
		log.Debug("stream rejected", logging.Args(append(streamAttrs, logging.String("reason", decision.Reason.String()))...)...)
		return action
	}

	action.Target = OutputPath(path, decision.Qualifier, p.cfg.Subtitles.TargetExtension)
	if _, err := os.Stat(action.Target); err == nil {
		action.Outcome = OutcomeSkippedExisting
		log.Debug("artifact exists, skipping", logging.Args(logging.String("target", filepath.Base(action.Target)))...)
		return action
	}

	if err := extractStream(ctx, p.sel.FFmpeg, p.cfg.Runner.FFmpeg, path, stream.Index, action.Target); err != nil {
		action.Outcome = OutcomeFailed
		action.Err = Wrap(ErrConversion, "extract", action.Target, err)
		log.Error("extraction failed", logging.Args(append(streamAttrs, logging.Error(err))...)...)
		return action
	}

	action.Outcome = OutcomeConverted
	log.Info("subtitle extracted",
		logging.Args(
			logging.String("target", filepath.Base(action.Target)),
			logging.String("language", language.DisplayName(stream.Language)),
			logging.Int("stream", stream.Index),
		)...)
	return action
}

func (p *Pipeline) processProfile(ctx context.Context, path string) FileResult {
	log := p.logger.With(logging.String("file", filepath.Base(path)))
	timeout := time.Duration(p.cfg.Profiles.ProbeTimeoutSeconds) * time.Second

	profile, err := probe.FormatProfile(ctx, p.sel.Mediainfo, p.cfg.Runner.Mediainfo, path, timeout)
	if err != nil {
		wrapped := Wrap(ErrProbe, "profiles", path, err)
		log.Error("profile probe failed", logging.Args(logging.Error(err))...)
		return FileResult{Path: path, Outcome: OutcomeFailed, Err: wrapped}
	}
	if profile == "" {
		log.Debug("no video track or unreadable profile")
		return FileResult{Path: path, Outcome: OutcomeNoStreams}
	}

	result := FileResult{Path: path, Profile: profile}
	if p.prfRules.Profile(profile) {
		result.Outcome = OutcomeFlagged
		log.Info("profile flagged", logging.Args(logging.String("profile", profile))...)
	} else {
		result.Outcome = OutcomeNoMatch
		log.Debug("profile not targeted", logging.Args(logging.String("profile", profile))...)
	}
	return result
}
