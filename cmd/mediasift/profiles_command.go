package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mediasift/internal/logging"
	"mediasift/internal/runner"
	"mediasift/internal/sift"
)

func newProfilesCommand(ctx *commandContext) *cobra.Command {
	var jobs int
	var maxAgeDays int

	cmd := &cobra.Command{
		Use:   "profiles <path>",
		Short: "Report files whose video format profile is targeted",
		Long: `Profiles scans the given file or directory tree for matroska files, reads
each one's video format profile with mediainfo, and prints the files whose
profile matches the configured target list. Nothing is modified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			applyRunFlags(cfg, jobs, maxAgeDays)

			logger, err := logging.NewFromConfig(cfg, ctx.verbose())
			if err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}

			sel, err := runner.ResolveProfiles(cfg)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pipeline := sift.NewProfiles(cfg, sel, logger)
			return runPipeline(runCtx, cmd.OutOrStdout(), cfg, logger, "profiles", args[0], pipeline)
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Worker count (defaults to configuration, then CPU count)")
	cmd.Flags().IntVar(&maxAgeDays, "max-age-days", -1, "Only scan files modified within this many days (0 disables)")
	return cmd
}
