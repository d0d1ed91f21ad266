package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediasift/internal/config"
	"mediasift/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check external tool availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := deps.CheckBinaries(requirements(cfg))

			rows := make([][]string, 0, len(results))
			missing := 0
			for _, status := range results {
				detail := status.Detail
				if status.Available {
					detail = status.Path
				} else if !status.Optional {
					missing++
				}
				rows = append(rows, []string{
					status.Name,
					status.Command,
					yesNo(status.Available),
					detail,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Tool", "Command", "Available", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))

			if missing > 0 {
				fmt.Fprintln(out, "Missing tools fall back to docker when it is available.")
			}
			return nil
		},
	}
}

func requirements(cfg *config.Config) []deps.Requirement {
	return []deps.Requirement{
		{Name: "FFprobe", Command: cfg.Runner.FFprobe, Description: "subtitle stream probing"},
		{Name: "FFmpeg", Command: cfg.Runner.FFmpeg, Description: "subtitle extraction"},
		{Name: "MediaInfo", Command: cfg.Runner.Mediainfo, Description: "video format profile probing"},
		{Name: "Docker", Command: cfg.Runner.Docker, Description: "container fallback for missing tools", Optional: true},
	}
}
