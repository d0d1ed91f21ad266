package sift

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"mediasift/internal/runner"
)

// extractStream pulls one subtitle stream out of source into target. The
// write goes to a temporary sibling first and is renamed into place only on
// success, so an interrupted extraction never leaves a path that a later
// run would mistake for a finished artifact.
func extractStream(ctx context.Context, r runner.Runner, binary, source string, index int, target string) error {
	partial := target + ".partial"
	inv := runner.Invocation{
		Tool: binary,
		Args: []string{
			"-nostdin",
			"-hide_banner",
			"-loglevel", "error",
			"-nostats",
			"-y",
			"-i", source,
			"-map", fmt.Sprintf("0:%d", index),
			"-c:s", "srt",
			"-f", "srt",
			partial,
		},
		Mounts: []runner.Mount{
			{HostDir: filepath.Dir(source)},
			{HostDir: filepath.Dir(target), Write: true},
		},
	}
	if err := r.Run(ctx, inv); err != nil {
		_ = os.Remove(partial)
		return err
	}
	if err := os.Rename(partial, target); err != nil {
		_ = os.Remove(partial)
		return fmt.Errorf("finalize %s: %w", filepath.Base(target), err)
	}
	return nil
}
