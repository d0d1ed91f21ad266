package probe

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"mediasift/internal/runner"
)

// FormatProfile reads the video Format profile of the given file via
// mediainfo. The call is bounded by timeout; corrupted containers otherwise
// hang the probe indefinitely. An empty result means the file has no video
// track (or mediainfo could not read one) and is not an error.
func FormatProfile(ctx context.Context, r runner.Runner, binary, path string, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	inv := runner.Invocation{
		Tool:   binary,
		Args:   []string{"--Inform=Video;%Format_Profile%", path},
		Mounts: []runner.Mount{{HostDir: filepath.Dir(path)}},
	}
	output, err := r.Output(ctx, inv)
	if err != nil {
		return "", fmt.Errorf("probe %s: %w", filepath.Base(path), err)
	}
	return strings.TrimSpace(string(output)), nil
}
