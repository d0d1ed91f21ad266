package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Local executes tools directly from PATH.
type Local struct{}

// NewLocal returns the direct-execution strategy.
func NewLocal() *Local {
	return &Local{}
}

func (l *Local) Name() string { return "local" }

func (l *Local) Run(ctx context.Context, inv Invocation) error {
	cmd := exec.CommandContext(ctx, inv.Tool, inv.Args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return commandError(inv.Tool, err, stderr.Bytes())
	}
	return nil
}

func (l *Local) Output(ctx context.Context, inv Invocation) ([]byte, error) {
	cmd := exec.CommandContext(ctx, inv.Tool, inv.Args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, commandError(inv.Tool, err, stderr.Bytes())
	}
	return stdout.Bytes(), nil
}

func commandError(tool string, err error, stderr []byte) error {
	detail := strings.TrimSpace(string(stderr))
	if detail == "" {
		return fmt.Errorf("%s: %w", tool, err)
	}
	if len(detail) > 300 {
		detail = detail[:300]
	}
	return fmt.Errorf("%s: %w: %s", tool, err, detail)
}
