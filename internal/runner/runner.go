package runner

import "context"

// Mount declares a host directory an invocation touches. Write mounts are
// bind-mounted read-write by the container strategy.
type Mount struct {
	HostDir string
	Write   bool
}

// Invocation describes one external tool call. Args may reference host paths;
// each such path must live under one of the declared mounts so the container
// strategy can translate it.
type Invocation struct {
	Tool   string
	Args   []string
	Mounts []Mount
}

// Runner executes external media tools. Implementations must not attach an
// interactive stdin; a tool that prompts has to fail rather than hang the
// pipeline.
type Runner interface {
	// Name identifies the strategy ("local" or "docker") for logging.
	Name() string
	// Run executes the invocation, discarding stdout.
	Run(ctx context.Context, inv Invocation) error
	// Output executes the invocation and returns its stdout.
	Output(ctx context.Context, inv Invocation) ([]byte, error)
}
