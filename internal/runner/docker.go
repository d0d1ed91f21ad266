package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

const containerMountRoot = "/msift"

// Docker executes tools inside a disposable container. Each mount's host
// directory is bound at a synthetic container path and every argument that
// references a host path is rewritten to its container equivalent.
type Docker struct {
	binary string
	image  string
}

// NewDocker returns the container-execution strategy for the given image.
func NewDocker(binary, image string) *Docker {
	return &Docker{binary: binary, image: image}
}

func (d *Docker) Name() string { return "docker" }

func (d *Docker) Run(ctx context.Context, inv Invocation) error {
	args, err := d.commandArgs(inv)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, d.binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return commandError(d.binary, err, stderr.Bytes())
	}
	return nil
}

func (d *Docker) Output(ctx context.Context, inv Invocation) ([]byte, error) {
	args, err := d.commandArgs(inv)
	if err != nil {
		return nil, err
	}
	cmd := exec.CommandContext(ctx, d.binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, commandError(d.binary, err, stderr.Bytes())
	}
	return stdout.Bytes(), nil
}

// commandArgs builds the full docker invocation: run flags, one bind per
// mount, the image, the tool, and the path-translated tool arguments.
func (d *Docker) commandArgs(inv Invocation) ([]string, error) {
	mounts, err := normalizeMounts(inv.Mounts)
	if err != nil {
		return nil, err
	}

	args := []string{"run", "--rm", "--network", "none"}
	for i, mount := range mounts {
		spec := mount.HostDir + ":" + containerPath(i)
		if !mount.Write {
			spec += ":ro"
		}
		args = append(args, "-v", spec)
	}
	args = append(args, d.image, inv.Tool)

	for _, arg := range inv.Args {
		args = append(args, translateArg(arg, mounts))
	}
	return args, nil
}

func normalizeMounts(mounts []Mount) ([]Mount, error) {
	byDir := make(map[string]bool, len(mounts))
	for _, mount := range mounts {
		dir := filepath.Clean(strings.TrimSpace(mount.HostDir))
		if dir == "" || dir == "." {
			return nil, fmt.Errorf("docker runner: mount directory %q is not absolute", mount.HostDir)
		}
		if !filepath.IsAbs(dir) {
			return nil, fmt.Errorf("docker runner: mount directory %q is not absolute", mount.HostDir)
		}
		byDir[dir] = byDir[dir] || mount.Write
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	normalized := make([]Mount, 0, len(dirs))
	for _, dir := range dirs {
		normalized = append(normalized, Mount{HostDir: dir, Write: byDir[dir]})
	}
	return normalized, nil
}

func containerPath(index int) string {
	return fmt.Sprintf("%s/%d", containerMountRoot, index)
}

// translateArg rewrites a host path argument to its container path. Longest
// mount prefix wins so nested mounts resolve to the most specific bind.
func translateArg(arg string, mounts []Mount) string {
	best := -1
	bestLen := -1
	for i, mount := range mounts {
		if arg == mount.HostDir || strings.HasPrefix(arg, mount.HostDir+string(filepath.Separator)) {
			if len(mount.HostDir) > bestLen {
				best = i
				bestLen = len(mount.HostDir)
			}
		}
	}
	if best < 0 {
		return arg
	}
	rest := strings.TrimPrefix(arg, mounts[best].HostDir)
	return containerPath(best) + filepath.ToSlash(rest)
}
