package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediasift/internal/config"
)

func TestLocalOutputCapturesStdout(t *testing.T) {
	local := NewLocal()
	out, err := local.Output(context.Background(), Invocation{Tool: "/bin/sh", Args: []string{"-c", "printf 'hello'"}})
	if err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if string(out) != "hello" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestLocalRunReportsStderrOnFailure(t *testing.T) {
	local := NewLocal()
	err := local.Run(context.Background(), Invocation{Tool: "/bin/sh", Args: []string{"-c", "echo boom >&2; exit 3"}})
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected stderr detail in error, got %v", err)
	}
}

func TestLocalRunDoesNotBlockOnStdin(t *testing.T) {
	local := NewLocal()
	// cat exits immediately when stdin is empty rather than waiting for input.
	if err := local.Run(context.Background(), Invocation{Tool: "cat"}); err != nil {
		t.Fatalf("expected cat with closed stdin to succeed: %v", err)
	}
}

func TestDockerCommandArgsTranslatesPaths(t *testing.T) {
	docker := NewDocker("docker", "linuxserver/ffmpeg")
	inv := Invocation{
		Tool: "ffmpeg",
		Args: []string{"-i", "/library/show/episode.mkv", "-map", "0:2", "/library/show/episode.en.srt"},
		Mounts: []Mount{
			{HostDir: "/library/show", Write: true},
		},
	}
	args, err := docker.commandArgs(inv)
	if err != nil {
		t.Fatalf("commandArgs failed: %v", err)
	}
	joined := strings.Join(args, " ")
	if !strings.HasPrefix(joined, "run --rm --network none") {
		t.Fatalf("unexpected prefix: %q", joined)
	}
	if !strings.Contains(joined, "-v /library/show:/msift/0 ") {
		t.Fatalf("expected rw bind mount, got %q", joined)
	}
	if !strings.Contains(joined, "/msift/0/episode.mkv") {
		t.Fatalf("expected translated input path, got %q", joined)
	}
	if !strings.Contains(joined, "/msift/0/episode.en.srt") {
		t.Fatalf("expected translated output path, got %q", joined)
	}
	if strings.Contains(joined, "/library/show/episode.mkv") {
		t.Fatalf("host path leaked into container args: %q", joined)
	}
}

func TestDockerCommandArgsReadOnlyMount(t *testing.T) {
	docker := NewDocker("docker", "mediaarea/mediainfo")
	inv := Invocation{
		Tool:   "mediainfo",
		Args:   []string{"--Inform=Video;%Format_Profile%", "/library/movie.mkv"},
		Mounts: []Mount{{HostDir: "/library"}},
	}
	args, err := docker.commandArgs(inv)
	if err != nil {
		t.Fatalf("commandArgs failed: %v", err)
	}
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-v /library:/msift/0:ro") {
		t.Fatalf("expected read-only bind, got %q", joined)
	}
	if !strings.Contains(joined, "/msift/0/movie.mkv") {
		t.Fatalf("expected translated path, got %q", joined)
	}
}

func TestDockerCommandArgsMergesDuplicateMounts(t *testing.T) {
	docker := NewDocker("docker", "img")
	inv := Invocation{
		Tool: "ffprobe",
		Args: []string{"/library/a.mkv"},
		Mounts: []Mount{
			{HostDir: "/library"},
			{HostDir: "/library", Write: true},
		},
	}
	args, err := docker.commandArgs(inv)
	if err != nil {
		t.Fatalf("commandArgs failed: %v", err)
	}
	joined := strings.Join(args, " ")
	if strings.Count(joined, "-v ") != 1 {
		t.Fatalf("expected a single merged mount, got %q", joined)
	}
	if strings.Contains(joined, ":ro") {
		t.Fatalf("write mount must win the merge, got %q", joined)
	}
}

func TestDockerCommandArgsRejectsRelativeMount(t *testing.T) {
	docker := NewDocker("docker", "img")
	_, err := docker.commandArgs(Invocation{Tool: "ffprobe", Mounts: []Mount{{HostDir: "relative/dir"}}})
	if err == nil {
		t.Fatal("expected error for relative mount directory")
	}
}

func TestResolveExtractPrefersLocal(t *testing.T) {
	binDir := t.TempDir()
	for _, name := range []string{"ffprobe", "ffmpeg"} {
		writeStub(t, binDir, name)
	}
	t.Setenv("PATH", binDir)

	cfg := config.Default()
	sel, err := ResolveExtract(&cfg)
	if err != nil {
		t.Fatalf("ResolveExtract failed: %v", err)
	}
	if sel.FFprobe.Name() != "local" || sel.FFmpeg.Name() != "local" {
		t.Fatalf("expected local strategy, got %s/%s", sel.FFprobe.Name(), sel.FFmpeg.Name())
	}
}

func TestResolveExtractFallsBackToDocker(t *testing.T) {
	binDir := t.TempDir()
	writeStub(t, binDir, "docker")
	t.Setenv("PATH", binDir)

	cfg := config.Default()
	sel, err := ResolveExtract(&cfg)
	if err != nil {
		t.Fatalf("ResolveExtract failed: %v", err)
	}
	if sel.FFprobe.Name() != "docker" || sel.FFmpeg.Name() != "docker" {
		t.Fatalf("expected docker fallback, got %s/%s", sel.FFprobe.Name(), sel.FFmpeg.Name())
	}
}

func TestResolveFailsFastWithoutAnyBackend(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	cfg := config.Default()
	if _, err := ResolveExtract(&cfg); !errors.Is(err, ErrMissingDependency) {
		t.Fatalf("expected ErrMissingDependency, got %v", err)
	}
	if _, err := ResolveProfiles(&cfg); !errors.Is(err, ErrMissingDependency) {
		t.Fatalf("expected ErrMissingDependency for profiles, got %v", err)
	}
}

func writeStub(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
}
