package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"mediasift/internal/config"
)

func TestLoadDefaultsExpandPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "share", "mediasift")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.Scan.Extension != ".mkv" {
		t.Fatalf("unexpected extension: %q", cfg.Scan.Extension)
	}
	if cfg.Scan.Workers != 0 {
		t.Fatalf("expected workers default 0, got %d", cfg.Scan.Workers)
	}
	if cfg.Profiles.ProbeTimeoutSeconds != 30 {
		t.Fatalf("unexpected profile probe timeout: %d", cfg.Profiles.ProbeTimeoutSeconds)
	}
	if cfg.Subtitles.TargetExtension != "srt" {
		t.Fatalf("unexpected target extension: %q", cfg.Subtitles.TargetExtension)
	}
	if cfg.Subtitles.Languages["eng"] != "en" {
		t.Fatalf("expected default language map to cover eng, got %q", cfg.Subtitles.Languages["eng"])
	}
	if cfg.Subtitles.Languages["fre"] != "fr" || cfg.Subtitles.Languages["fra"] != "fr" {
		t.Fatal("expected both French spellings in default language map")
	}
	if cfg.Runner.DockerImage == "" {
		t.Fatal("expected default docker image")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(cfg.Paths.LogDir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected log dir to exist: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "mediasift.toml")

	type payload struct {
		Scan struct {
			Extension  string `toml:"extension"`
			MaxAgeDays int    `toml:"max_age_days"`
			Workers    int    `toml:"workers"`
		} `toml:"scan"`
		Subtitles struct {
			Codecs    []string          `toml:"codecs"`
			Languages map[string]string `toml:"languages"`
		} `toml:"subtitles"`
	}
	custom := payload{}
	custom.Scan.Extension = "MP4"
	custom.Scan.MaxAgeDays = 14
	custom.Scan.Workers = 4
	custom.Subtitles.Codecs = []string{"ASS"}
	custom.Subtitles.Languages = map[string]string{" ENG ": "EN"}

	raw, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, raw, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Scan.Extension != ".mp4" {
		t.Fatalf("expected normalized extension .mp4, got %q", cfg.Scan.Extension)
	}
	if cfg.Scan.MaxAgeDays != 14 || cfg.Scan.Workers != 4 {
		t.Fatalf("unexpected scan values: %+v", cfg.Scan)
	}
	if len(cfg.Subtitles.Codecs) != 1 || cfg.Subtitles.Codecs[0] != "ass" {
		t.Fatalf("expected lowercased codec list, got %v", cfg.Subtitles.Codecs)
	}
	if cfg.Subtitles.Languages["eng"] != "en" {
		t.Fatalf("expected trimmed lowercased language map, got %v", cfg.Subtitles.Languages)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for bad log format")
	}

	cfg = config.Default()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for bad log level")
	}

	cfg = config.Default()
	cfg.Subtitles.Codecs = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for empty codec list")
	}

	cfg = config.Default()
	cfg.Profiles.Targets = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for empty profile targets")
	}
}

func TestCodecAndProfileSets(t *testing.T) {
	cfg := config.Default()
	codecs := cfg.CodecSet()
	if _, ok := codecs["ass"]; !ok {
		t.Fatal("expected ass in default codec set")
	}
	profiles := cfg.TargetProfileSet()
	if _, ok := profiles["Main 10@L5.1@High"]; !ok {
		t.Fatal("expected Main 10@L5.1@High in default profile set")
	}
	if _, ok := profiles["main 10@l5.1@high"]; ok {
		t.Fatal("profile matching must stay case-sensitive")
	}
}

func TestCreateSampleRefusesOverwrite(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	if err := config.CreateSample(path); err == nil {
		t.Fatal("expected error when sample already exists")
	}
}
