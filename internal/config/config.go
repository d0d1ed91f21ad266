package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	StateDir string `toml:"state_dir"`
	LogDir   string `toml:"log_dir"`
}

// Scan contains configuration for library discovery.
type Scan struct {
	Extension  string `toml:"extension"`
	MaxAgeDays int    `toml:"max_age_days"`
	Workers    int    `toml:"workers"`
}

// Subtitles contains the extraction policy: which codecs are extractable and
// which stream language tags map to which filename qualifier.
type Subtitles struct {
	Codecs          []string          `toml:"codecs"`
	Languages       map[string]string `toml:"languages"`
	TargetExtension string            `toml:"target_extension"`
}

// Profiles contains the video format-profile report policy.
type Profiles struct {
	Targets             []string `toml:"targets"`
	ProbeTimeoutSeconds int      `toml:"probe_timeout_seconds"`
}

// Runner contains external tool configuration and the container fallback.
type Runner struct {
	FFmpeg               string `toml:"ffmpeg"`
	FFprobe              string `toml:"ffprobe"`
	Mediainfo            string `toml:"mediainfo"`
	Docker               string `toml:"docker"`
	DockerImage          string `toml:"docker_image"`
	DockerMediainfoImage string `toml:"docker_mediainfo_image"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for mediasift.
//
// Configuration sections by subsystem:
//   - Paths: state and log directories
//   - Scan: library discovery (extension, recency window, worker count)
//   - Subtitles: extraction policy (codecs, language qualifiers)
//   - Profiles: format-profile report policy
//   - Runner: external tool binaries and the container fallback image
//   - Logging: log format and level
type Config struct {
	Paths     Paths     `toml:"paths"`
	Scan      Scan      `toml:"scan"`
	Subtitles Subtitles `toml:"subtitles"`
	Profiles  Profiles  `toml:"profiles"`
	Runner    Runner    `toml:"runner"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/mediasift/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config
// has all path fields expanded and normalized. A missing file is not an error;
// defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("mediasift.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the state and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.StateDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// CodecSet returns the accepted subtitle codecs as a lookup set.
func (c *Config) CodecSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Subtitles.Codecs))
	for _, codec := range c.Subtitles.Codecs {
		codec = strings.ToLower(strings.TrimSpace(codec))
		if codec != "" {
			set[codec] = struct{}{}
		}
	}
	return set
}

// TargetProfileSet returns the flagged format profiles as a lookup set.
// Matching is case-sensitive, so entries are only trimmed.
func (c *Config) TargetProfileSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Profiles.Targets))
	for _, profile := range c.Profiles.Targets {
		profile = strings.TrimSpace(profile)
		if profile != "" {
			set[profile] = struct{}{}
		}
	}
	return set
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists at %s", expanded)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
