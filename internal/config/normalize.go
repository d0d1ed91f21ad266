package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeScan()
	c.normalizeSubtitles()
	c.normalizeProfiles()
	c.normalizeRunner()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeScan() {
	ext := strings.ToLower(strings.TrimSpace(c.Scan.Extension))
	if ext == "" {
		ext = defaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	c.Scan.Extension = ext
	if c.Scan.Workers < 0 {
		c.Scan.Workers = 0
	}
	if c.Scan.MaxAgeDays < 0 {
		c.Scan.MaxAgeDays = 0
	}
}

func (c *Config) normalizeSubtitles() {
	if len(c.Subtitles.Codecs) == 0 {
		c.Subtitles.Codecs = append([]string(nil), defaultCodecs...)
	}
	for i, codec := range c.Subtitles.Codecs {
		c.Subtitles.Codecs[i] = strings.ToLower(strings.TrimSpace(codec))
	}
	if len(c.Subtitles.Languages) == 0 {
		c.Subtitles.Languages = Default().Subtitles.Languages
	} else {
		normalized := make(map[string]string, len(c.Subtitles.Languages))
		for tag, qualifier := range c.Subtitles.Languages {
			tag = strings.ToLower(strings.TrimSpace(tag))
			qualifier = strings.ToLower(strings.TrimSpace(qualifier))
			if tag == "" || qualifier == "" {
				continue
			}
			normalized[tag] = qualifier
		}
		c.Subtitles.Languages = normalized
	}
	ext := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(c.Subtitles.TargetExtension)), ".")
	if ext == "" {
		ext = defaultTargetExtension
	}
	c.Subtitles.TargetExtension = ext
}

func (c *Config) normalizeProfiles() {
	if len(c.Profiles.Targets) == 0 {
		c.Profiles.Targets = append([]string(nil), defaultTargetProfiles...)
	}
	for i, profile := range c.Profiles.Targets {
		c.Profiles.Targets[i] = strings.TrimSpace(profile)
	}
	if c.Profiles.ProbeTimeoutSeconds <= 0 {
		c.Profiles.ProbeTimeoutSeconds = defaultProfileProbeTimeout
	}
}

func (c *Config) normalizeRunner() {
	c.Runner.FFmpeg = strings.TrimSpace(c.Runner.FFmpeg)
	if c.Runner.FFmpeg == "" {
		c.Runner.FFmpeg = defaultFFmpegBinary
	}
	c.Runner.FFprobe = strings.TrimSpace(c.Runner.FFprobe)
	if c.Runner.FFprobe == "" {
		c.Runner.FFprobe = defaultFFprobeBinary
	}
	c.Runner.Mediainfo = strings.TrimSpace(c.Runner.Mediainfo)
	if c.Runner.Mediainfo == "" {
		c.Runner.Mediainfo = defaultMediainfoBinary
	}
	c.Runner.Docker = strings.TrimSpace(c.Runner.Docker)
	if c.Runner.Docker == "" {
		c.Runner.Docker = defaultDockerBinary
	}
	c.Runner.DockerImage = strings.TrimSpace(c.Runner.DockerImage)
	if c.Runner.DockerImage == "" {
		c.Runner.DockerImage = defaultDockerImage
	}
	c.Runner.DockerMediainfoImage = strings.TrimSpace(c.Runner.DockerMediainfoImage)
	if c.Runner.DockerMediainfoImage == "" {
		c.Runner.DockerMediainfoImage = defaultMediainfoImage
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
