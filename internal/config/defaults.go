package config

import "mediasift/internal/language"

const (
	defaultStateDir            = "~/.local/share/mediasift"
	defaultLogDir              = "~/.local/share/mediasift/logs"
	defaultExtension           = ".mkv"
	defaultTargetExtension     = "srt"
	defaultFFmpegBinary        = "ffmpeg"
	defaultFFprobeBinary       = "ffprobe"
	defaultMediainfoBinary     = "mediainfo"
	defaultDockerBinary        = "docker"
	defaultDockerImage         = "linuxserver/ffmpeg"
	defaultMediainfoImage      = "mediaarea/mediainfo"
	defaultProfileProbeTimeout = 30
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// defaultCodecs are the text subtitle codecs ffmpeg can convert to SRT.
var defaultCodecs = []string{"subrip", "srt", "ass", "ssa"}

// defaultTargetProfiles are HEVC format profiles that commonly force server-side
// transcoding on older playback devices.
var defaultTargetProfiles = []string{
	"Main 10@L5.1@High",
	"Main 10@L5@High",
	"Main 10@L5.2@High",
	"High 10@L5",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Scan: Scan{
			Extension: defaultExtension,
		},
		Subtitles: Subtitles{
			Codecs:          append([]string(nil), defaultCodecs...),
			Languages:       language.QualifierMap(),
			TargetExtension: defaultTargetExtension,
		},
		Profiles: Profiles{
			Targets:             append([]string(nil), defaultTargetProfiles...),
			ProbeTimeoutSeconds: defaultProfileProbeTimeout,
		},
		Runner: Runner{
			FFmpeg:               defaultFFmpegBinary,
			FFprobe:              defaultFFprobeBinary,
			Mediainfo:            defaultMediainfoBinary,
			Docker:               defaultDockerBinary,
			DockerImage:          defaultDockerImage,
			DockerMediainfoImage: defaultMediainfoImage,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
