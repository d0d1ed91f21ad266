package runner

import (
	"errors"
	"fmt"

	"mediasift/internal/config"
	"mediasift/internal/deps"
)

// ErrMissingDependency indicates no usable execution strategy exists for a
// required tool. It is fatal and must be reported before any scanning begins.
var ErrMissingDependency = errors.New("missing dependency")

// Selection holds the strategy chosen for each external tool. Resolution
// happens once per process; the pipeline only sees Runner values.
type Selection struct {
	FFprobe   Runner
	FFmpeg    Runner
	Mediainfo Runner
}

// ResolveExtract picks strategies for the subtitle pipeline (ffprobe + ffmpeg).
// Local binaries win; docker with the configured ffmpeg image is the fallback.
func ResolveExtract(cfg *config.Config) (Selection, error) {
	ffprobe, err := resolveTool(cfg.Runner.FFprobe, cfg.Runner.Docker, cfg.Runner.DockerImage)
	if err != nil {
		return Selection{}, err
	}
	ffmpeg, err := resolveTool(cfg.Runner.FFmpeg, cfg.Runner.Docker, cfg.Runner.DockerImage)
	if err != nil {
		return Selection{}, err
	}
	return Selection{FFprobe: ffprobe, FFmpeg: ffmpeg}, nil
}

// ResolveProfiles picks the strategy for the profile pipeline (mediainfo).
func ResolveProfiles(cfg *config.Config) (Selection, error) {
	mediainfo, err := resolveTool(cfg.Runner.Mediainfo, cfg.Runner.Docker, cfg.Runner.DockerMediainfoImage)
	if err != nil {
		return Selection{}, err
	}
	return Selection{Mediainfo: mediainfo}, nil
}

func resolveTool(binary, docker, image string) (Runner, error) {
	if deps.Available(binary) {
		return NewLocal(), nil
	}
	if deps.Available(docker) {
		return NewDocker(docker, image), nil
	}
	return nil, fmt.Errorf("%w: %s not installed and %s unavailable for the container fallback", ErrMissingDependency, binary, docker)
}
