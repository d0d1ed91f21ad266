package probe

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"mediasift/internal/runner"
)

// Stream describes one subtitle stream inside a container. Index is the
// container-global stream ordinal ffprobe reports; it addresses the stream
// in later ffmpeg -map calls and is never renumbered.
type Stream struct {
	Index    int
	Codec    string
	Language string
}

// Subtitles enumerates the subtitle streams of the given file with one
// synchronous ffprobe call. A file without subtitle streams yields an empty
// slice, not an error.
func Subtitles(ctx context.Context, r runner.Runner, binary, path string) ([]Stream, error) {
	inv := runner.Invocation{
		Tool: binary,
		Args: []string{
			"-v", "error",
			"-select_streams", "s",
			"-show_entries", "stream=index,codec_name:stream_tags=language",
			"-of", "csv=p=0",
			path,
		},
		Mounts: []runner.Mount{{HostDir: filepath.Dir(path)}},
	}
	output, err := r.Output(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", filepath.Base(path), err)
	}
	streams, err := parseSubtitleRecords(string(output))
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", filepath.Base(path), err)
	}
	return streams, nil
}

// parseSubtitleRecords decodes one csv record per stream. Each record is
// index,codec[,language]; the language column is absent when the stream
// carries no tag. Surrounding whitespace is tolerated in every field.
func parseSubtitleRecords(output string) ([]Stream, error) {
	var streams []Stream
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed stream record %q", line)
		}
		index, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("malformed stream index in record %q", line)
		}
		stream := Stream{
			Index: index,
			Codec: strings.ToLower(strings.TrimSpace(fields[1])),
		}
		if len(fields) > 2 {
			stream.Language = strings.ToLower(strings.TrimSpace(fields[2]))
		}
		streams = append(streams, stream)
	}
	return streams, nil
}
