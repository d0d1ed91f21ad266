package policy

import (
	"strings"

	"mediasift/internal/config"
	"mediasift/internal/media/probe"
)

// Reason explains why a stream was or was not selected.
type Reason int

const (
	ReasonMatched Reason = iota
	ReasonRejectedCodec
	ReasonRejectedLanguage
)

func (r Reason) String() string {
	switch r {
	case ReasonMatched:
		return "matched"
	case ReasonRejectedCodec:
		return "codec not extractable"
	case ReasonRejectedLanguage:
		return "language not wanted"
	default:
		return "unknown"
	}
}

// Decision is the outcome of matching one stream.
type Decision struct {
	Matched   bool
	Qualifier string
	Reason    Reason
}

// SubtitleRules is the immutable extraction policy.
type SubtitleRules struct {
	codecs     map[string]struct{}
	qualifiers map[string]string
}

// NewSubtitleRules snapshots the subtitle policy from config.
func NewSubtitleRules(cfg *config.Config) SubtitleRules {
	qualifiers := make(map[string]string, len(cfg.Subtitles.Languages))
	for tag, qualifier := range cfg.Subtitles.Languages {
		qualifiers[tag] = qualifier
	}
	return SubtitleRules{codecs: cfg.CodecSet(), qualifiers: qualifiers}
}

// Subtitle decides whether a stream should be extracted. A stream matches
// when its codec is extractable and its language tag maps to a qualifier.
// Failing either axis is an ordinary non-match, never an error.
func (r SubtitleRules) Subtitle(stream probe.Stream) Decision {
	codec := strings.ToLower(strings.TrimSpace(stream.Codec))
	if _, ok := r.codecs[codec]; !ok {
		return Decision{Reason: ReasonRejectedCodec}
	}
	tag := strings.ToLower(strings.TrimSpace(stream.Language))
	qualifier, ok := r.qualifiers[tag]
	if tag == "" || !ok {
		return Decision{Reason: ReasonRejectedLanguage}
	}
	return Decision{Matched: true, Qualifier: qualifier, Reason: ReasonMatched}
}

// ProfileRules is the immutable format-profile report policy.
type ProfileRules struct {
	targets map[string]struct{}
}

// NewProfileRules snapshots the profile policy from config.
func NewProfileRules(cfg *config.Config) ProfileRules {
	return ProfileRules{targets: cfg.TargetProfileSet()}
}

// Profile reports whether the probed profile string is flagged. Matching is
// exact and case-sensitive; no match is the common case.
func (r ProfileRules) Profile(profile string) bool {
	_, ok := r.targets[strings.TrimSpace(profile)]
	return ok
}
