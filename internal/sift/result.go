package sift

import (
	"mediasift/internal/media/probe"
	"mediasift/internal/policy"
)

// Outcome is the terminal state of a file (or of a single stream action).
type Outcome int

const (
	// OutcomeNoStreams: probed successfully, nothing of the relevant kind.
	OutcomeNoStreams Outcome = iota
	// OutcomeNoMatch: streams present but policy rejected all of them.
	OutcomeNoMatch
	// OutcomeSkippedExisting: the artifact already exists; nothing written.
	OutcomeSkippedExisting
	// OutcomeConverted: an artifact was produced.
	OutcomeConverted
	// OutcomeFlagged: profile matched the report policy (profiles mode).
	OutcomeFlagged
	// OutcomeFailed: probe or conversion failed for this file.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoStreams:
		return "no-streams"
	case OutcomeNoMatch:
		return "no-match"
	case OutcomeSkippedExisting:
		return "skipped-existing"
	case OutcomeConverted:
		return "converted"
	case OutcomeFlagged:
		return "flagged"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StreamAction records what happened to one probed stream.
type StreamAction struct {
	Stream   probe.Stream
	Decision policy.Decision
	Target   string
	Outcome  Outcome
	Err      error
}

// FileResult is the terminal record for one scanned file.
type FileResult struct {
	Path    string
	Outcome Outcome
	Profile string
	Actions []StreamAction
	Err     error
}

// Summary aggregates counters for a whole run.
type Summary struct {
	Scanned   int
	Converted int
	Flagged   int
	Skipped   int
	NoStreams int
	NoMatch   int
	Failed    int
}

func (s *Summary) add(result FileResult) {
	s.Scanned++
	switch result.Outcome {
	case OutcomeConverted:
		s.Converted++
	case OutcomeFlagged:
		s.Flagged++
	case OutcomeSkippedExisting:
		s.Skipped++
	case OutcomeNoStreams:
		s.NoStreams++
	case OutcomeNoMatch:
		s.NoMatch++
	case OutcomeFailed:
		s.Failed++
	}
}

// fileOutcome derives the per-file terminal state from its stream actions.
// Failure wins so partial success is still surfaced as a problem; a produced
// artifact outranks skips and non-matches.
func fileOutcome(actions []StreamAction) Outcome {
	outcome := OutcomeNoStreams
	if len(actions) > 0 {
		outcome = OutcomeNoMatch
	}
	skipped, converted := false, false
	for _, action := range actions {
		switch action.Outcome {
		case OutcomeFailed:
			return OutcomeFailed
		case OutcomeConverted:
			converted = true
		case OutcomeSkippedExisting:
			skipped = true
		}
	}
	if converted {
		return OutcomeConverted
	}
	if skipped {
		return OutcomeSkippedExisting
	}
	return outcome
}
