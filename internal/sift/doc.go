// Package sift drives the scan-probe-match-act pipeline.
//
// Each discovered file moves through an explicit per-file state machine:
// probed, matched against policy, guarded by an existence check, then acted
// on through the selected runner. Per-file errors are converted to results
// and never abort the run; only setup failures are fatal. Files are
// processed independently by a bounded worker pool, and the only shared
// state is the aggregated summary.
package sift
