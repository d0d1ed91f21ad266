// Package probe extracts structural stream metadata from media containers.
//
// Probing is read-only: ffprobe enumerates subtitle streams and mediainfo
// reads the video format profile, both through an injected runner so the
// same code serves local and containerized tool installs. No payload is
// ever decoded.
package probe
