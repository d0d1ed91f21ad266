// Package scan discovers candidate media files beneath a root path.
//
// A directory root is walked recursively for the configured extension with
// an optional modification-time window; a file root is returned as-is and
// bypasses the window. Traversal order is whatever the filesystem yields.
package scan
