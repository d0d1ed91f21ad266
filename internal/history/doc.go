// Package history persists run summaries in SQLite so earlier scans of a
// library remain inspectable from the CLI.
package history
