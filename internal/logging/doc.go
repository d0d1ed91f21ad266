// Package logging wraps log/slog with mediasift conventions: a compact
// console handler for interactive use, a JSON handler for machine
// consumption, typed attribute helpers, and a component-tagging convention
// shared by all pipeline stages.
package logging
