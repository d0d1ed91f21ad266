// Package policy evaluates stream metadata against the configured rules.
//
// Rules are immutable snapshots built once from config; matching is a pure
// function of (record, rules) with no side effects, so decisions can be
// asserted directly in tests.
package policy
