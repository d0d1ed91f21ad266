package sift

import (
	"errors"
	"fmt"
	"strings"
)

// Per-file failure markers. These tag result errors for classification; they
// are recorded in the summary and never abort the run.
var (
	ErrProbe      = errors.New("probe failed")
	ErrConversion = errors.New("conversion failed")
)

// Wrap tags err with the provided marker while keeping component and
// operation context in the message.
func Wrap(marker error, component, operation string, err error) error {
	detail := buildDetail(component, operation)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation string) string {
	parts := make([]string, 0, 2)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
