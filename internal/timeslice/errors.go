package timeslice

import (
	"fmt"
	"sort"
	"strings"
)

// ConfigurationError indicates an unsatisfiable scenario configuration,
// e.g. more stress periods requested than distinct periods exist.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

func configErrorf(format string, args ...interface{}) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// DataIntegrityError indicates malformed input data: wrong series length,
// NaN/Inf values, or a uniformly-zero demand series.
type DataIntegrityError struct {
	Reason string
}

func (e *DataIntegrityError) Error() string {
	return "data integrity error: " + e.Reason
}

func dataErrorf(format string, args ...interface{}) error {
	return &DataIntegrityError{Reason: fmt.Sprintf(format, args...)}
}

// AssemblyInvariantError indicates a violated assembly invariant: an hour
// claimed twice or left unlabeled. Hours carries the exact offending indices.
type AssemblyInvariantError struct {
	Reason string
	Hours  []int
}

func (e *AssemblyInvariantError) Error() string {
	if len(e.Hours) == 0 {
		return "assembly invariant violated: " + e.Reason
	}
	return fmt.Sprintf("assembly invariant violated: %s: hours %s", e.Reason, formatHours(e.Hours))
}

// formatHours renders up to 20 hour indices; the tail is elided with a count
// so a grossly broken run doesn't produce a megabyte error message.
func formatHours(hours []int) string {
	sorted := append([]int(nil), hours...)
	sort.Ints(sorted)

	const limit = 20
	shown := sorted
	if len(shown) > limit {
		shown = shown[:limit]
	}

	parts := make([]string, len(shown))
	for i, h := range shown {
		parts[i] = fmt.Sprintf("%d", h)
	}
	s := strings.Join(parts, ",")
	if len(sorted) > limit {
		s += fmt.Sprintf(",... (%d total)", len(sorted))
	}
	return s
}
