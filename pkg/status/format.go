package status

import (
	"fmt"
)

// FileFormatter defines how outcomes and summaries are turned into text
type FileFormatter interface {
	// FormatOutcome formats the result of a single action
	FormatOutcome(o Outcome) string

	// FormatSummary formats the totals of a report
	FormatSummary(r *Report) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatOutcome formats an outcome as "<state> <source> -> <destination>"
func (f *DefaultFileFormatter) FormatOutcome(o Outcome) string {
	src := o.Action.Source.Path
	dst := o.Action.Destination
	switch o.State {
	case StateCopied:
		return fmt.Sprintf("Copied %s -> %s", src, dst)
	case StateDeleted:
		return fmt.Sprintf("Moved %s -> %s", src, dst)
	case StateKept:
		return fmt.Sprintf("Copied %s -> %s but could not remove source: %v", src, dst, o.Err)
	case StateFailed:
		return fmt.Sprintf("Failed %s (%s): %v", src, o.Stage, o.Err)
	default:
		return fmt.Sprintf("Planned %s -> %s", src, dst)
	}
}

// FormatSummary formats the report totals
func (f *DefaultFileFormatter) FormatSummary(r *Report) string {
	total := len(r.Outcomes)
	if !r.Committed {
		return fmt.Sprintf("%d file(s) planned, nothing written", total)
	}

	failed := len(r.Failed())
	done := r.Count(StateCopied)
	verb := "copied"
	if r.Move {
		done = r.Count(StateDeleted)
		verb = "moved"
	}
	if failed == 0 {
		return fmt.Sprintf("%d/%d file(s) %s", done, total, verb)
	}
	return fmt.Sprintf("%d/%d file(s) %s, %d failed", done, total, verb, failed)
}
