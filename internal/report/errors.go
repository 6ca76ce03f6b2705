// Package report generates the downloadable PDF report for one prediction cycle.
package report

import "fmt"

// GenerationError represents a failure constructing the report document.
// Construction failures propagate as this type; a truncated or empty document
// is never written.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("report generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("report generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
