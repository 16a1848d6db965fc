package validation

import (
	"strings"
	"time"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsNonNegativeDuration checks that a span of time is zero or positive
func (v *Validator) IsNonNegativeDuration(d time.Duration) bool {
	return d >= 0
}

// IsValidTimestamp parses an ISO-8601 instant with a zone designator
func (v *Validator) IsValidTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TrimAndValidateString trims whitespace from a string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
