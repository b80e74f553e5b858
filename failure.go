package rulekit

import (
	"fmt"
	"strings"
)

// Severity classifies how serious a validation failure is. Failures default
// to SeverityError; validators can downgrade individual checks to warnings
// or informational notices.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "error"
	}
}

// ParseSeverity maps a severity name to its value. Unknown names map to
// SeverityError.
func ParseSeverity(name string) Severity {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "warning", "warn":
		return SeverityWarning
	case "info":
		return SeverityInfo
	default:
		return SeverityError
	}
}

// Failure describes a single failed check on a single property. Failures
// are ordinary data, never raised as errors: a validation pass yields zero
// or one Failure per executor invocation.
type Failure struct {
	// PropertyName is the property path the owning rule was declared for.
	PropertyName string

	// DisplayName is the human-facing name resolved at failure time.
	DisplayName string

	// AttemptedValue is the value the check ran against, after any rule
	// transforms were applied.
	AttemptedValue any

	// Message is the final, placeholder-substituted failure text.
	Message string

	// ErrorCode identifies the failed check, either set explicitly on the
	// executor or derived by the configured resolver.
	ErrorCode string

	Severity    Severity
	CustomState any

	// PlaceholderValues carries every placeholder used to build Message so
	// downstream consumers can re-render it against other templates.
	PlaceholderValues map[string]any
}

// Result collects the ordered failures of one validation pass.
type Result struct {
	failures []Failure
}

// NewResult builds a Result from a failure sequence, keeping order.
func NewResult(failures []Failure) *Result {
	return &Result{failures: failures}
}

// IsValid reports whether the pass produced no failures.
func (r *Result) IsValid() bool {
	return len(r.failures) == 0
}

// Failures returns the failures in execution order.
func (r *Result) Failures() []Failure {
	return r.failures
}

// Has reports whether any failure was recorded for the property.
func (r *Result) Has(property string) bool {
	for _, f := range r.failures {
		if f.PropertyName == property {
			return true
		}
	}
	return false
}

// Get returns the failure messages recorded for the property, in order.
func (r *Result) Get(property string) []string {
	var messages []string
	for _, f := range r.failures {
		if f.PropertyName == property {
			messages = append(messages, f.Message)
		}
	}
	return messages
}

// Err returns the Result as an error when it holds failures, nil otherwise.
func (r *Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return r
}

// Error implements the error interface.
func (r *Result) Error() string {
	if len(r.failures) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, f := range r.failures {
		parts = append(parts, fmt.Sprintf("%s: %s", f.PropertyName, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
