package locale

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSchema marks errors caused by a file that does not have the expected shape.
	ErrSchema = errors.New("locale: invalid locale file")

	// ErrMissingBaseline is returned when the baseline language has no file.
	ErrMissingBaseline = errors.New("locale: missing baseline language")

	// ErrIncomplete marks a locale set with missing or empty messages.
	ErrIncomplete = errors.New("locale: incomplete translations")
)

// SchemaError describes a locale file that cannot be used.
type SchemaError struct {
	Err    error
	File   string
	Reason string
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("locale: file %s %s", e.File, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SchemaError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSchema}
	}
	return []error{ErrSchema, e.Err}
}

// CompletenessError carries every issue found by Check.
type CompletenessError struct {
	Issues []Issue
}

func (e *CompletenessError) Error() string {
	lines := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		lines[i] = issue.String()
	}
	return fmt.Sprintf("%s: %d problem(s)\n%s", ErrIncomplete, len(e.Issues), strings.Join(lines, "\n"))
}

func (e *CompletenessError) Unwrap() error {
	return ErrIncomplete
}
