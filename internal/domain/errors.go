package domain

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is the sentinel wrapped by every MalformedInputError.
var ErrMalformedInput = errors.New("malformed coverage input")

// MalformedInputError reports a structural violation of the LCOV grammar.
type MalformedInputError struct {
	Line   int    // 1-based line number of the offending record
	Text   string // offending record, trimmed
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s: line %d: %s", ErrMalformedInput, e.Line, e.Reason)
	}

	return fmt.Sprintf("%s: line %d: %s: %q", ErrMalformedInput, e.Line, e.Reason, e.Text)
}

// Unwrap allows errors.Is(err, ErrMalformedInput).
func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}

func malformed(line int, text, reason string) error {
	return &MalformedInputError{Line: line, Text: text, Reason: reason}
}
