package callout

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrMalformed indicates that a callout block has a marker
	// that was opened but never properly closed.
	// All [SyntaxError]s match it with errors.Is.
	ErrMalformed = errors.New("malformed callout syntax")

	// ErrUnknownLabel indicates a request to render a step
	// for a label that the block does not use.
	ErrUnknownLabel = errors.New("unknown callout label")
)

// SyntaxError reports the position of a malformed marker.
type SyntaxError struct {
	// Offset is the byte offset of the offending backtick
	// in the cleaned text of the block.
	Offset int

	// Line and Column are the 1-indexed position of the backtick.
	// Column counts characters, not bytes.
	Line, Column int

	// Reason is a short description of what's wrong.
	Reason string
}

var _ error = (*SyntaxError)(nil)

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %v: %s", e.Line, e.Column, ErrMalformed, e.Reason)
}

// Unwrap returns [ErrMalformed].
func (e *SyntaxError) Unwrap() error {
	return ErrMalformed
}

// newSyntaxError builds a SyntaxError for the stray backtick at text[off].
func newSyntaxError(text string, off int) *SyntaxError {
	var reason string
	rest := text[off+1:]
	switch end := strings.IndexByte(rest, _markerDelim); {
	case end < 0:
		reason = "unterminated marker"
	case strings.IndexByte(rest[:end], _fragmentDelim) >= 0:
		reason = "malformed fragment"
	default:
		reason = "missing label"
	}

	lineStart := strings.LastIndexByte(text[:off], '\n') + 1
	return &SyntaxError{
		Offset: off,
		Line:   strings.Count(text[:off], "\n") + 1,
		Column: utf8.RuneCountInString(text[lineStart:off]) + 1,
		Reason: reason,
	}
}
