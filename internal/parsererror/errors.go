// Package parsererror defines the error types surfaced by the statement
// parsing pipeline. Line-level failures wrap one of the named kinds so that
// callers can match them with errors.Is instead of inspecting message text.
package parsererror

import (
	"errors"
	"fmt"
)

// Named line-parse failure kinds.
var (
	// ErrMalformedDateCount - line contains dates but not exactly two.
	ErrMalformedDateCount = errors.New("line has dates but not exactly two")

	// ErrUnexpectedDatePlacement - the first date does not start at offset 0.
	ErrUnexpectedDatePlacement = errors.New("first date does not open the line")

	// ErrDateParse - a date substring matched the shape but failed calendar
	// parsing.
	ErrDateParse = errors.New("date text failed calendar parsing")

	// ErrNoAmount - no amount-shaped substring anchored at the line end.
	ErrNoAmount = errors.New("no amount found at line end")

	// ErrAmbiguousAmount - more than one amount-shaped substring where one
	// was expected.
	ErrAmbiguousAmount = errors.New("more than one amount found")

	// ErrAmountOutOfRange - amount exceeds the sanity ceiling.
	ErrAmountOutOfRange = errors.New("amount exceeds sanity ceiling")

	// ErrUnrecognisedSuffix - credit/debit suffix outside CR, DR, Payment.
	ErrUnrecognisedSuffix = errors.New("unrecognised credit/debit suffix")

	// ErrAmountTextNotFound - the normalized amount could not be re-located
	// verbatim in the source text.
	ErrAmountTextNotFound = errors.New("amount text not found in line")
)

// LineError reports a statement line that could not be turned into a record.
// It wraps one of the named failure kinds and carries the offending line
// verbatim so the caller can log or surface it.
type LineError struct {
	Line string
	Err  error
}

// NewLineError wraps a named failure kind with the offending line.
func NewLineError(line string, kind error) *LineError {
	return &LineError{Line: line, Err: kind}
}

func (e *LineError) Error() string {
	return fmt.Sprintf("parse statement line %q: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure on produced rows.
type ValidationError struct {
	FilePath string
	Row      int
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("validation failed for %s row %d: %s", e.FilePath, e.Row, e.Reason)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format for a specific parser.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// DataExtractionError represents a failure of the external table-extraction
// tool, before any line ever reaches the parser.
type DataExtractionError struct {
	FilePath string
	Tool     string
	Reason   string
	Err      error
}

func (e *DataExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction with %s failed for '%s': %s: %v",
			e.Tool, e.FilePath, e.Reason, e.Err)
	}
	return fmt.Sprintf("extraction with %s failed for '%s': %s",
		e.Tool, e.FilePath, e.Reason)
}

func (e *DataExtractionError) Unwrap() error {
	return e.Err
}
