package fileoffset

import "fmt"

// ParseError is the uniform error surface for everything in the ingestion
// pipeline that can fail at a located point in the source: the XML
// tokenizer, the SVG attribute dispatcher, and the save pipeline's planner.
//
// Message text for the two documented fuzz-triage codes ("HIT_DEPTH_CAP",
// "HIT_SUBS_CAP") is kept stable by callers constructing those errors with
// NewLimitError so diagnostics tooling can grep for them across versions.
type ParseError struct {
	Reason   string
	Location FileOffset
	// Err, when non-nil, is a lower-level cause this error wraps.
	Err error
}

// NewParseError builds an error with a resolved location and no reason
// beyond the message text.
func NewParseError(reason string, location FileOffset) *ParseError {
	return &ParseError{Reason: reason, Location: location}
}

// NewLimitError builds a ParseError tagged with one of the two stable
// fuzz-triage codes. The code is folded into Reason so existing log
// scraping on the message text keeps working; structured consumers should
// prefer diagnostics.Sink, which logs the code as its own field.
func NewLimitError(code, detail string, location FileOffset) *ParseError {
	return &ParseError{Reason: fmt.Sprintf("%s: %s", code, detail), Location: location}
}

func (e *ParseError) Error() string {
	if e.Location.Offset == nil {
		return e.Reason
	}
	if e.Location.LineInfo != nil {
		return fmt.Sprintf("%s (line %d, column %d)", e.Reason, e.Location.LineInfo.Line, e.Location.LineInfo.Column)
	}
	return fmt.Sprintf("%s (offset %d)", e.Reason, *e.Location.Offset)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Rebase returns a copy of e with its Location shifted into the coordinate
// system of parentOffset, matching the "subparser errors are rebased via
// addParentOffset" propagation rule.
func (e *ParseError) Rebase(parentOffset FileOffset) *ParseError {
	rebased := *e
	rebased.Location = e.Location.AddParentOffset(parentOffset)
	return &rebased
}

// ParseResult holds either a successfully parsed value or a ParseError,
// a result-or-error pair that avoids relying on panics for the error
// path.
type ParseResult[T any] struct {
	value T
	err   *ParseError
}

// Ok wraps a successful result.
func Ok[T any](value T) ParseResult[T] {
	return ParseResult[T]{value: value}
}

// Err wraps a failed result.
func Err[T any](err *ParseError) ParseResult[T] {
	return ParseResult[T]{err: err}
}

// HasError reports whether this result carries an error.
func (r ParseResult[T]) HasError() bool { return r.err != nil }

// Result returns the wrapped value. Calling this when HasError() is true
// returns the zero value of T.
func (r ParseResult[T]) Result() T { return r.value }

// Error returns the wrapped error, or nil on success.
func (r ParseResult[T]) Error() *ParseError { return r.err }
