package common

import "fmt"

// FormatError reports malformed input: a container whose length is not a
// block multiple, an archive with the wrong top-level shape, a bad log
// line, or a message payload shape we refuse to guess at. It is fatal to
// the run; everything committed before it stays committed.
type FormatError struct {
	Source string // file or stage the error came from
	Line   int    // 1-based line number, 0 when not line-oriented
	Record string // offending record id, when known
	Err    error
}

// NewFormatError wraps err with the location it was detected at.
func NewFormatError(source string, line int, record string, err error) *FormatError {
	return &FormatError{Source: source, Line: line, Record: record, Err: err}
}

func (e *FormatError) Error() string {
	msg := "malformed input"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	if e.Record != "" {
		msg += fmt.Sprintf(" (record %s)", e.Record)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }
