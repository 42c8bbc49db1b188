package expense

import (
	"errors"
	"fmt"
)

// ErrEmptyLedger is returned by reports that are undefined over an empty
// book, like the overview average.
var ErrEmptyLedger = errors.New("no transactions recorded")

// FormatError reports a malformed backing file: a missing column, an
// unparseable date, or a bad amount. When a load fails with a FormatError no
// partial table is returned.
type FormatError struct {
	File   string // path of the backing file
	Line   int    // 1-based line in the file, 0 when the whole file is at fault
	Reason string
	Err    error // underlying cause, may be nil
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ValidationError reports bad user-supplied input: a non-positive amount, an
// invalid date, or a reversed filter range. The operation that produced it
// left the book unchanged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
