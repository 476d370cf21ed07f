// Package paniclog turns panics into errors,
// logging the panic and its stack trace to an io.Writer.
package paniclog

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
)

// Handle handles a panic value, logging it and the current stack to w.
// Returns the error form of the panic, or nil if pval is nil.
//
// Panics with error values are returned as-is
// so that callers may match them with errors.Is.
func Handle(pval any, w io.Writer) error {
	if pval == nil {
		return nil
	}

	fmt.Fprintf(w, "panic: %v\n%s", pval, debug.Stack())

	switch pval := pval.(type) {
	case error:
		return pval
	case string:
		return errors.New(pval)
	default:
		return fmt.Errorf("panic: %v", pval)
	}
}

// Recover recovers a panic and stores it into the given error pointer.
// It must be called directly with defer.
//
//	defer paniclog.Recover(&err, stderr)
func Recover(err *error, w io.Writer) {
	if pval := recover(); pval != nil {
		*err = Handle(pval, w)
	}
}
