package int128

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of every error returned by this package. Arithmetic never
// returns errors; only parsing and decoding do.
var Error = errs.Class("int128")

var (
	// ErrSyntax indicates the input is not a valid integer in the requested
	// base. Test for it with errors.Is.
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange indicates the input is a valid integer that does not fit in
	// an Int128.
	ErrRange = errors.New("value out of range")
)

func syntaxError(format string, args ...interface{}) error {
	return Error.Wrap(fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...)))
}

func rangeError(format string, args ...interface{}) error {
	return Error.Wrap(fmt.Errorf("%w: %s", ErrRange, fmt.Sprintf(format, args...)))
}
