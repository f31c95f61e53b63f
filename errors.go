package qfu

import "fmt"

// ErrorKind classifies front-end validation failures. Every failure produced
// by this package before dispatch carries exactly one kind; the CLI boundary
// renders the message once and maps any kind to a failed exit status.
type ErrorKind string

const (
	// KindFormat marks a malformed identifier token.
	KindFormat ErrorKind = "format"
	// KindSelection marks a device that cannot be determined or resolved.
	KindSelection ErrorKind = "selection"
	// KindConfig marks contradictory device-open mode flags.
	KindConfig ErrorKind = "config"
	// KindUsage marks wrong action cardinality or missing required arguments.
	KindUsage ErrorKind = "usage"
	// KindRange marks a numeric argument outside its permitted bounds.
	KindRange ErrorKind = "range"
)

// Error is a validation failure with a stable kind and a human-readable
// message. Cause, when set, preserves the underlying parse error.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf returns the kind attached to err, or "" when err is not a
// validation error from this package.
func KindOf(err error) ErrorKind {
	for err != nil {
		if verr, ok := err.(*Error); ok {
			return verr.Kind
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = unwrapper.Unwrap()
	}
	return ""
}

func newErrorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapErrorf(kind ErrorKind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}
