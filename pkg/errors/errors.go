// Package errors defines the coded errors returned across triangulator.
//
// Every failure a user can act on carries a [Code]: a bad manifest, a mask
// that does not exist, a cut that produced nothing, a session asked for
// sheets too early. Callers branch on the code with [Is] instead of matching
// message text, and the CLI shows [UserMessage] without the code.
//
//	err := errors.New(errors.ErrCodeInvalidMask, "unknown mask %d", id)
//	if errors.Is(err, errors.ErrCodeInvalidMask) {
//	    ...
//	}
//
// The package is imported as errs where it would shadow the standard
// library.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error code.
type Code string

// Input errors.
const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidMask     Code = "INVALID_MASK"
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
	ErrCodeInvalidLabel    Code = "INVALID_LABEL"
)

// Resource errors.
const (
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeNoImage      Code = "NO_IMAGE"
	ErrCodeNoPieces     Code = "NO_PIECES"
)

// Session state errors. These are notices: the session is left as it was
// and the user can carry on.
const (
	ErrCodeCanvasNotReady    Code = "CANVAS_NOT_READY"
	ErrCodeSequenceComplete  Code = "SEQUENCE_COMPLETE"
	ErrCodeSessionIncomplete Code = "SESSION_INCOMPLETE"
)

// ErrCodeInternal marks a bug rather than bad input.
const ErrCodeInternal Code = "INTERNAL_ERROR"

// Notice reports whether c describes a recoverable session state rather
// than a failure. A cut that yields no pieces is a notice too.
func (c Code) Notice() bool {
	switch c {
	case ErrCodeCanvasNotReady, ErrCodeSequenceComplete, ErrCodeSessionIncomplete, ErrCodeNoPieces:
		return true
	}
	return false
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an error with code that wraps cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost coded error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost coded error in err's chain, or
// "" if there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns err's text with the coded error reduced to its
// message: context added around it by fmt.Errorf is kept, the code and the
// low-level cause are dropped.
//
//	photo 2 (mask 4): NO_PIECES: no triangles produced
//	→ photo 2 (mask 4): no triangles produced
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	full, inner := err.Error(), e.Error()
	if prefix, ok := strings.CutSuffix(full, inner); ok {
		return prefix + e.Message
	}
	return e.Message
}
