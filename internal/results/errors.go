package results

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the core unwraps to exactly one of these,
// so callers can branch with errors.Is.
var (
	// ErrNotFound indicates the input path does not exist.
	ErrNotFound = errors.New("not found")

	// ErrFormat indicates a required element is absent or malformed.
	ErrFormat = errors.New("format error")

	// ErrValidation indicates input that parsed but is semantically empty.
	ErrValidation = errors.New("validation error")

	// ErrConfig indicates an invalid penalty configuration.
	ErrConfig = errors.New("config error")

	// ErrIO indicates a file that exists could not be read, or the output
	// destination could not be written.
	ErrIO = errors.New("io error")
)

// Error carries a kind, a human-readable message and an optional cause.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Is reports whether target is this error's kind.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error { return e.Err }

// NotFoundf creates an ErrNotFound error.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Formatf creates an ErrFormat error.
func Formatf(format string, args ...any) error {
	return &Error{Kind: ErrFormat, Msg: fmt.Sprintf(format, args...)}
}

// Validationf creates an ErrValidation error.
func Validationf(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Msg: fmt.Sprintf(format, args...)}
}

// Configf creates an ErrConfig error.
func Configf(format string, args ...any) error {
	return &Error{Kind: ErrConfig, Msg: fmt.Sprintf(format, args...)}
}

// WrapIO wraps an I/O failure as an ErrIO error.
func WrapIO(msg string, err error) error {
	return &Error{Kind: ErrIO, Msg: msg, Err: err}
}

// Wrap attaches a kind to an existing cause.
func Wrap(kind error, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the kind of err, or nil if err is not a core error.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}
