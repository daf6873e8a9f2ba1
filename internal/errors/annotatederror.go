package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// annotatedError includes more context than a plain error that is useful for troubleshooting.
type annotatedError struct {
	// msg is the error message.
	msg string
	// cause is the wrapped error, nil for errors created with New.
	cause error
	// pc is the program counter for the location of the error provided by runtime.Callers.
	pc uintptr
	// attrs are slog attributes that are added to the log event to provide more context for the error.
	attrs []slog.Attr
}

func newAnnotated(msg string, cause error, attrs []slog.Attr) *annotatedError {
	var pcs [1]uintptr
	// Skip runtime.Callers, this function and the exported constructor.
	runtime.Callers(3, pcs[:]) //nolint:mnd // see above
	return &annotatedError{
		msg:   msg,
		cause: cause,
		pc:    pcs[0],
		attrs: attrs,
	}
}

// New creates an error with the given message and slog attributes. The source location is recorded.
func New(msg string, attrs ...slog.Attr) error {
	return newAnnotated(msg, nil, attrs)
}

// NewSentinel creates a plain error without other context that can be detected with errors.Is.
func NewSentinel(msg string) error {
	return errors.New(msg)
}

// Wrap adds a message, the source location, and slog attributes to err. Returns nil if err is nil.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return newAnnotated(msg, err, attrs)
}

// Error implements error interface.
func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.msg, e.cause.Error())
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// LogValue formats the error for useful logging.
//
// Attributes and source locations from the whole chain of annotated errors are included,
// outermost first.
func (e *annotatedError) LogValue() slog.Value {
	var (
		attrs   []slog.Attr
		sources []string
	)
	var current error = e
	for current != nil {
		var annotated *annotatedError
		if !errors.As(current, &annotated) {
			break
		}
		frames := runtime.CallersFrames([]uintptr{annotated.pc})
		source, _ := frames.Next()
		sources = append(sources, fmt.Sprintf("%s:%d", source.File, source.Line))
		attrs = append(attrs, annotated.attrs...)
		current = annotated.cause
	}

	group := make([]slog.Attr, 0, len(attrs)+2) //nolint:mnd // message and source
	group = append(group, slog.String("msg", e.Error()))
	if len(sources) > 0 {
		group = append(group, slog.Any("source", sources))
	}
	group = append(group, attrs...)
	return slog.GroupValue(group...)
}

// SlogError is a convenience for logging errors with their annotations under the "error" key.
func SlogError(err error) slog.Attr {
	var annotated *annotatedError
	if errors.As(err, &annotated) && annotated == err { //nolint:errorlint // identity check is intended
		return slog.Any("error", annotated)
	}
	if errors.As(err, &annotated) {
		return slog.Group("error", slog.String("msg", err.Error()), slog.Any("cause", annotated))
	}
	return slog.String("error", err.Error())
}

// As exposes stdlib errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is exposes stdlib errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Unwrap exposes stdlib errors.Unwrap.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join exposes stdlib errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
