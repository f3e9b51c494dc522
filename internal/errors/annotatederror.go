// Package errors extends the standard library errors with annotations that carry structured [slog.Attr] and the
// source location where the error was first annotated.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
)

// annotatedError records a message, structured attributes, and the program counter of the annotation site.
type annotatedError struct {
	msg   string
	err   error
	attrs []slog.Attr
	pc    uintptr
}

func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.err
}

// callerPC returns the program counter skip frames above the caller of callerPC.
func callerPC(skip int) uintptr {
	var pcs [1]uintptr
	// Skip runtime.Callers, callerPC, and the exported constructor.
	runtime.Callers(skip+3, pcs[:]) //nolint:mnd // see above.
	return pcs[0]
}

// NewSentinel creates an error meant to be compared with [Is]. It does not record a source location because
// sentinels are declared at package level.
func NewSentinel(text string) error {
	return errors.New(text) //nolint:err113 // this is the sentinel constructor.
}

// New creates an error that records where it was created.
func New(text string, attrs ...slog.Attr) error {
	return &annotatedError{msg: text, err: nil, attrs: attrs, pc: callerPC(0)}
}

// Wrap annotates err with a message and optional attributes. Wrap returns nil if err is nil.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return &annotatedError{msg: msg, err: err, attrs: attrs, pc: callerPC(0)}
}

// DecoratePanic converts a value recovered from a panic into an error pointing at the panicking line.
// It returns nil if excp is nil.
func DecoratePanic(excp any) error {
	if excp == nil {
		return nil
	}
	var pcs [32]uintptr
	// Skip runtime.Callers and DecoratePanic.
	n := runtime.Callers(2, pcs[:]) //nolint:mnd // see above.
	frames := runtime.CallersFrames(pcs[:n])
	var (
		pc         uintptr
		fallback   uintptr
		afterPanic bool
	)
	for {
		frame, more := frames.Next()
		if fallback == 0 {
			fallback = frame.PC
		}
		if afterPanic {
			pc = frame.PC
			break
		}
		afterPanic = frame.Function == "runtime.gopanic"
		if !more {
			break
		}
	}
	if pc == 0 {
		pc = fallback
	}
	return &annotatedError{msg: fmt.Sprintf("panic: %v", excp), err: nil, attrs: nil, pc: pc}
}

// SlogError returns a structured attribute describing err, its collected annotations and its origin.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	var (
		attrs []any
		pc    uintptr
	)
	for e := err; e != nil; e = errors.Unwrap(e) {
		ae, ok := e.(*annotatedError) //nolint:errorlint // walking the chain one link at a time.
		if !ok {
			continue
		}
		for _, a := range ae.attrs {
			attrs = append(attrs, a)
		}
		if ae.pc != 0 {
			pc = ae.pc
		}
	}
	groupAttrs := []any{slog.String("message", err.Error())}
	if len(attrs) > 0 {
		groupAttrs = append(groupAttrs, slog.Group("annotations", attrs...))
	}
	if pc != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
		if frame.File != "" {
			groupAttrs = append(groupAttrs, slog.String("source", frame.File+":"+strconv.Itoa(frame.Line)))
		}
	}
	return slog.Group("error", groupAttrs...)
}

// Is reports whether any error in err's tree matches target. See [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target. See [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err. See [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join returns an error that wraps the given errors. See [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}
