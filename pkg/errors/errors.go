// Package errors provides structured error reporting for carousel hosts.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = stderrors.New("invalid configuration")

// ErrNoHost is returned when an operation needs an engine that was not supplied.
var ErrNoHost = stderrors.New("no host engine")

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid option or config file.
	KindConfig
	// KindHost indicates a host engine or mount target problem.
	KindHost
	// KindState indicates a rejected state transition.
	KindState
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindRender indicates a rendering error.
	KindRender
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindHost:
		return "host"
	case KindState:
		return "state"
	case KindPanic:
		return "panic"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// CarouselError is a structured error raised by the carousel packages.
type CarouselError struct {
	// Op is the operation that failed (e.g., "carousel.Update").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Field names the offending option, if any.
	Field string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CarouselError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s [%s] field=%s: %v", e.Op, e.Kind, e.Field, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *CarouselError) Unwrap() error {
	return e.Err
}

// Config builds a KindConfig error for field, wrapping ErrInvalidConfig.
func Config(op, field, format string, args ...any) *CarouselError {
	return &CarouselError{
		Op:    op,
		Kind:  KindConfig,
		Field: field,
		Err:   fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)),
	}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.timer").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by the carousel packages.
type Handler interface {
	// HandleError is called when an error is reported.
	HandleError(err *CarouselError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
