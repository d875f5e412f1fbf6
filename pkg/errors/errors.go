// Package errors provides structured error handling for radio groups and the
// tooling around them.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid or unreadable radio.yaml.
	KindConfig
	// KindScenario indicates an invalid or failing scenario script.
	KindScenario
	// KindBinding indicates a form control could not be bound to an accessor.
	KindBinding
	// KindCallback indicates a user supplied callback misbehaved.
	KindCallback
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindScenario:
		return "scenario"
	case KindBinding:
		return "binding"
	case KindCallback:
		return "callback"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// RadioError represents a structured error raised outside the selection core.
type RadioError struct {
	// Op is the operation that failed (e.g., "config.Resolve").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file involved, if applicable.
	Path string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RadioError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RadioError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "radio.Group.emit").
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

// ValidationError reports a field holding a value outside its domain.
type ValidationError struct {
	// Field is the dotted path of the offending field (e.g., "defaults.color").
	Field string
	// Got is the rejected value.
	Got any
	// Reason describes what was expected.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Got, e.Reason)
}

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *RadioError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
