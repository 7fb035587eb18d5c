// Package errors provides structured error handling for the fomantic bindings.
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
	// KindHost indicates a failure reported by the host widget system.
	KindHost
	// KindSerialization indicates a configuration value the host cannot represent.
	KindSerialization
	// KindLookup indicates a selector query that matched no host object.
	KindLookup
	// KindBuild indicates builder misuse, such as finalizing a builder twice.
	KindBuild
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindHost:
		return "host"
	case KindSerialization:
		return "serialization"
	case KindLookup:
		return "lookup"
	case KindBuild:
		return "build"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error raised at the host boundary.
type Error struct {
	// Op is the operation that failed (e.g., "modal.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Selector is the DOM selector involved, if applicable.
	Selector string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Selector != "" {
		return fmt.Sprintf("%s [%s] selector=%s: %v", e.Op, e.Kind, e.Selector, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// SerializationError reports a configuration struct that could not be
// converted into a host parameter object.
type SerializationError struct {
	// Type is the Go type that was being serialized.
	Type string
	// Err is the encoder failure.
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("cannot serialize %s for the host: %v", e.Type, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// LookupError reports a selector query that found no host object.
type LookupError struct {
	// Selector is the query that was run.
	Selector string
	// Diagnostic is the text reported by the host, if any.
	Diagnostic string
}

func (e *LookupError) Error() string {
	if e.Diagnostic != "" {
		return fmt.Sprintf("no host object matches %q: %s", e.Selector, e.Diagnostic)
	}
	return fmt.Sprintf("no host object matches %q", e.Selector)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "modal.onApprove").
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

// ErrorHandler receives errors reported by the bindings.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
