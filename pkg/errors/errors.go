// Package errors provides structured error handling for the Ripple core.
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
	// KindModel indicates a state-model error.
	KindModel
	// KindBoundary indicates a foreign-boundary dispatch error.
	KindBoundary
	// KindParsing indicates a payload parsing failure.
	KindParsing
	// KindHash indicates a structural hashing error.
	KindHash
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindModel:
		return "model"
	case KindBoundary:
		return "boundary"
	case KindParsing:
		return "parsing"
	case KindHash:
		return "hash"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// CoreError represents a structured error in the Ripple core.
type CoreError struct {
	// Op is the operation that failed (e.g., "bridge.Call").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Method is the boundary method name, if applicable.
	Method string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CoreError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("%s [%s] method=%s: %v", e.Op, e.Kind, e.Method, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *CoreError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "model.notify").
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

// ParseError represents a failure to parse a boundary payload.
type ParseError struct {
	// Method is the boundary method that received the payload.
	Method string
	// DataType is the expected type name.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s for method %s: got %T", e.DataType, e.Method, e.Got)
}

// ErrorHandler receives errors reported by the Ripple core.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *CoreError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
