// Package errors provides standardized error types and helpers for the RuneCast codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrOutOfRange indicates a code point outside 0..0x10FFFF
	ErrOutOfRange = errors.New("code point out of range")
	// ErrSurrogateNotAllowed indicates a code point in the UTF-16 surrogate range
	ErrSurrogateNotAllowed = errors.New("surrogate code point not allowed")
	// ErrInvalidEncoding indicates a byte sequence that is not canonical UTF-8
	ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
)

// ScalarError represents a rejected scalar value with context
type ScalarError struct {
	Value int64 // The offending integer
	Err   error // ErrOutOfRange or ErrSurrogateNotAllowed
}

func (e *ScalarError) Error() string {
	if errors.Is(e.Err, ErrSurrogateNotAllowed) {
		return fmt.Sprintf("scalar value U+%04X is a surrogate code point", e.Value)
	}
	if e.Value < 0 {
		return fmt.Sprintf("scalar value %d is negative", e.Value)
	}
	return fmt.Sprintf("scalar value 0x%X exceeds U+10FFFF", e.Value)
}

func (e *ScalarError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrOutOfRange
}

// DecodeError represents a malformed UTF-8 byte sequence with context
type DecodeError struct {
	Offset int    // Byte offset of the failure within the input
	Reason string // Human-readable error message
	Err    error  // Underlying error, if any
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 at byte %d: %s", e.Offset, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidEncoding
}

// ParseError represents a parsing error in a code-point list file
type ParseError struct {
	Path    string // File path, if applicable
	Line    int    // 1-based line number
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// Helper functions for creating common errors

// NewOutOfRange creates a ScalarError for a value outside 0..0x10FFFF
func NewOutOfRange(value int64) *ScalarError {
	return &ScalarError{Value: value, Err: ErrOutOfRange}
}

// NewSurrogate creates a ScalarError for a value in 0xD800..0xDFFF
func NewSurrogate(value int64) *ScalarError {
	return &ScalarError{Value: value, Err: ErrSurrogateNotAllowed}
}

// NewDecode creates a DecodeError
func NewDecode(offset int, message string) *DecodeError {
	return &DecodeError{Offset: offset, Reason: message}
}

// NewParse creates a ParseError
func NewParse(path string, line int, message string) *ParseError {
	return &ParseError{Path: path, Line: line, Message: message}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
