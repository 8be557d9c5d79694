/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package errors

import (
	"errors"
	"fmt"
)

// Error codes as constants
const (
	ErrCodeMissingInput   = "MISSING_INPUT"
	ErrCodeMalformedJSON  = "MALFORMED_JSON"
	ErrCodeRateLimited    = "RATE_LIMIT_EXCEEDED"
	ErrCodeGeneration     = "GENERATION_FAILED"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeInternal       = "INTERNAL_ERROR"
)

// StructuredError is an error carrying a machine-readable code alongside the
// human-readable message. Components classify failures by code rather than by
// matching message text.
type StructuredError struct {
	// Code is one of the ErrCode* constants.
	Code string

	// Message is the human-readable description.
	Message string

	// Err is the wrapped cause, if any.
	Err error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause.
func (e *StructuredError) Unwrap() error {
	return e.Err
}

// New creates a StructuredError with the given code and message.
func New(code, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// Newf creates a StructuredError with a formatted message.
func Newf(code, format string, args ...any) *StructuredError {
	return &StructuredError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a StructuredError wrapping an underlying cause.
func Wrap(code, message string, err error) *StructuredError {
	return &StructuredError{Code: code, Message: message, Err: err}
}

// Code extracts the structured code from an error chain.
// Returns ErrCodeInternal for nil-code chains so callers always get a
// classifiable value.
func Code(err error) string {
	var se *StructuredError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code string) bool {
	var se *StructuredError
	return errors.As(err, &se) && se.Code == code
}
