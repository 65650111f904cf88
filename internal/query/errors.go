package query

import (
	"errors"
	"fmt"
)

// CompileError represents an error detected while compiling a query.
//
// Compilation has exactly one failure mode: an unrecognized operator name.
// No partial or best-effort matcher is ever produced; the whole
// compilation fails and the offending operator is named.
type CompileError struct {
	// Code identifies the error category.
	Code CompileErrorCode

	// Operator is the offending operator name (for UNKNOWN_OPERATOR).
	Operator string

	// Message is a human-readable description.
	Message string
}

// CompileErrorCode categorizes compile errors.
type CompileErrorCode string

const (
	// ErrCodeUnknownOperator indicates a "$"-prefixed key that names no
	// registered operator.
	ErrCodeUnknownOperator CompileErrorCode = "UNKNOWN_OPERATOR"
)

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Operator != "" {
		return fmt.Sprintf("%s: %s: %q", e.Code, e.Message, e.Operator)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUnknownOperator returns true if the error is an unknown-operator
// compile error. Uses errors.As to handle wrapped errors.
func IsUnknownOperator(err error) bool {
	var ce *CompileError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeUnknownOperator
	}
	return false
}

func unknownOperator(name string) *CompileError {
	return &CompileError{
		Code:     ErrCodeUnknownOperator,
		Operator: name,
		Message:  "unknown operator",
	}
}
