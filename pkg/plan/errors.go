package plan

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code. Codes classify every recoverable
// failure of the solver and the join pipeline; presentation layers map them
// to human wording.
type Code string

// Solver failure codes.
const (
	// ErrCodeSeparated means two constraint circles are too far apart to
	// meet, beyond tolerance.
	ErrCodeSeparated Code = "SEPARATED"
	// ErrCodeContained means one constraint circle lies inside the other,
	// beyond tolerance.
	ErrCodeContained Code = "CONTAINED"
	// ErrCodeUnderconstrained means the polygon carries fewer diagonal or
	// angle constraints than rigidity requires.
	ErrCodeUnderconstrained Code = "UNDERCONSTRAINED"
	// ErrCodeUnreachable means constraint counts suffice but the solved
	// neighborhood never reaches every vertex.
	ErrCodeUnreachable Code = "UNREACHABLE"
	// ErrCodeTooFewVertices means the polygon has fewer than three vertices.
	ErrCodeTooFewVertices Code = "TOO_FEW_VERTICES"
)

// Join failure codes.
const (
	// ErrCodeSelfJoin means source and target edge belong to the same polygon.
	ErrCodeSelfJoin Code = "SELF_JOIN"
	// ErrCodeTargetUnlocked means one of the polygons is not locked by a
	// successful solve.
	ErrCodeTargetUnlocked Code = "TARGET_UNLOCKED"
	// ErrCodeAlreadyLinked means the two polygons are already joined through
	// some other edge pair.
	ErrCodeAlreadyLinked Code = "ALREADY_LINKED"
	// ErrCodeThicknessConflict means the two edges disagree on wall
	// thickness; the join waits for an external choice.
	ErrCodeThicknessConflict Code = "THICKNESS_CONFLICT"
)

// General codes.
const (
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // machine-readable classification
	Message string // human-readable message
	Cause   error  // underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error { return e.Cause }

// NewError creates an Error with the given code and formatted message.
func NewError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates an Error wrapping an existing error.
func WrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from err, or "" if err is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
