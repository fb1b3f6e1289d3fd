package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks
// (missing account, non-numeric amount, unbalanced lines).
var ErrValidation = errors.New("validation error")

// ErrDuplicateTransaction indicates an entry matching an already posted
// entry in the same period (date, description, refs and line pairs).
var ErrDuplicateTransaction = errors.New("duplicate transaction")

// ErrAccountNotFound indicates a journal line references an unknown or
// inactive account.
var ErrAccountNotFound = errors.New("account not found")

// ErrPeriodClosed indicates an attempt to post into a closed period.
var ErrPeriodClosed = errors.New("accounting period is closed")

// ErrInvariantViolation indicates an internally constructed entry
// (closing or reversal) failed to balance. This is unexpected, fatal to
// the operation, and must never be silently discarded.
var ErrInvariantViolation = errors.New("ledger invariant violation")

// ErrConflict indicates the operation conflicts with current state
// (e.g. reversing an already reversed queue item).
var ErrConflict = errors.New("conflicting state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries a code and message around a wrapped cause; used by the
// persistence layer so callers can still errors.Is against sentinels.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
