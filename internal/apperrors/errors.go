package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientData indicates that the user does not yet have enough
// transaction data for a meaningful credit score.
var ErrInsufficientData = errors.New("insufficient data for scoring")

// AppError wraps an underlying error with an HTTP-ish status code and a message.
// Used primarily by the persistence layer.
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

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// InsufficientDataError carries the specific unmet data requirements so the
// caller can display or act on them. It matches ErrInsufficientData under
// errors.Is.
type InsufficientDataError struct {
	UnmetRequirements []string
}

func (e *InsufficientDataError) Error() string {
	if len(e.UnmetRequirements) == 0 {
		return ErrInsufficientData.Error()
	}
	return fmt.Sprintf("%s: unmet requirements: %s", ErrInsufficientData.Error(), strings.Join(e.UnmetRequirements, ", "))
}

func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// NewInsufficientDataError creates an InsufficientDataError naming the unmet requirements.
func NewInsufficientDataError(unmet []string) *InsufficientDataError {
	return &InsufficientDataError{UnmetRequirements: unmet}
}
