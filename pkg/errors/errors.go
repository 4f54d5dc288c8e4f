package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrFieldRange             = errors.New("loan parameters out of range")
	ErrMissingPrimaryCategory = errors.New("primary category is required")
	ErrInvalidSchedule        = errors.New("loan cannot be amortized")
	ErrInvalidDataset         = errors.New("invalid earnings dataset")
	ErrDatasetNotFound        = errors.New("earnings dataset not found")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeFieldRange             = "FIELD_RANGE"
	ErrCodeMissingPrimaryCategory = "MISSING_PRIMARY_CATEGORY"
	ErrCodeInvalidSchedule        = "INVALID_SCHEDULE"
	ErrCodeInvalidDataset         = "INVALID_DATASET"
	ErrCodeDatasetNotFound        = "DATASET_NOT_FOUND"
	ErrCodeDatabaseError          = "DATABASE_ERROR"
	ErrCodeCacheError             = "CACHE_ERROR"
)

// CodeOf returns the business code carried by err, or "" when err is not a
// BusinessError.
func CodeOf(err error) string {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// Wrap common errors with business context
func WrapFieldRange(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeFieldRange,
		"one or more loan parameters are out of range",
		fmt.Errorf("%w: %w", ErrFieldRange, err),
	)
}

func WrapMissingPrimaryCategory() *BusinessError {
	return NewBusinessError(
		ErrCodeMissingPrimaryCategory,
		"a primary category must be selected",
		ErrMissingPrimaryCategory,
	)
}

func WrapInvalidSchedule(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidSchedule,
		"loan parameters do not produce a payable schedule",
		fmt.Errorf("%w: %w", ErrInvalidSchedule, err),
	)
}

func WrapInvalidDataset(earningsLevel string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidDataset,
		fmt.Sprintf("Earnings level %q is not valid", earningsLevel),
		ErrInvalidDataset,
	)
}

func WrapDatasetNotFound(dataset string) *BusinessError {
	return NewBusinessError(
		ErrCodeDatasetNotFound,
		fmt.Sprintf("Dataset %s not found", dataset),
		ErrDatasetNotFound,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}
