package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Prediction input errors
var (
	ErrInvalidRank        = errors.New("rank must be a positive number")
	ErrInvalidCategory    = errors.New("unknown category")
	ErrInvalidGender      = errors.New("unknown gender")
	ErrInvalidProbability = errors.New("desired probability must be between 5 and 99")
)

// College errors
var (
	ErrCollegeNotFound = errors.New("college not found")
	ErrNoCutoff        = errors.New("no cutoff data for this category")
)

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError creates a new custom error for a failed field validation
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// IsClientError reports whether err was caused by bad client input
func IsClientError(err error) bool {
	return Is(err, ErrBadRequest,
		ErrValidationFailed,
		ErrInvalidRank,
		ErrInvalidCategory,
		ErrInvalidGender,
		ErrInvalidProbability,
		ErrCollegeNotFound,
		ErrNoCutoff,
		ErrResourceNotFound,
	)
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
