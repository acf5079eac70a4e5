package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Request errors
	ErrorCodeBadRequest       ErrorCode = "REQ_001"
	ErrorCodeInvalidRank      ErrorCode = "REQ_002"
	ErrorCodeInvalidCategory  ErrorCode = "REQ_003"
	ErrorCodeInvalidGender    ErrorCode = "REQ_004"
	ErrorCodeInvalidPercent   ErrorCode = "REQ_005"
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeRateLimited      ErrorCode = "REQ_429"

	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeCollegeNotFound  ErrorCode = "RES_002"
	ErrorCodeNoCutoff         ErrorCode = "RES_003"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// Error labels used in the error body
const (
	ErrorLabelBadRequest = "Bad Request"
	ErrorLabelInternal   = "Internal Server Error"

	InternalErrorDetails = "An unexpected error occurred. Please try again later."
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string    `json:"error" example:"Bad Request"`
	Details string    `json:"details" example:"Rank must be a positive number"`
	Code    ErrorCode `json:"code,omitempty" example:"REQ_002"`
}

// NewBadRequestResponse creates a 400 body
func NewBadRequestResponse(code ErrorCode, details string) *ErrorResponse {
	return &ErrorResponse{
		Error:   ErrorLabelBadRequest,
		Details: details,
		Code:    code,
	}
}

// NewInternalErrorResponse creates the generic 500 body
func NewInternalErrorResponse() *ErrorResponse {
	return &ErrorResponse{
		Error:   ErrorLabelInternal,
		Details: InternalErrorDetails,
		Code:    ErrorCodeInternalServer,
	}
}

// HandleValidationError turns validator errors into a readable message
func HandleValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, formatFieldError(fe))
	}
	return strings.Join(messages, "; ")
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min", "gte":
		return e.Field() + " must be at least " + e.Param()
	case "max", "lte":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
