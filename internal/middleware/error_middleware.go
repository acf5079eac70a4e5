package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/eamcet-predictor/internal/app/models/dto"
	"github.com/yigit/eamcet-predictor/internal/pkg/apperrors"
	"github.com/yigit/eamcet-predictor/internal/pkg/logger"
)

// errorCodes maps client-error sentinels to their response code, first match wins
var errorCodes = []struct {
	err  error
	code dto.ErrorCode
}{
	{apperrors.ErrInvalidRank, dto.ErrorCodeInvalidRank},
	{apperrors.ErrInvalidCategory, dto.ErrorCodeInvalidCategory},
	{apperrors.ErrInvalidGender, dto.ErrorCodeInvalidGender},
	{apperrors.ErrInvalidProbability, dto.ErrorCodeInvalidPercent},
	{apperrors.ErrCollegeNotFound, dto.ErrorCodeCollegeNotFound},
	{apperrors.ErrNoCutoff, dto.ErrorCodeNoCutoff},
	{apperrors.ErrResourceNotFound, dto.ErrorCodeResourceNotFound},
	{apperrors.ErrValidationFailed, dto.ErrorCodeValidationFailed},
	{apperrors.ErrBadRequest, dto.ErrorCodeBadRequest},
}

// --- Central Error Handling Middleware/Function ---

// HandleAPIError handles common API errors and returns appropriate responses.
// Every client input problem is a 400 carrying the error message; anything else
// is logged and answered with a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	if apperrors.IsClientError(err) {
		code := dto.ErrorCodeBadRequest
		for _, ec := range errorCodes {
			if errors.Is(err, ec.err) {
				code = ec.code
				break
			}
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewBadRequestResponse(code, clientMessage(err)))
		return
	}

	logger.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("request_id", GetRequestID(c)).
		Msg("Unhandled error while serving request")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewInternalErrorResponse())
}

// clientMessage prefers the message of the outermost CustomError
func clientMessage(err error) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return err.Error()
}

// HandleBindError answers a request whose body could not be decoded or validated
func HandleBindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest,
		dto.NewBadRequestResponse(dto.ErrorCodeValidationFailed, dto.HandleValidationError(err)))
}
