package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telebill/telebill/internal/shared/errors"
)

// APIResponse is the envelope for message and error responses. Resource
// payloads are written bare, see JSONResponse.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorInfo represents error information in API response
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// JSONResponse writes data as the whole response body.
func JSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageResponse sends {"success":true,"message":...} with 200.
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Message: message})
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Type:    errorTypeForStatus(statusCode),
			Message: message,
		},
	})
}

// ErrorResponseWithError sends an error response based on error type. Errors
// that are not AppErrors become a generic 500 so internals never reach clients.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		appErr = errors.NewInternalError("Internal server error occurred")
	}

	c.JSON(appErr.Code, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}

func errorTypeForStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return string(errors.ErrorTypeBadRequest)
	case http.StatusUnauthorized:
		return string(errors.ErrorTypeUnauthorized)
	case http.StatusNotFound:
		return string(errors.ErrorTypeNotFound)
	case http.StatusTooManyRequests:
		return string(errors.ErrorTypeRateLimited)
	case http.StatusInternalServerError:
		return string(errors.ErrorTypeInternal)
	default:
		return "error"
	}
}
