package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiError is an error with an HTTP status and a stable error code.
type ApiError struct {
	StatusCode int
	Message    string
	ErrorCode  string
}

// Error implements the error interface.
func (e *ApiError) Error() string {
	return e.Message
}

// NewApiError creates an API error.
func NewApiError(message string, statusCode int, errorCode string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    message,
		ErrorCode:  errorCode,
	}
}

// CreateValidationError reports a missing or invalid required field. The
// caller is expected to correct the input and resubmit; nothing is fatal.
func CreateValidationError(message string) *ApiError {
	return NewApiError(message, http.StatusBadRequest, "VALIDATION_ERROR")
}

// CreateNotFoundError reports a lookup that matched nothing.
func CreateNotFoundError(resource string) *ApiError {
	return NewApiError(resource+" not found", http.StatusNotFound, "RESOURCE_NOT_FOUND")
}

// CreateUnauthorizedError reports a missing or invalid session.
func CreateUnauthorizedError() *ApiError {
	return NewApiError("unauthorized", http.StatusUnauthorized, "UNAUTHORIZED")
}

// CreateBadRequestError reports a malformed request.
func CreateBadRequestError(message string) *ApiError {
	return NewApiError(message, http.StatusBadRequest, "BAD_REQUEST")
}

// HandleError logs the error and writes the matching response.
func HandleError(c *gin.Context, err error) {
	if c == nil {
		return
	}
	LogError(err, map[string]interface{}{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	}, err.Error())

	if apiErr, ok := err.(*ApiError); ok {
		response := gin.H{"success": false, "error": apiErr.Message}
		if apiErr.ErrorCode != "" {
			response["code"] = apiErr.ErrorCode
		}
		c.JSON(apiErr.StatusCode, response)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

// SuccessResponse writes the success envelope.
func SuccessResponse(c *gin.Context, data interface{}, message string, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	response := gin.H{"success": true}
	if data != nil {
		response["data"] = data
	}
	if message != "" {
		response["message"] = message
	}

	c.JSON(code, response)
}

// ErrorResponse writes the failure envelope.
func ErrorResponse(c *gin.Context, message string, statusCode int) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}
