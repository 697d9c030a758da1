package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the JSON body every failed request carries
type APIError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Detail carries the underlying error text, populated only when the
	// server runs in debug mode.
	Detail string `json:"error,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, &APIError{Success: false, Message: message})
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, message)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, message)
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Resource conflict"
	}
	RespondWithError(c, http.StatusConflict, message)
}

// InternalError sends a 500 response. The wrapped cause is exposed in the
// body only in debug mode; production responses stay generic.
func InternalError(c *gin.Context, message string, cause error) {
	if message == "" {
		message = "Internal server error"
	}

	body := &APIError{Success: false, Message: message}
	if cause != nil && gin.Mode() == gin.DebugMode {
		body.Detail = cause.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
