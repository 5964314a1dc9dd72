// Package apierror provides the uniform error envelope returned by every
// endpoint: {success:false, error:<short code>, message:<human text>}.
package apierror

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape of every error payload.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"error"`
	Message string `json:"message"`
}

// Error implements the error interface for ErrorResponse.
func (e *ErrorResponse) Error() string {
	return e.Message
}

// New creates an error envelope with the given code and message.
func New(code, message string) *ErrorResponse {
	return &ErrorResponse{Success: false, Code: code, Message: message}
}

// Write sends an error envelope with the given HTTP status and aborts the
// remaining handler chain.
func Write(c *gin.Context, status int, resp *ErrorResponse) {
	c.AbortWithStatusJSON(status, resp)
}

// WriteValidation sends a 400 carrying the first violated validation rule.
// The message is surfaced verbatim to the caller.
func WriteValidation(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, New(CodeValidation, message))
}

// WriteDuplicateCheckin sends the distinct duplicate check-in 400.
func WriteDuplicateCheckin(c *gin.Context) {
	Write(c, http.StatusBadRequest, New(CodeDuplicateCheckin, "You have already submitted a check-in for today"))
}

// WriteNotFound sends a 404 for a missing resource.
func WriteNotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, New(CodeNotFound, message))
}

// WriteInternal sends a generic 500. The underlying error is logged
// server-side and never leaked to the caller.
func WriteInternal(c *gin.Context, message string) {
	if message == "" {
		message = "An unexpected error occurred"
	}
	Write(c, http.StatusInternalServerError, New(CodeInternal, message))
}
