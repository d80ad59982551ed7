package response

import (
	"net/http"

	deliverycontext "horus/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message   string `json:"message"`           // User-friendly error message
	Code      string `json:"code"`              // Machine-readable error code, e.g., "DUPLICATE_EMAIL"
	Details   string `json:"details,omitempty"` // Additional error context (only for 4xx errors)
	RequestID string `json:"request_id"`        // Request tracking ID
}

// Success writes data as the JSON body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Created acknowledges a resource creation with an empty body.
func Created(c echo.Context) error {
	return c.NoContent(http.StatusCreated)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Message:   message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later.", "")
}
