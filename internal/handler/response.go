package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Seanneskie/llm-restaurant-pioneer/internal/command"
)

// ErrorBody is the JSON envelope for failed requests.
type ErrorBody struct {
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Issues  []command.Issue `json:"issues,omitempty"`
}

// Error sends an error response using the shared envelope format.
func Error(c echo.Context, status int, name, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, ErrorBody{Error: name, Message: message})
}

// ValidationFailed sends a client error carrying the field-level issues.
func ValidationFailed(c echo.Context, verr *command.ValidationError) error {
	return c.JSON(http.StatusBadRequest, ErrorBody{
		Error:   "ValidationError",
		Message: verr.Error(),
		Issues:  verr.Issues,
	})
}
