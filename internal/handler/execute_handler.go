package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Seanneskie/llm-restaurant-pioneer/internal/command"
	"github.com/Seanneskie/llm-restaurant-pioneer/internal/dto"
	"github.com/Seanneskie/llm-restaurant-pioneer/internal/service"
)

// Executor runs the message-to-results pipeline.
type Executor interface {
	Execute(ctx context.Context, message string) (*dto.ExecuteResponse, error)
}

// ExecuteHandler serves the natural-language search endpoint.
type ExecuteHandler struct {
	service Executor
	apiCode string
}

// NewExecuteHandler wires the handler.
func NewExecuteHandler(service Executor, apiCode string) *ExecuteHandler {
	return &ExecuteHandler{service: service, apiCode: apiCode}
}

// Root answers the liveness hint on /.
func (h *ExecuteHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"ok":   true,
		"hint": "api/execute?message=...&code=...",
	})
}

// Execute translates the free-text message into restaurant results.
// Command validation failures come back as 400 with field issues,
// upstream LLM or search failures as 502, anything else as 500.
func (h *ExecuteHandler) Execute(c echo.Context) error {
	if c.QueryParam("code") != h.apiCode {
		return Error(c, http.StatusUnauthorized, "Unauthorized", "invalid code")
	}

	message := c.QueryParam("message")
	if message == "" {
		return Error(c, http.StatusBadRequest, "BadRequest", "message is required")
	}

	result, err := h.service.Execute(c.Request().Context(), message)
	if err != nil {
		var verr *command.ValidationError
		if errors.As(err, &verr) {
			return ValidationFailed(c, verr)
		}
		if errors.Is(err, service.ErrUpstream) {
			return Error(c, http.StatusBadGateway, "UpstreamError", err.Error())
		}
		return Error(c, http.StatusInternalServerError, "InternalError", err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
