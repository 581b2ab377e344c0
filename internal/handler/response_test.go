package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Seanneskie/llm-restaurant-pioneer/internal/command"
)

func TestErrorResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Error(c, 0, "InternalError", "boom"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected default status 500, got %d", rec.Code)
	}

	var payload ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Error != "InternalError" || payload.Message != "boom" {
		t.Fatalf("unexpected response: %+v", payload)
	}
	if payload.Issues != nil {
		t.Fatalf("expected no issues, got %+v", payload.Issues)
	}
}

func TestValidationFailedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	verr := &command.ValidationError{Issues: []command.Issue{
		{Field: "parameters.limit", Message: "limit must be at most 50"},
	}}
	if err := ValidationFailed(c, verr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var payload ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Error != "ValidationError" || len(payload.Issues) != 1 {
		t.Fatalf("unexpected response: %+v", payload)
	}
	if payload.Issues[0].Field != "parameters.limit" {
		t.Fatalf("unexpected issue: %+v", payload.Issues[0])
	}
}
