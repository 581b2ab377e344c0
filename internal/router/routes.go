package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Seanneskie/llm-restaurant-pioneer/internal/config"
	"github.com/Seanneskie/llm-restaurant-pioneer/internal/handler"
	middlewarepkg "github.com/Seanneskie/llm-restaurant-pioneer/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Execute *handler.ExecuteHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/", handlers.Execute.Root)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
	})

	e.GET("/api/execute", handlers.Execute.Execute, middlewarepkg.ClientRateLimiter(cfg.RateLimitExecute))
}
