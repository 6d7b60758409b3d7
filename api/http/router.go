package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/artem13815/resumeparser/api/http/handlers"
)

// Handlers groups everything Register needs. Guard may be nil to leave the API open.
type Handlers struct {
	Health  *handlers.HealthHandler
	Parse   *handlers.ParseHandler
	Results *handlers.ResultsHandler
	Guard   fiber.Handler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, log *slog.Logger, h Handlers) {
	app.Use(requestid.New())
	app.Use(RequestLogger(log))
	app.Use(recover.New())

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	secured := func(hs ...fiber.Handler) []fiber.Handler {
		if h.Guard == nil {
			return hs
		}
		return append([]fiber.Handler{h.Guard}, hs...)
	}
	v1.Post("/parse", secured(h.Parse.Parse)...)

	rg := v1.Group("/results")
	rg.Get("/", secured(h.Results.List)...)
	rg.Get("/:id", secured(h.Results.Get)...)
}
