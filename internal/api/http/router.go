package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/club-events-service/internal/api/http/handlers"
	"github.com/spec-kit/club-events-service/internal/auth"
	"github.com/spec-kit/club-events-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Events         *handlers.EventsHandler
	Announcements  *handlers.AnnouncementsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/register", cfg.Auth.RegisterAdmin)
	app.Post("/login", cfg.Auth.LoginAdmin)
	app.Post("/register-user", cfg.Auth.RegisterUser)
	app.Post("/login-user", cfg.Auth.LoginUser)

	adminGate := auth.RequireRole(domain.RoleAdmin)

	app.Post("/events", cfg.AuthMiddleware.Handle, adminGate, cfg.Events.Create)
	app.Get("/events", cfg.Events.List)
	// the static segment must be registered ahead of the :id match
	app.Get("/events/admin/:username", cfg.Events.ListByAdmin)
	app.Get("/events/:id", cfg.Events.Get)

	app.Post("/announcements", cfg.AuthMiddleware.Handle, adminGate, cfg.Announcements.Create)
	app.Get("/announcements", cfg.Announcements.List)
	app.Get("/announcements/admin/:username", cfg.Announcements.ListByAdmin)
}
