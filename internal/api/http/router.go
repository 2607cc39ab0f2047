package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/http/handlers"
	"github.com/spec-kit/booking-service/internal/auth"
	"github.com/spec-kit/booking-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Articles       *handlers.ArticlesHandler
	Orders         *handlers.OrdersHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Privileged groups carry the authorization
// gate ahead of every handler so no mutation ever runs unauthenticated.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Post("/password/reset/request", cfg.Users.RequestPasswordReset)
	authGroup.Get("/password/reset/validate", cfg.Users.ValidateResetToken)
	authGroup.Post("/password/reset/confirm", cfg.Users.ConfirmPasswordReset)

	app.Get("/articles", cfg.Articles.List)
	app.Get("/articles/:id", cfg.Articles.Get)

	orders := app.Group("/orders", cfg.AuthMiddleware.Handle, auth.RequireRole())
	orders.Post("/", cfg.Orders.Create)
	orders.Get("/", cfg.Orders.List)
	orders.Get("/:id", cfg.Orders.Get)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle,
		auth.RequireRole(domain.RoleSuperAdmin, domain.RoleAdmin))
	admin.Get("/dashboard", cfg.Admin.Dashboard)
	admin.Get("/orders", cfg.Admin.ListOrders)
	admin.Patch("/orders/:id/status", cfg.Admin.SetOrderStatus)
	admin.Patch("/payments/:id/status", cfg.Admin.SetPaymentStatus)
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Post("/articles", cfg.Admin.CreateArticle)
	admin.Put("/articles/:id", cfg.Admin.UpdateArticle)
}
