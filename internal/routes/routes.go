package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/skyharboraero/flightline-backend/internal/config"
	"github.com/skyharboraero/flightline-backend/internal/handlers"
	"github.com/skyharboraero/flightline-backend/internal/middleware"
	"gorm.io/gorm"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Health     *handlers.HealthHandler
	Aircraft   *handlers.AircraftHandler
	Catalog    *handlers.CatalogHandler
	Request    *handlers.RequestHandler
	Task       *handlers.TaskHandler
	Membership *handlers.MembershipHandler
	Credit     *handlers.CreditHandler
	Invoice    *handlers.InvoiceHandler
	Webhook    *handlers.WebhookHandler
	WS         *handlers.WSHandler
}

func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", h.Health.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)

	jwt := middleware.JWTProtected(cfg)

	api.Post("/auth/logout", jwt, h.Auth.Logout)
	api.Get("/auth/me", jwt, h.Auth.Me)

	// Owner surface (JWT required)
	protected := api.Group("/", jwt)

	protected.Post("/aircraft", h.Aircraft.Create)
	protected.Get("/aircraft", h.Aircraft.List)
	protected.Get("/aircraft/:id", h.Aircraft.Get)
	protected.Patch("/aircraft/:id", h.Aircraft.Update)
	protected.Get("/aircraft/:id/readiness", h.Aircraft.Readiness)
	protected.Get("/aircraft/:id/tasks", h.Aircraft.Tasks)

	protected.Get("/services", h.Catalog.List)
	protected.Get("/services/:id", h.Catalog.Get)

	protected.Get("/credits", h.Credit.Overview)
	protected.Get("/credits/:service_id", h.Credit.Balance)

	protected.Post("/requests", h.Request.Create)
	protected.Get("/requests", h.Request.List)
	protected.Get("/requests/:id", h.Request.Get)
	protected.Post("/requests/:id/cancel", h.Request.Cancel)

	protected.Get("/membership", h.Membership.Mine)
	protected.Get("/membership-tiers", h.Membership.ListTiers)

	protected.Get("/invoices", h.Invoice.List)
	protected.Get("/invoices/:id", h.Invoice.Get)

	// Real-time change feed
	api.Get("/ws", jwt, h.WS.Upgrade, h.WS.Serve())

	// Admin surface (JWT + admin required)
	admin := api.Group("/admin", jwt, middleware.AdminRequired(db, cfg))

	admin.Post("/services", h.Catalog.Create)
	admin.Patch("/services/:id", h.Catalog.Update)
	admin.Delete("/services/:id", h.Catalog.Deactivate)

	admin.Get("/requests", h.Request.ListAll)
	admin.Patch("/requests/:id/status", h.Request.UpdateStatus)

	admin.Post("/tasks", h.Task.Create)
	admin.Patch("/tasks/:id", h.Task.Update)

	admin.Post("/membership-tiers", h.Membership.CreateTier)
	admin.Patch("/membership-tiers/:id", h.Membership.UpdateTier)
	admin.Delete("/membership-tiers/:id", h.Membership.DeleteTier)
	admin.Post("/memberships", h.Membership.Assign)
	admin.Put("/memberships/:owner_id/hours", h.Membership.UpdateFlightHours)

	admin.Post("/invoices", h.Invoice.Create)

	// Webhooks — shared-secret auth, no JWT
	api.Post("/webhooks/payments", h.Webhook.HandlePayment)
}
