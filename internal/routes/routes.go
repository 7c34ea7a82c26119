package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"stonevault-backend/internal/config"
	"stonevault-backend/internal/handlers"
	"stonevault-backend/internal/middleware"
)

// Handlers collects every handler the router mounts.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Health   *handlers.HealthHandler
	Stones   *handlers.StoneHandler
	Cart     *handlers.CartHandler
	Orders   *handlers.OrderHandler
	Wishlist *handlers.WishlistHandler
	Address  *handlers.AddressHandler
	Content  *handlers.ContentHandler
}

func Setup(app *fiber.App, cfg *config.Config, h *Handlers) {
	// Uploaded stone images are served straight off disk.
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", h.Auth.Logout)
	auth.Get("/me", h.Auth.Me)

	// Public catalog and content
	api.Get("/stones", h.Stones.List)
	api.Get("/stones/featured", h.Stones.Featured)
	api.Get("/stones/slug/:slug", h.Stones.GetBySlug)
	api.Get("/stones/:id", h.Stones.GetByID)
	api.Get("/faqs", h.Content.FAQs)
	api.Get("/content", h.Content.ContentBlocks)
	api.Post("/contact", h.Content.Contact)

	// Authenticated storefront
	user := api.Group("", middleware.RequireAuth())
	user.Get("/cart", h.Cart.Get)
	user.Post("/cart", h.Cart.Add)
	user.Put("/cart/:stoneId", h.Cart.Update)
	user.Delete("/cart/:stoneId", h.Cart.Remove)
	user.Delete("/cart", h.Cart.Clear)

	user.Get("/orders", h.Orders.List)
	user.Post("/orders", h.Orders.Create)
	user.Get("/orders/:id", h.Orders.Get)

	user.Get("/wishlist", h.Wishlist.Get)
	user.Post("/wishlist", h.Wishlist.Add)
	user.Delete("/wishlist/:stoneId", h.Wishlist.Remove)

	user.Get("/addresses", h.Address.List)
	user.Post("/addresses", h.Address.Create)
	user.Put("/addresses/:id", h.Address.Update)
	user.Delete("/addresses/:id", h.Address.Delete)

	// Back office
	admin := api.Group("/admin", middleware.RequireAdmin())
	admin.Post("/stones", h.Stones.Create)
	admin.Put("/stones/:id", h.Stones.Update)
	admin.Delete("/stones/:id", h.Stones.Delete)
	admin.Get("/orders", h.Orders.ListAll)
	admin.Get("/orders/:id", h.Orders.GetAny)
	admin.Put("/orders/:id", h.Orders.UpdateStatus)
}
