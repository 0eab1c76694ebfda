package web

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/technest/store"
	"github.com/technest/web/handlers"
	"github.com/technest/web/middleware"
)

// Server represents the admin API server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server exposing the admin API
func NewServer() *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			var couponErr *store.CouponError
			switch {
			case errors.As(err, &couponErr):
				// Business-rule rejections carry a customer-readable reason
				return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
					"valid":  false,
					"reason": couponErr.Reason,
				})
			case errors.Is(err, store.ErrNotFound):
				code = fiber.StatusNotFound
			}

			log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))
	app.Use(middleware.SQLDebug())

	// Setup routes
	setupRoutes(app)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Admin API starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// setupRoutes configures all admin API routes
func setupRoutes(app *fiber.App) {
	// Debug endpoint for SQL logs
	app.Get("/api/debug/sql", handlers.GetSQLLogs)
	app.Delete("/api/debug/sql", handlers.ClearSQLLogs)

	admin := app.Group("/admin")

	// Catalog
	categories := admin.Group("/categories")
	categories.Get("/", handlers.CategoryList)
	categories.Post("/", handlers.CategoryCreate)
	categories.Get("/:id", handlers.CategoryView)
	categories.Put("/:id", handlers.CategoryUpdate)
	categories.Delete("/:id", handlers.CategoryDelete)

	products := admin.Group("/products")
	products.Get("/", handlers.ProductList)
	products.Post("/", handlers.ProductCreate)
	products.Get("/:id", handlers.ProductView)
	products.Put("/:id", handlers.ProductUpdate)
	products.Delete("/:id", handlers.ProductDelete)

	// Users and addresses
	users := admin.Group("/users")
	users.Get("/", handlers.UserList)
	users.Post("/", handlers.UserCreate)
	users.Get("/:id", handlers.UserView)
	users.Put("/:id", handlers.UserUpdate)
	users.Delete("/:id", handlers.UserDelete)

	addresses := admin.Group("/addresses")
	addresses.Get("/", handlers.AddressList)
	addresses.Post("/", handlers.AddressCreate)
	addresses.Get("/:id", handlers.AddressView)
	addresses.Put("/:id", handlers.AddressUpdate)
	addresses.Delete("/:id", handlers.AddressDelete)

	// Engagement (read-mostly)
	admin.Get("/carts", handlers.CartList)
	admin.Delete("/carts/:id", handlers.CartDelete)
	admin.Get("/wishlists", handlers.WishlistList)
	admin.Delete("/wishlists/:id", handlers.WishlistDelete)

	reviews := admin.Group("/reviews")
	reviews.Get("/", handlers.ReviewList)
	reviews.Get("/:id", handlers.ReviewView)
	reviews.Put("/:id", handlers.ReviewUpdate)
	reviews.Post("/:id/approve", handlers.ReviewApprove)
	reviews.Delete("/:id", handlers.ReviewDelete)

	// Commerce
	orders := admin.Group("/orders")
	orders.Get("/", handlers.OrderList)
	orders.Post("/", handlers.OrderCreate)
	orders.Get("/:id", handlers.OrderView)
	orders.Put("/:id", handlers.OrderUpdate)
	orders.Delete("/:id", handlers.OrderDelete)

	coupons := admin.Group("/coupons")
	coupons.Get("/", handlers.CouponList)
	coupons.Post("/", handlers.CouponCreate)
	coupons.Get("/:id", handlers.CouponView)
	coupons.Put("/:id", handlers.CouponUpdate)
	coupons.Delete("/:id", handlers.CouponDelete)
	coupons.Post("/check", handlers.CouponCheck)

	// Newsletter
	newsletter := admin.Group("/newsletter")
	newsletter.Get("/", handlers.SubscriptionList)
	newsletter.Post("/", handlers.SubscriptionCreate)
	newsletter.Post("/activate", handlers.SubscriptionActivate)
	newsletter.Post("/deactivate", handlers.SubscriptionDeactivate)
	newsletter.Delete("/:id", handlers.SubscriptionDelete)
}
