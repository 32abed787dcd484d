package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nevilinq/nevilinq-api/internal/auth"
)

// RegisterAuthRoutes wires the signup and login endpoints.
func RegisterAuthRoutes(app *fiber.App, h *auth.Handler) {
	group := app.Group("/auth")
	group.Post("/signup", h.Signup)
	group.Post("/login", h.Login)
}
