package routes

import (
	"github.com/gofiber/fiber/v2"
)

// InitRoutes wires every route group onto the app.
func InitRoutes(app *fiber.App) {
	studentRoutes(app)
	viewRoutes(app)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Student Management System")
	})
}
