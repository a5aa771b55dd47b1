package routes

import (
	"student-management/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// viewRoutes - browser pages for the list/create/edit views
func viewRoutes(app *fiber.App) {
	pages := app.Group("/students")
	pages.Get("/", controllers.StudentsListPage)
	pages.Get("/add", controllers.StudentCreatePage)
	pages.Get("/edit/:id", controllers.StudentEditPage)
}
