package routes

import (
	"student-management/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// studentRoutes - JSON API for student records
func studentRoutes(app *fiber.App) {
	studentGroup := app.Group("/api/students")
	studentGroup.Get("/", controllers.GetStudents)          // list with paging/sort/search
	studentGroup.Post("/", controllers.CreateStudent)       // create
	studentGroup.Get("/:id", controllers.GetStudentByID)    // fetch one
	studentGroup.Put("/:id", controllers.UpdateStudent)     // partial update
	studentGroup.Delete("/:id", controllers.DeleteStudent)  // permanent delete
}
