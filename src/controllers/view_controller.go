package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// subjectMajors feeds the form selects. The UI constrains input to this
// list; the API itself accepts any non-empty major.
var subjectMajors = []string{
	"Computer Science",
	"Mathematics",
	"Physics",
	"Chemistry",
	"Biology",
	"Engineering",
	"Business",
	"Psychology",
}

// StudentsListPage renders the paginated student table.
func StudentsListPage(c *fiber.Ctx) error {
	return c.Render("students/index", fiber.Map{
		"Title": "Students - Student Management",
	})
}

// StudentCreatePage renders the add-student form.
func StudentCreatePage(c *fiber.Ctx) error {
	return c.Render("students/create", fiber.Map{
		"Title":  "Add Student - Student Management",
		"Majors": subjectMajors,
	})
}

// StudentEditPage renders the edit form; the page script fetches the
// record for the route id and populates the fields.
func StudentEditPage(c *fiber.Ctx) error {
	return c.Render("students/edit", fiber.Map{
		"Title":     "Edit Student - Student Management",
		"Majors":    subjectMajors,
		"StudentID": c.Params("id"),
	})
}
