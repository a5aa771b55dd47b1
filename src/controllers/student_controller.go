package controllers

import (
	"log"
	"strconv"

	"student-management/src/models"
	"student-management/src/services/students"
	"student-management/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateStudent godoc
// @Summary Create student
// @Description Create a new student record
// @Tags students
// @Accept json
// @Produce json
// @Param student body models.CreateStudentRequest true "Student to create"
// @Success 201 {object} models.Student
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/students [post]
func CreateStudent(c *fiber.Ctx) error {
	var req models.CreateStudentRequest

	if err := c.BodyParser(&req); err != nil {
		return utils.HandleValidationErrors(c, []models.FieldError{
			{Field: "body", Message: "Invalid input format"},
		})
	}

	// validation happens strictly before the store is touched
	if fieldErrors := utils.ValidateStudentInput(&req); len(fieldErrors) > 0 {
		return utils.HandleValidationErrors(c, fieldErrors)
	}

	student, err := students.CreateStudent(&req)
	if err != nil {
		log.Println("Error creating student:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server error: Could not create student")
	}

	return c.Status(fiber.StatusCreated).JSON(student)
}

// GetStudents godoc
// @Summary List students
// @Description Get students with pagination, sorting, and search
// @Tags students
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 5)"
// @Param sortField query string false "Sort field (default firstName)"
// @Param sortOrder query string false "Sort order asc/desc (default asc)"
// @Param name query string false "Substring match on first or last name"
// @Param id query string false "Exact match on id"
// @Success 200 {object} models.StudentListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/students [get]
func GetStudents(c *fiber.Ctx) error {
	params := models.DefaultStudentQuery()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.SortField = c.Query("sortField", params.SortField)
	params.SortOrder = c.Query("sortOrder", params.SortOrder)
	params.Name = c.Query("name")
	params.ID = c.Query("id")

	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 5
	}

	records, total, err := students.GetStudents(params)
	if err != nil {
		log.Println("Error fetching students:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server error: Could not retrieve students")
	}

	return c.JSON(models.NewStudentListResponse(records, total, params))
}

// GetStudentByID godoc
// @Summary Get student
// @Description Get a single student by ID
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/students/{id} [get]
func GetStudentByID(c *fiber.Ctx) error {
	id := c.Params("id")

	student, err := students.GetStudentByID(id)
	if err == students.ErrStudentNotFound {
		return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		log.Println("Error fetching student:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server error: Could not retrieve student")
	}

	return c.JSON(student)
}

// UpdateStudent godoc
// @Summary Update student
// @Description Update any subset of a student's fields
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param student body models.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} models.Student
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/students/{id} [put]
func UpdateStudent(c *fiber.Ctx) error {
	id := c.Params("id")
	var req models.UpdateStudentRequest

	if err := c.BodyParser(&req); err != nil {
		return utils.HandleValidationErrors(c, []models.FieldError{
			{Field: "body", Message: "Invalid input format"},
		})
	}

	if fieldErrors := utils.ValidateStudentInput(&req); len(fieldErrors) > 0 {
		return utils.HandleValidationErrors(c, fieldErrors)
	}

	student, err := students.UpdateStudent(id, &req)
	if err == students.ErrStudentNotFound {
		return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		log.Println("Error updating student:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server error: Could not update student")
	}

	return c.JSON(student)
}

// DeleteStudent godoc
// @Summary Delete student
// @Description Delete a student by ID
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/students/{id} [delete]
func DeleteStudent(c *fiber.Ctx) error {
	id := c.Params("id")

	err := students.DeleteStudent(id)
	if err == students.ErrStudentNotFound {
		return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		log.Println("Error deleting student:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server error: Could not delete student")
	}

	return c.JSON(fiber.Map{
		"message": "Student deleted successfully",
	})
}
