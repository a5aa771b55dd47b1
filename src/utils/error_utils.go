// error_utils.go
package utils

import (
	"student-management/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Message: message,
	})
}

func HandleValidationErrors(c *fiber.Ctx, fieldErrors []models.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse{
		Errors: fieldErrors,
	})
}
