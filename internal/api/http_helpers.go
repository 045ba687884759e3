package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/sorokindm/crewtally/internal/models"
	"github.com/sorokindm/crewtally/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError translates the service failure taxonomy into HTTP
// statuses. Unexpected failures are logged and answered with a generic body
// so internals never leak to the caller.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	case errors.Is(err, services.ErrUnauthorized):
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	case errors.Is(err, services.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrConflict):
		return apiError(c, fiber.StatusConflict, "conflict")
	default:
		log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}

func currentEmployee(c *fiber.Ctx) (*models.Employee, bool) {
	employee, ok := c.Locals(contextEmployeeKey).(*models.Employee)
	return employee, ok
}

func employeePayload(employee *models.Employee) fiber.Map {
	return fiber.Map{
		"id":         employee.ID,
		"handle":     employee.Handle,
		"is_manager": employee.IsManager,
		"is_active":  employee.IsActive,
	}
}
