package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sorokindm/crewtally/internal/services"
)

// AuthRequired resolves the session cookie into an employee. Expired and
// orphaned sessions are purged by the resolution itself; the middleware only
// translates the outcome.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Cookies(sessionCookieName))
	employee, err := handler.auth.ResolveSession(token)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			handler.clearSessionCookie(c)
			return apiError(c, fiber.StatusUnauthorized, "unauthorized")
		}
		return respondServiceError(c, err)
	}

	c.Locals(contextEmployeeKey, &employee)
	return c.Next()
}

func (handler *Handler) ManagerOnly(c *fiber.Ctx) error {
	employee, ok := currentEmployee(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if !employee.IsManager {
		return apiError(c, fiber.StatusForbidden, "manager access required")
	}
	return c.Next()
}
