package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sorokindm/crewtally/internal/services"
)

// Login verifies credentials and sets the session cookie. Unknown handles
// and wrong passwords share one 401 answer so the endpoint does not reveal
// whether an account exists.
func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptLimit, loginAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondLoginFailure(c, limiterKey, services.ErrValidation)
	}
	if strings.TrimSpace(input.Handle) == "" || input.Password == "" {
		return handler.respondLoginFailure(c, limiterKey, services.ErrValidation)
	}

	session, employee, err := handler.auth.Login(input.Handle, input.Password)
	if err != nil {
		return handler.respondLoginFailure(c, limiterKey, err)
	}

	handler.loginLimiter.reset(limiterKey)
	handler.setSessionCookie(c, &session)
	return c.JSON(fiber.Map{
		"success": true,
		"user":    employeePayload(&employee),
	})
}

func (handler *Handler) respondLoginFailure(c *fiber.Ctx, limiterKey string, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal error"
	countAttempt := false

	switch {
	case errors.Is(err, services.ErrValidation):
		status, message = fiber.StatusBadRequest, "handle and password are required"
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrBadCredential):
		// One answer for both so account existence stays hidden.
		status, message = fiber.StatusUnauthorized, "invalid credentials"
		countAttempt = true
	case errors.Is(err, services.ErrNoCredential):
		status, message = fiber.StatusForbidden, "registration required"
		countAttempt = true
	case errors.Is(err, services.ErrDeactivated):
		status, message = fiber.StatusForbidden, "account deactivated"
		countAttempt = true
	}

	// Malformed input is not a guessing attempt and never counts toward the
	// limiter.
	if countAttempt {
		handler.loginLimiter.addFailure(limiterKey, time.Now(), loginAttemptWindow)
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// Register sets the first password of a provisioned account and logs the
// employee in right away.
func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.Handle) == "" || len(input.Password) < 8 {
		return apiError(c, fiber.StatusBadRequest, "handle and a password of at least 8 characters are required")
	}

	employee, err := handler.auth.Register(input.Handle, input.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	session, loggedIn, err := handler.auth.Login(input.Handle, input.Password)
	if err != nil {
		return respondServiceError(c, err)
	}
	employee = loggedIn

	handler.setSessionCookie(c, &session)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    employeePayload(&employee),
	})
}

// Logout deletes the backing session and clears the cookie. Always succeeds.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Cookies(sessionCookieName))
	if err := handler.auth.Logout(token); err != nil {
		return respondServiceError(c, err)
	}
	handler.clearSessionCookie(c)
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	employee, ok := currentEmployee(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"user": employeePayload(employee)})
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
