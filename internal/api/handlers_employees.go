package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sorokindm/crewtally/internal/models"
	"github.com/sorokindm/crewtally/internal/services"
	"gorm.io/gorm"
)

var decimalHundred = decimal.NewFromInt(100)

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || value == 0 {
		return 0, services.ErrValidation
	}
	return uint(value), nil
}

func (handler *Handler) ListEmployees(c *fiber.Ctx) error {
	employees, err := handler.repos.Employees.List()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"employees": employees})
}

func (handler *Handler) GetEmployee(c *fiber.Ctx) error {
	employeeID, err := parseIDParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	employee, err := handler.repos.Employees.FindByID(employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"employee": employee})
}

// ProvisionEmployee creates an account without a credential; the employee
// completes registration on first login.
func (handler *Handler) ProvisionEmployee(c *fiber.Ctx) error {
	input := provisionEmployeeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handle := services.NormalizeHandle(input.Handle)
	if handle == "" || handle == services.HandleSentinel {
		return apiError(c, fiber.StatusBadRequest, "handle is required")
	}
	if input.ProfitPercent.Sign() < 0 || input.ProfitPercent.GreaterThan(decimalHundred) {
		return apiError(c, fiber.StatusBadRequest, "profit percent must be between 0 and 100")
	}

	exists, err := handler.repos.Employees.ExistsByHandle(handle)
	if err != nil {
		return respondServiceError(c, err)
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "handle already exists")
	}

	employee := models.Employee{
		Handle:        handle,
		IsActive:      true,
		IsManager:     input.IsManager,
		ProfitPercent: input.ProfitPercent,
		CreatedAt:     time.Now().In(handler.location),
	}
	if err := handler.repos.Employees.Create(&employee); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"employee": employee})
}

func (handler *Handler) DeactivateEmployee(c *fiber.Ctx) error {
	employeeID, err := parseIDParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}
	if err := handler.auth.Deactivate(employeeID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// ResetEmployeePassword returns the freshly generated plaintext exactly
// once; it is never stored or retrievable again.
func (handler *Handler) ResetEmployeePassword(c *fiber.Ctx) error {
	input := resetPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.Handle) == "" {
		return apiError(c, fiber.StatusBadRequest, "handle is required")
	}

	password, err := handler.auth.ResetPassword(input.Handle)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"password": password,
	})
}

// GetEmployeeEarnings serves the monthly summary. Regular employees may
// only read their own; managers may read anyone's.
func (handler *Handler) GetEmployeeEarnings(c *fiber.Ctx) error {
	viewer, ok := currentEmployee(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	employeeID, err := parseIDParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}
	if !viewer.IsManager && viewer.ID != employeeID {
		return apiError(c, fiber.StatusForbidden, "cannot view another employee's earnings")
	}

	summary, err := handler.earnings.ComputeMonthlyEarnings(employeeID, strings.TrimSpace(c.Query("month")))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"earnings": summary})
}
