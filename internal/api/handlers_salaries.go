package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) RecomputeSalaries(c *fiber.Ctx) error {
	input := recomputeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	salaries, err := handler.salaries.Recompute(strings.TrimSpace(input.Month))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"month":    input.Month,
		"salaries": salaries,
	})
}

func (handler *Handler) ListSalaries(c *fiber.Ctx) error {
	salaries, err := handler.salaries.ListForMonth(strings.TrimSpace(c.Query("month")))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"salaries": salaries})
}

// MarkSalaryPaid performs the one-way paid transition; repeating it answers
// 409 and leaves the stored payment metadata untouched.
func (handler *Handler) MarkSalaryPaid(c *fiber.Ctx) error {
	salaryID, err := parseIDParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	input := markPaidInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.PaymentHash) == "" {
		return apiError(c, fiber.StatusBadRequest, "payment hash is required")
	}

	salary, err := handler.salaries.MarkPaid(salaryID, strings.TrimSpace(input.PaymentHash))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"salary": salary})
}

func (handler *Handler) GetLeaderboard(c *fiber.Ctx) error {
	entries, err := handler.leaderboard.BuildForMonth(strings.TrimSpace(c.Query("month")))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"leaderboard": entries})
}
