package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// MintImportToken issues the bearer token the spreadsheet-import job uses.
// Manager-only; tokens are short-lived and scoped by purpose.
func (handler *Handler) MintImportToken(c *fiber.Ctx) error {
	input := importTokenInput{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		}
	}

	token, err := handler.buildImportToken(time.Duration(input.TTLHours) * time.Hour)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}

// ImportTransactions upserts collaborator rows under the natural dedup key.
func (handler *Handler) ImportTransactions(c *fiber.Ctx) error {
	input := importRowsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if len(input.Rows) == 0 {
		return apiError(c, fiber.StatusBadRequest, "rows are required")
	}

	result, err := handler.importer.UpsertRows(input.Rows)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"result": result})
}
