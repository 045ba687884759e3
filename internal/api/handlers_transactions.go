package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sorokindm/crewtally/internal/services"
)

func (handler *Handler) CorrectTransaction(c *fiber.Ctx) error {
	manager, ok := currentEmployee(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	transactionID, err := parseIDParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	input := services.CorrectionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	correction, err := handler.ledger.CorrectTransaction(transactionID, manager.ID, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"correction": correction})
}

func (handler *Handler) GetTransactionCorrections(c *fiber.Ctx) error {
	transactionID, err := parseIDParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	corrections, err := handler.ledger.CorrectionHistory(transactionID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"corrections": corrections})
}
