package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) SubmitPayoutRequest(c *fiber.Ctx) error {
	employee, ok := currentEmployee(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := payoutRequestInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	request, err := handler.payouts.SubmitChangeRequest(employee.ID, input.Address)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"request": request})
}

func (handler *Handler) ListPayoutRequests(c *fiber.Ctx) error {
	requests, err := handler.payouts.ListPending()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"requests": requests})
}

func (handler *Handler) ApprovePayoutRequest(c *fiber.Ctx) error {
	return handler.resolvePayoutRequest(c, true)
}

func (handler *Handler) RejectPayoutRequest(c *fiber.Ctx) error {
	return handler.resolvePayoutRequest(c, false)
}

func (handler *Handler) resolvePayoutRequest(c *fiber.Ctx, approve bool) error {
	reviewer, ok := currentEmployee(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	resolve := handler.payouts.Reject
	if approve {
		resolve = handler.payouts.Approve
	}
	request, err := resolve(requestID, reviewer.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"request": request})
}
