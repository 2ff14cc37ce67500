package handlers

import (
	"wallet/internal/services/ledger"
	"wallet/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// BankCallbackHandler receives settlement notifications from the external
// settlement authority. Duplicate notifications for the same reference are
// absorbed by the ledger service.
type BankCallbackHandler struct {
	ledgerService ledger.Service
}

func NewBankCallbackHandler(ledgerService ledger.Service) *BankCallbackHandler {
	return &BankCallbackHandler{ledgerService: ledgerService}
}

type bankCallbackInput struct {
	ReferenceID string `json:"referenceId"`
	Status      string `json:"status"`
}

func (h *BankCallbackHandler) NotifyTransferStatus(c *fiber.Ctx) error {
	var input bankCallbackInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if input.ReferenceID == "" {
		return response.BadRequest(c, "referenceId is required")
	}
	if input.Status != ledger.OutcomeSuccess && input.Status != ledger.OutcomeFailed {
		return response.BadRequest(c, "status must be SUCCESS or FAILED")
	}

	if err := h.ledgerService.Settle(c.Context(), input.ReferenceID, input.Status); err != nil {
		return response.DomainError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
