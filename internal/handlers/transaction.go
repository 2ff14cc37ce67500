package handlers

import (
	"wallet/internal/services/ledger"
	"wallet/internal/utils/pagination"
	"wallet/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	ledgerService ledger.Service
}

func NewTransactionHandler(ledgerService ledger.Service) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	walletID := c.Query("walletId")
	customerID := c.Query("customerId")
	if walletID == "" || customerID == "" {
		return response.BadRequest(c, "walletId and customerId are required")
	}

	p := pagination.ParseFromRequest(c)
	page, err := h.ledgerService.ListTransactions(c.Context(), walletID, customerID, p.Page, p.Size)
	if err != nil {
		return response.DomainError(c, err)
	}

	transactions := make([]fiber.Map, 0, len(page.Transactions))
	for _, tx := range page.Transactions {
		transactions = append(transactions, fiber.Map{
			"transactionId": tx.ID,
			"referenceId":   tx.ReferenceID,
			"type":          tx.Type,
			"entry":         tx.Entry,
			"status":        tx.Status,
			"amount":        tx.Amount,
			"dateCreated":   tx.CreatedAt,
		})
	}

	return response.Success(c, fiber.Map{
		"data": transactions,
		"meta": fiber.Map{
			"current_page": page.Page,
			"per_page":     page.Size,
			"total_items":  page.TotalElements,
			"total_pages":  page.TotalPages,
		},
	})
}
