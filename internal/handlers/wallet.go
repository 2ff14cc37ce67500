package handlers

import (
	"wallet/internal/services/ledger"
	"wallet/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type WalletHandler struct {
	ledgerService ledger.Service
}

func NewWalletHandler(ledgerService ledger.Service) *WalletHandler {
	return &WalletHandler{ledgerService: ledgerService}
}

type moneyInput struct {
	Currency string          `json:"currency"`
	Value    decimal.Decimal `json:"value"`
}

type createWalletInput struct {
	CustomerID string `json:"customerId"`
	Currency   string `json:"currency"`
}

type orderInput struct {
	ReferenceID string     `json:"referenceId"`
	WalletID    string     `json:"walletId"`
	CustomerID  string     `json:"customerId"`
	Amount      moneyInput `json:"amount"`
}

func (in orderInput) validate() string {
	switch {
	case in.ReferenceID == "":
		return "referenceId is required"
	case in.WalletID == "":
		return "walletId is required"
	case in.CustomerID == "":
		return "customerId is required"
	case in.Amount.Currency == "":
		return "amount.currency is required"
	}
	return ""
}

func (h *WalletHandler) CreateWallet(c *fiber.Ctx) error {
	var input createWalletInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if input.CustomerID == "" || input.Currency == "" {
		return response.BadRequest(c, "customerId and currency are required")
	}

	wallet, err := h.ledgerService.CreateWallet(c.Context(), input.CustomerID, input.Currency)
	if err != nil {
		return response.DomainError(c, err)
	}

	return response.Created(c, fiber.Map{
		"walletId":   wallet.ID,
		"customerId": wallet.CustomerID,
		"currency":   wallet.Currency(),
	})
}

func (h *WalletHandler) Deposit(c *fiber.Ctx) error {
	var input orderInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if msg := input.validate(); msg != "" {
		return response.BadRequest(c, msg)
	}

	receipt, err := h.ledgerService.Deposit(c.Context(), ledger.DepositRequest{
		ReferenceID: input.ReferenceID,
		WalletID:    input.WalletID,
		CustomerID:  input.CustomerID,
		Amount:      ledger.Amount{Currency: input.Amount.Currency, Value: input.Amount.Value},
	})
	if err != nil {
		return response.DomainError(c, err)
	}

	return response.Success(c, fiber.Map{
		"transactionId": receipt.TransactionID,
		"status":        receipt.Status,
	})
}

func (h *WalletHandler) Withdraw(c *fiber.Ctx) error {
	var input orderInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if msg := input.validate(); msg != "" {
		return response.BadRequest(c, msg)
	}

	receipt, err := h.ledgerService.Withdraw(c.Context(), ledger.WithdrawRequest{
		ReferenceID: input.ReferenceID,
		WalletID:    input.WalletID,
		CustomerID:  input.CustomerID,
		Amount:      ledger.Amount{Currency: input.Amount.Currency, Value: input.Amount.Value},
	})
	if err != nil {
		return response.DomainError(c, err)
	}

	return response.Success(c, fiber.Map{
		"transactionId": receipt.TransactionID,
		"status":        receipt.Status,
	})
}

func (h *WalletHandler) GetWalletDetails(c *fiber.Ctx) error {
	walletID := c.Params("walletId")
	customerID := c.Params("customerId")

	details, err := h.ledgerService.GetWalletDetails(c.Context(), walletID, customerID)
	if err != nil {
		return response.DomainError(c, err)
	}

	return response.Success(c, fiber.Map{
		"walletId":      details.WalletID,
		"customerId":    details.CustomerID,
		"balance":       details.Balance,
		"balanceOnHold": details.BalanceOnHold,
	})
}
