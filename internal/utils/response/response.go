package response

import (
	stderrors "errors"

	"wallet/internal/errors"

	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func Error(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, "BAD_REQUEST", message)
}

func ServerError(c *fiber.Ctx) error {
	return Error(c, fiber.StatusInternalServerError, "INTERNAL", "something went wrong")
}

// DomainError maps a business failure to an HTTP response carrying its
// stable code. Unrecognized errors become a 500 without leaking details.
func DomainError(c *fiber.Ctx, err error) error {
	var domainErr *errors.DomainError
	if !stderrors.As(err, &domainErr) {
		return ServerError(c)
	}

	status := fiber.StatusBadRequest
	switch domainErr.Code {
	case errors.ErrWalletNotFound.Code, errors.ErrTransactionNotFound.Code:
		status = fiber.StatusNotFound
	case errors.ErrDuplicateWallet.Code:
		status = fiber.StatusConflict
	case errors.ErrInsufficientFunds.Code:
		status = fiber.StatusUnprocessableEntity
	}
	return Error(c, status, domainErr.Code, domainErr.Message)
}
