package errors

var (
	ErrWalletNotFound = &DomainError{
		Code:    "WALLET_NOT_FOUND",
		Message: "wallet not found",
	}
	ErrTransactionNotFound = &DomainError{
		Code:    "TRANSACTION_NOT_FOUND",
		Message: "transaction not found",
	}
	ErrCurrencyNotSupported = &DomainError{
		Code:    "CURRENCY_NOT_SUPPORTED",
		Message: "currency is not supported",
	}
	ErrAmountNotWithinLimit = &DomainError{
		Code:    "AMOUNT_NOT_WITHIN_LIMIT",
		Message: "amount is not within the allowed limit",
	}
	ErrCurrencyMismatch = &DomainError{
		Code:    "CURRENCY_MISMATCH",
		Message: "currency mismatch",
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "invalid amount",
	}
	ErrInsufficientFunds = &DomainError{
		Code:    "INSUFFICIENT_FUNDS",
		Message: "insufficient funds",
	}
	ErrDuplicateWallet = &DomainError{
		Code:    "DUPLICATE_WALLET",
		Message: "customer already has a wallet",
	}
)
