package ledger

import (
	"context"

	"wallet/internal/models"
)

// Service defines the wallet ledger operations.
type Service interface {
	// Wallet management
	CreateWallet(ctx context.Context, customerID, currency string) (*models.Wallet, error)
	GetWalletDetails(ctx context.Context, walletID, customerID string) (*WalletDetails, error)

	// Request creation, idempotent on the reference
	Deposit(ctx context.Context, req DepositRequest) (*TransactionReceipt, error)
	Withdraw(ctx context.Context, req WithdrawRequest) (*TransactionReceipt, error)

	// Settlement of the terminal bank outcome, at most once per transaction
	Settle(ctx context.Context, referenceID, outcome string) error

	// History
	ListTransactions(ctx context.Context, walletID, customerID string, page, size int) (*TransactionPage, error)
}

// Cache defines the wallet read cache the service invalidates on mutation.
type Cache interface {
	GetWallet(ctx context.Context, walletID string) (*models.Wallet, error)
	SetWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, walletID string) error
}
