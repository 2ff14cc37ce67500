// Package repositories provides the data access layer. It owns the locking
// contract the workflows rely on: exclusive per-row locks acquired inside one
// database transaction and released atomically on commit.
package repositories

import (
	"context"
	"errors"

	"wallet/internal/models"
)

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDuplicateWallet     = errors.New("wallet already exists for customer")
	ErrDuplicateReference  = errors.New("transaction reference already exists")
)

// WalletRepository defines wallet and transaction persistence. The ForUpdate
// variants take an exclusive row lock and are only meaningful inside
// ExecuteInTransaction; the lock is held until the unit of work commits.
type WalletRepository interface {
	// Wallet operations
	CreateWallet(ctx context.Context, wallet *models.Wallet) error
	GetWallet(ctx context.Context, walletID, customerID string) (*models.Wallet, error)
	GetWalletForUpdate(ctx context.Context, walletID, customerID string) (*models.Wallet, error)
	GetWalletByIDForUpdate(ctx context.Context, walletID string) (*models.Wallet, error)
	UpdateWallet(ctx context.Context, wallet *models.Wallet) error

	// Transaction operations
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransactionByReferenceID(ctx context.Context, referenceID string) (*models.Transaction, error)
	GetTransactionByReferenceIDForUpdate(ctx context.Context, referenceID string) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error
	ListTransactionsByWalletID(ctx context.Context, walletID string, limit, offset int) ([]models.Transaction, int64, error)

	// ExecuteInTransaction runs fn inside one all-or-nothing unit of work.
	// Locks taken through the passed repository release on commit.
	ExecuteInTransaction(fn func(WalletRepository) error) error
}
