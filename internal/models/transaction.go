package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction statuses
const (
	TransactionStatusPending = "PENDING"
	TransactionStatusSuccess = "SUCCESS"
	TransactionStatusFailed  = "FAILED"
)

// Transaction types
const (
	TransactionTypeBankTransfer = "BANK_TRANSFER"
)

// Transaction entries
const (
	TransactionEntryDeposit  = "DEPOSIT"
	TransactionEntryWithdraw = "WITHDRAW"
)

// Transaction is one immutable ledger line. It is created PENDING and moves
// to SUCCESS or FAILED exactly once when the bank outcome is settled. The
// caller-supplied ReferenceID is the idempotency boundary: resubmitting a
// request with the same reference neither creates a second row nor re-applies
// any wallet mutation.
type Transaction struct {
	ID          string `gorm:"primarykey"`
	ReferenceID string `gorm:"uniqueIndex;not null"`
	WalletID    string `gorm:"index;not null"`
	Amount      Money  `gorm:"embedded;embeddedPrefix:transaction_"`
	Status      string `gorm:"not null"`
	Type        string `gorm:"not null"`
	Entry       string `gorm:"not null"`
	CreatedAt   time.Time
}

// NewDepositRequest creates a pending deposit transaction.
func NewDepositRequest(walletID string, amount Money, referenceID string) *Transaction {
	return newTransaction(walletID, amount, referenceID, TransactionEntryDeposit)
}

// NewWithdrawalRequest creates a pending withdrawal transaction.
func NewWithdrawalRequest(walletID string, amount Money, referenceID string) *Transaction {
	return newTransaction(walletID, amount, referenceID, TransactionEntryWithdraw)
}

func newTransaction(walletID string, amount Money, referenceID, entry string) *Transaction {
	return &Transaction{
		ID:          uuid.Must(uuid.NewV7()).String(),
		ReferenceID: referenceID,
		WalletID:    walletID,
		Amount:      amount,
		Status:      TransactionStatusPending,
		Type:        TransactionTypeBankTransfer,
		Entry:       entry,
		CreatedAt:   time.Now(),
	}
}

// Success marks the transaction settled successfully. It does not guard
// against re-invocation; callers must check IsPending first.
func (t *Transaction) Success() {
	t.Status = TransactionStatusSuccess
}

// Failed marks the transaction settled as failed. Same caveat as Success.
func (t *Transaction) Failed() {
	t.Status = TransactionStatusFailed
}

func (t *Transaction) IsPending() bool {
	return t.Status == TransactionStatusPending
}
