package ledger

import (
	"time"

	"wallet/internal/models"

	"github.com/shopspring/decimal"
)

// Bank outcomes applied at settlement.
const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailed  = "FAILED"
)

// Amount is a currency + value pair as submitted by the caller.
type Amount struct {
	Currency string
	Value    decimal.Decimal
}

// DepositRequest asks to record a pending deposit.
type DepositRequest struct {
	ReferenceID string
	WalletID    string
	CustomerID  string
	Amount      Amount
}

// WithdrawRequest asks to reserve funds and record a pending withdrawal.
type WithdrawRequest struct {
	ReferenceID string
	WalletID    string
	CustomerID  string
	Amount      Amount
}

// TransactionReceipt identifies the recorded transaction. Replays of the same
// reference return the receipt of the original submission.
type TransactionReceipt struct {
	TransactionID string
	Status        string
}

// WalletDetails is the read model for one wallet.
type WalletDetails struct {
	WalletID      string
	CustomerID    string
	Balance       models.Money
	BalanceOnHold models.Money
}

// TransactionSummary is one line of the transaction history.
type TransactionSummary struct {
	ID          string
	ReferenceID string
	Type        string
	Entry       string
	Status      string
	Amount      models.Money
	CreatedAt   time.Time
}

// TransactionPage is a recency-ordered page of transaction summaries.
type TransactionPage struct {
	TotalElements int64
	TotalPages    int
	Page          int
	Size          int
	Transactions  []TransactionSummary
}
