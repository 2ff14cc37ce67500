package models

import (
	"fmt"
	"time"

	"wallet/internal/errors"

	"github.com/google/uuid"
)

// Wallet holds a customer's available balance and the balance reserved for
// withdrawals awaiting bank confirmation. Both balances always share one
// currency and the available balance never goes negative. State changes only
// through Deposit, Withdraw and ResetBalanceOnHold.
type Wallet struct {
	ID            string `gorm:"primarykey"`
	CustomerID    string `gorm:"uniqueIndex;not null"`
	Balance       Money  `gorm:"embedded;embeddedPrefix:balance_"`
	BalanceOnHold Money  `gorm:"embedded;embeddedPrefix:balance_held_"`
	CreatedAt     time.Time
}

// InitializeWallet creates a fresh wallet with zero balances.
func InitializeWallet(customerID, currency string) *Wallet {
	return &Wallet{
		ID:            uuid.Must(uuid.NewV7()).String(),
		CustomerID:    customerID,
		Balance:       ZeroMoney(currency),
		BalanceOnHold: ZeroMoney(currency),
		CreatedAt:     time.Now(),
	}
}

// Deposit credits funds to the available balance.
func (w *Wallet) Deposit(funds Money) error {
	if funds.IsZero() || funds.IsNegative() {
		return errors.ErrInvalidAmount.WithMessage(
			fmt.Sprintf("deposit funds cannot be zero or negative, amount is %s", funds))
	}

	balance, err := w.Balance.Add(funds)
	if err != nil {
		return err
	}

	w.Balance = balance
	return nil
}

// Withdraw moves funds from the available balance to the held balance. The
// funds stay on the wallet until the bank settles the withdrawal.
func (w *Wallet) Withdraw(funds Money) error {
	if funds.IsZero() || funds.IsNegative() {
		return errors.ErrInvalidAmount.WithMessage(
			fmt.Sprintf("withdraw funds cannot be zero or negative, amount is %s", funds))
	}

	exceeds, err := funds.IsGreaterThan(w.Balance)
	if err != nil {
		return err
	}
	if exceeds {
		return errors.ErrInsufficientFunds.WithMessage(
			fmt.Sprintf("not enough funds to withdraw, remaining balance is only %s", w.Balance))
	}

	balance, err := w.Balance.Subtract(funds)
	if err != nil {
		return err
	}
	held, err := w.BalanceOnHold.Add(funds)
	if err != nil {
		return err
	}

	w.Balance = balance
	w.BalanceOnHold = held
	return nil
}

// ResetBalanceOnHold clears the held balance once a withdrawal settles,
// whatever the outcome. Assumes at most one outstanding withdrawal per wallet.
func (w *Wallet) ResetBalanceOnHold() {
	w.BalanceOnHold = ZeroMoney(w.Currency())
}

func (w *Wallet) IsCurrencyMatched(currency string) bool {
	return w.Currency() == currency
}

func (w *Wallet) Currency() string {
	return w.Balance.Currency
}
