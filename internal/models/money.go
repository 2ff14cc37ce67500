package models

import (
	"fmt"

	"wallet/internal/errors"

	"github.com/shopspring/decimal"
)

// Money is an immutable currency + amount pair. Arithmetic never mutates the
// receiver; every operation returns a new value. Operations across different
// currencies fail with ErrCurrencyMismatch.
type Money struct {
	Currency string          `gorm:"not null" json:"currency"`
	Amount   decimal.Decimal `gorm:"type:numeric;not null" json:"value"`
}

// NewMoney creates a Money value for the given ISO-4217 currency code.
func NewMoney(currency string, amount decimal.Decimal) Money {
	return Money{Currency: currency, Amount: amount}
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency string) Money {
	return Money{Currency: currency, Amount: decimal.Zero}
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, errors.ErrCurrencyMismatch.WithMessage("cannot add money with different currency")
	}
	return Money{Currency: m.Currency, Amount: m.Amount.Add(other.Amount)}, nil
}

func (m Money) Subtract(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, errors.ErrCurrencyMismatch.WithMessage("cannot subtract money with different currency")
	}
	return Money{Currency: m.Currency, Amount: m.Amount.Sub(other.Amount)}, nil
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// IsGreaterThan reports whether m exceeds other. Both values must share a
// currency.
func (m Money) IsGreaterThan(other Money) (bool, error) {
	if m.Currency != other.Currency {
		return false, errors.ErrCurrencyMismatch.WithMessage("cannot compare money with different currency")
	}
	return m.Amount.GreaterThan(other.Amount), nil
}

// String renders the value for error messages, e.g. "GBP 10.5".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency, m.Amount.String())
}
