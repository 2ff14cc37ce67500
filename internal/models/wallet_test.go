package models

import (
	stderrors "errors"
	"testing"

	"wallet/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeWallet(t *testing.T) {
	wallet := InitializeWallet("customer-1", "GBP")

	assert.NotEmpty(t, wallet.ID)
	assert.Equal(t, "customer-1", wallet.CustomerID)
	assert.Equal(t, "GBP", wallet.Currency())
	assert.True(t, wallet.Balance.IsZero())
	assert.True(t, wallet.BalanceOnHold.IsZero())
	assert.False(t, wallet.CreatedAt.IsZero())
}

func TestWallet_Deposit(t *testing.T) {
	tests := []struct {
		name    string
		funds   Money
		wantErr error
	}{
		{name: "positive amount", funds: gbp("10")},
		{name: "zero amount", funds: ZeroMoney("GBP"), wantErr: errors.ErrInvalidAmount},
		{name: "negative amount", funds: gbp("-10"), wantErr: errors.ErrInvalidAmount},
		{name: "currency mismatch", funds: NewMoney("USD", decimal.NewFromInt(10)), wantErr: errors.ErrCurrencyMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wallet := InitializeWallet("customer-1", "GBP")
			err := wallet.Deposit(tt.funds)

			if tt.wantErr != nil {
				assert.True(t, stderrors.Is(err, tt.wantErr))
				assert.True(t, wallet.Balance.IsZero())
				return
			}

			require.NoError(t, err)
			assert.True(t, wallet.Balance.Amount.Equal(tt.funds.Amount))
		})
	}
}

func TestWallet_Withdraw(t *testing.T) {
	newFunded := func(balance string) *Wallet {
		wallet := InitializeWallet("customer-1", "GBP")
		require.NoError(t, wallet.Deposit(gbp(balance)))
		return wallet
	}

	t.Run("moves funds from balance to hold", func(t *testing.T) {
		wallet := newFunded("100")
		require.NoError(t, wallet.Withdraw(gbp("40")))

		assert.True(t, wallet.Balance.Amount.Equal(decimal.NewFromInt(60)))
		assert.True(t, wallet.BalanceOnHold.Amount.Equal(decimal.NewFromInt(40)))
	})

	t.Run("full balance", func(t *testing.T) {
		wallet := newFunded("10")
		require.NoError(t, wallet.Withdraw(gbp("10")))

		assert.True(t, wallet.Balance.IsZero())
		assert.True(t, wallet.BalanceOnHold.Amount.Equal(decimal.NewFromInt(10)))
	})

	t.Run("zero amount", func(t *testing.T) {
		wallet := newFunded("10")
		err := wallet.Withdraw(ZeroMoney("GBP"))
		assert.True(t, stderrors.Is(err, errors.ErrInvalidAmount))
	})

	t.Run("negative amount", func(t *testing.T) {
		wallet := newFunded("10")
		err := wallet.Withdraw(gbp("-1"))
		assert.True(t, stderrors.Is(err, errors.ErrInvalidAmount))
	})

	t.Run("insufficient funds leaves wallet unchanged", func(t *testing.T) {
		wallet := newFunded("10")
		err := wallet.Withdraw(gbp("10.01"))

		assert.True(t, stderrors.Is(err, errors.ErrInsufficientFunds))
		assert.True(t, wallet.Balance.Amount.Equal(decimal.NewFromInt(10)))
		assert.True(t, wallet.BalanceOnHold.IsZero())
	})
}

func TestWallet_ResetBalanceOnHold(t *testing.T) {
	wallet := InitializeWallet("customer-1", "GBP")
	require.NoError(t, wallet.Deposit(gbp("10")))
	require.NoError(t, wallet.Withdraw(gbp("10")))

	wallet.ResetBalanceOnHold()

	assert.True(t, wallet.BalanceOnHold.IsZero())
	assert.Equal(t, "GBP", wallet.BalanceOnHold.Currency)
}

func TestWallet_IsCurrencyMatched(t *testing.T) {
	wallet := InitializeWallet("customer-1", "GBP")
	assert.True(t, wallet.IsCurrencyMatched("GBP"))
	assert.False(t, wallet.IsCurrencyMatched("USD"))
}
