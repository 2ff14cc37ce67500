package config

import (
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// SupportedCurrencies is the set of ISO-4217 codes the service accepts.
type SupportedCurrencies struct {
	values map[string]struct{}
}

// NewSupportedCurrencies builds the set from explicit codes.
func NewSupportedCurrencies(codes ...string) SupportedCurrencies {
	values := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		values[code] = struct{}{}
	}
	return SupportedCurrencies{values: values}
}

func (s SupportedCurrencies) IsSupported(currency string) bool {
	_, ok := s.values[currency]
	return ok
}

// Limit is an inclusive [Min, Max] amount range for one operation type.
type Limit struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

func (l Limit) IsWithinLimit(value decimal.Decimal) bool {
	return value.GreaterThanOrEqual(l.Min) && value.LessThanOrEqual(l.Max)
}

// Limits holds the per-operation transaction limits.
type Limits struct {
	Deposit  Limit
	Withdraw Limit
}

// LoadSupportedCurrencies reads SUPPORTED_CURRENCIES, a comma-separated list
// of currency codes.
func LoadSupportedCurrencies() SupportedCurrencies {
	raw := GetEnv("SUPPORTED_CURRENCIES", "GBP,USD,EUR")
	var codes []string
	for _, code := range strings.Split(raw, ",") {
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}
	return NewSupportedCurrencies(codes...)
}

// LoadLimits reads the deposit and withdraw limits from the environment.
func LoadLimits() Limits {
	return Limits{
		Deposit: Limit{
			Min: GetDecimalEnv("LIMITS_DEPOSIT_MIN", "1"),
			Max: GetDecimalEnv("LIMITS_DEPOSIT_MAX", "10000"),
		},
		Withdraw: Limit{
			Min: GetDecimalEnv("LIMITS_WITHDRAW_MIN", "1"),
			Max: GetDecimalEnv("LIMITS_WITHDRAW_MAX", "5000"),
		},
	}
}

// GetDecimalEnv returns a decimal environment variable or a default value.
func GetDecimalEnv(key, defaultVal string) decimal.Decimal {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := decimal.NewFromString(val); err == nil {
			return d
		}
	}
	return decimal.RequireFromString(defaultVal)
}
