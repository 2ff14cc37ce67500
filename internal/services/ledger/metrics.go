package ledger

import (
	"context"
	"errors"

	"wallet/internal/models"

	"github.com/shopspring/decimal"
)

// MetricsCollector collects ledger operation metrics.
type MetricsCollector interface {
	RecordTransaction(entry string, amount decimal.Decimal)
	RecordSettlement(entry, outcome string)
	RecordError(operation, code string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordTransaction(string, decimal.Decimal) {}
func (n *NoopMetricsCollector) RecordSettlement(string, string)          {}
func (n *NoopMetricsCollector) RecordError(string, string)               {}

var errCacheDisabled = errors.New("cache disabled")

// noopCache is used when no Redis cache is wired, e.g. in tests.
type noopCache struct{}

func (noopCache) GetWallet(context.Context, string) (*models.Wallet, error) {
	return nil, errCacheDisabled
}
func (noopCache) SetWallet(context.Context, *models.Wallet) error { return nil }
func (noopCache) InvalidateWallet(context.Context, string) error  { return nil }
