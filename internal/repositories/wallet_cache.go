package repositories

import (
	"context"
	"encoding/json"
	"time"

	"wallet/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	walletCachePrefix = "wallet:"
	walletCacheTTL    = 5 * time.Minute
)

// WalletCache is a Redis read cache for wallet details. It is strictly
// cache-aside: every wallet mutation invalidates the entry after commit.
type WalletCache struct {
	client *redis.Client
}

func NewWalletCache(client *redis.Client) *WalletCache {
	return &WalletCache{client: client}
}

func (c *WalletCache) GetWallet(ctx context.Context, walletID string) (*models.Wallet, error) {
	data, err := c.client.Get(ctx, walletCachePrefix+walletID).Bytes()
	if err != nil {
		return nil, err
	}

	var wallet models.Wallet
	if err := json.Unmarshal(data, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (c *WalletCache) SetWallet(ctx context.Context, wallet *models.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, walletCachePrefix+wallet.ID, data, walletCacheTTL).Err()
}

func (c *WalletCache) InvalidateWallet(ctx context.Context, walletID string) error {
	return c.client.Del(ctx, walletCachePrefix+walletID).Err()
}
