package ledger

import (
	"context"
	"maps"
	"sort"
	"sync"

	"wallet/internal/models"
	"wallet/internal/repositories"
)

// memRepository is an in-memory repositories.WalletRepository. One mutex
// serializes units of work, which gives every ExecuteInTransaction call the
// serializable semantics the real store provides through row locks. On error
// the whole unit of work rolls back to the snapshot taken at entry.
type memRepository struct {
	mu           *sync.Mutex
	wallets      map[string]*models.Wallet      // by wallet id
	transactions map[string]*models.Transaction // by reference id
	inTx         bool
}

func newMemRepository() *memRepository {
	return &memRepository{
		mu:           &sync.Mutex{},
		wallets:      make(map[string]*models.Wallet),
		transactions: make(map[string]*models.Transaction),
	}
}

func (m *memRepository) lock() func() {
	if m.inTx {
		return func() {}
	}
	m.mu.Lock()
	return m.mu.Unlock
}

func (m *memRepository) CreateWallet(_ context.Context, wallet *models.Wallet) error {
	defer m.lock()()
	for _, w := range m.wallets {
		if w.CustomerID == wallet.CustomerID {
			return repositories.ErrDuplicateWallet
		}
	}
	cp := *wallet
	m.wallets[wallet.ID] = &cp
	return nil
}

func (m *memRepository) GetWallet(_ context.Context, walletID, customerID string) (*models.Wallet, error) {
	defer m.lock()()
	return m.findWallet(walletID, customerID)
}

func (m *memRepository) GetWalletForUpdate(_ context.Context, walletID, customerID string) (*models.Wallet, error) {
	defer m.lock()()
	return m.findWallet(walletID, customerID)
}

func (m *memRepository) GetWalletByIDForUpdate(_ context.Context, walletID string) (*models.Wallet, error) {
	defer m.lock()()
	w, ok := m.wallets[walletID]
	if !ok {
		return nil, repositories.ErrWalletNotFound
	}
	cp := *w
	return &cp, nil
}

func (m *memRepository) findWallet(walletID, customerID string) (*models.Wallet, error) {
	w, ok := m.wallets[walletID]
	if !ok || w.CustomerID != customerID {
		return nil, repositories.ErrWalletNotFound
	}
	cp := *w
	return &cp, nil
}

func (m *memRepository) UpdateWallet(_ context.Context, wallet *models.Wallet) error {
	defer m.lock()()
	cp := *wallet
	m.wallets[wallet.ID] = &cp
	return nil
}

func (m *memRepository) CreateTransaction(_ context.Context, tx *models.Transaction) error {
	defer m.lock()()
	if _, exists := m.transactions[tx.ReferenceID]; exists {
		return repositories.ErrDuplicateReference
	}
	cp := *tx
	m.transactions[tx.ReferenceID] = &cp
	return nil
}

func (m *memRepository) GetTransactionByReferenceID(_ context.Context, referenceID string) (*models.Transaction, error) {
	defer m.lock()()
	return m.findTransaction(referenceID)
}

func (m *memRepository) GetTransactionByReferenceIDForUpdate(_ context.Context, referenceID string) (*models.Transaction, error) {
	defer m.lock()()
	return m.findTransaction(referenceID)
}

func (m *memRepository) findTransaction(referenceID string) (*models.Transaction, error) {
	tx, ok := m.transactions[referenceID]
	if !ok {
		return nil, repositories.ErrTransactionNotFound
	}
	cp := *tx
	return &cp, nil
}

func (m *memRepository) UpdateTransaction(_ context.Context, tx *models.Transaction) error {
	defer m.lock()()
	cp := *tx
	m.transactions[tx.ReferenceID] = &cp
	return nil
}

func (m *memRepository) ListTransactionsByWalletID(_ context.Context, walletID string, limit, offset int) ([]models.Transaction, int64, error) {
	defer m.lock()()
	var matched []models.Transaction
	for _, tx := range m.transactions {
		if tx.WalletID == walletID {
			matched = append(matched, *tx)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *memRepository) ExecuteInTransaction(fn func(repositories.WalletRepository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	walletSnapshot := maps.Clone(m.wallets)
	transactionSnapshot := maps.Clone(m.transactions)

	view := &memRepository{
		mu:           m.mu,
		wallets:      m.wallets,
		transactions: m.transactions,
		inTx:         true,
	}
	if err := fn(view); err != nil {
		m.wallets = walletSnapshot
		m.transactions = transactionSnapshot
		return err
	}
	return nil
}
