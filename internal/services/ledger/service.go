package ledger

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"math"

	"wallet/internal/config"
	"wallet/internal/errors"
	"wallet/internal/models"
	"wallet/internal/repositories"
)

type service struct {
	repo       repositories.WalletRepository
	cache      Cache
	currencies config.SupportedCurrencies
	limits     config.Limits
	metrics    MetricsCollector
}

// NewService creates the ledger service. Cache and metrics are optional;
// nil values fall back to no-op implementations.
func NewService(
	repo repositories.WalletRepository,
	cache Cache,
	currencies config.SupportedCurrencies,
	limits config.Limits,
	metrics MetricsCollector,
) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		cache = noopCache{}
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		repo:       repo,
		cache:      cache,
		currencies: currencies,
		limits:     limits,
		metrics:    metrics,
	}
}

func (s *service) CreateWallet(ctx context.Context, customerID, currency string) (*models.Wallet, error) {
	if !s.currencies.IsSupported(currency) {
		return nil, errors.ErrCurrencyNotSupported.WithMessage(
			fmt.Sprintf("currency '%s' is not supported", currency))
	}

	wallet := models.InitializeWallet(customerID, currency)
	if err := s.repo.CreateWallet(ctx, wallet); err != nil {
		if stderrors.Is(err, repositories.ErrDuplicateWallet) {
			return nil, errors.ErrDuplicateWallet
		}
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	slog.Info("wallet created", "wallet_id", wallet.ID, "customer_id", customerID, "currency", currency)
	return wallet, nil
}

// Deposit records a pending deposit transaction. The wallet is not credited
// here; funds are applied at settlement once the bank confirms receipt.
func (s *service) Deposit(ctx context.Context, req DepositRequest) (*TransactionReceipt, error) {
	if receipt, err := s.findReplay(ctx, req.ReferenceID); receipt != nil || err != nil {
		return receipt, err
	}

	amount := models.NewMoney(req.Amount.Currency, req.Amount.Value)
	if err := s.validateAmount(amount, s.limits.Deposit); err != nil {
		s.metrics.RecordError("deposit", errorCode(err))
		return nil, err
	}

	wallet, err := s.repo.GetWallet(ctx, req.WalletID, req.CustomerID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrWalletNotFound) {
			return nil, errors.ErrWalletNotFound
		}
		return nil, err
	}
	if !wallet.IsCurrencyMatched(amount.Currency) {
		return nil, errors.ErrCurrencyMismatch.WithMessage(
			fmt.Sprintf("customer wallet only supports '%s' as currency", wallet.Currency()))
	}

	tx := models.NewDepositRequest(wallet.ID, amount, req.ReferenceID)
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		// A concurrent first submission of the same reference won the insert;
		// the unique constraint closed the race. Replay its receipt.
		if stderrors.Is(err, repositories.ErrDuplicateReference) {
			return s.replay(ctx, req.ReferenceID)
		}
		return nil, err
	}

	slog.Info("deposit transaction recorded",
		"transaction_id", tx.ID, "reference_id", req.ReferenceID, "wallet_id", wallet.ID)
	s.metrics.RecordTransaction(models.TransactionEntryDeposit, amount.Amount)

	return &TransactionReceipt{TransactionID: tx.ID, Status: tx.Status}, nil
}

// Withdraw reserves funds and records a pending withdrawal. The wallet is
// locked for the whole unit of work so the same funds cannot be reserved
// twice by racing requests.
func (s *service) Withdraw(ctx context.Context, req WithdrawRequest) (*TransactionReceipt, error) {
	if receipt, err := s.findReplay(ctx, req.ReferenceID); receipt != nil || err != nil {
		return receipt, err
	}

	amount := models.NewMoney(req.Amount.Currency, req.Amount.Value)
	if err := s.validateAmount(amount, s.limits.Withdraw); err != nil {
		s.metrics.RecordError("withdraw", errorCode(err))
		return nil, err
	}

	var tx *models.Transaction
	err := s.repo.ExecuteInTransaction(func(r repositories.WalletRepository) error {
		wallet, err := r.GetWalletForUpdate(ctx, req.WalletID, req.CustomerID)
		if err != nil {
			return err
		}
		if !wallet.IsCurrencyMatched(amount.Currency) {
			return errors.ErrCurrencyMismatch.WithMessage(
				fmt.Sprintf("customer wallet only supports '%s' as currency", wallet.Currency()))
		}

		if err := wallet.Withdraw(amount); err != nil {
			return err
		}
		if err := r.UpdateWallet(ctx, wallet); err != nil {
			return err
		}

		tx = models.NewWithdrawalRequest(wallet.ID, amount, req.ReferenceID)
		return r.CreateTransaction(ctx, tx)
	})
	if err != nil {
		// The rollback has already released the reservation; the reference
		// was recorded by an earlier or concurrent submission.
		if stderrors.Is(err, repositories.ErrDuplicateReference) {
			return s.replay(ctx, req.ReferenceID)
		}
		if stderrors.Is(err, repositories.ErrWalletNotFound) {
			return nil, errors.ErrWalletNotFound
		}
		s.metrics.RecordError("withdraw", errorCode(err))
		return nil, err
	}

	s.invalidateWallet(ctx, req.WalletID)
	slog.Info("withdraw transaction recorded",
		"transaction_id", tx.ID, "reference_id", req.ReferenceID, "wallet_id", req.WalletID)
	s.metrics.RecordTransaction(models.TransactionEntryWithdraw, amount.Amount)

	return &TransactionReceipt{TransactionID: tx.ID, Status: tx.Status}, nil
}

// Settle applies the terminal bank outcome to the pending transaction with
// the given reference. Settling an already-terminal transaction is a no-op,
// which makes duplicate and out-of-order notifications safe.
func (s *service) Settle(ctx context.Context, referenceID, outcome string) error {
	if outcome != OutcomeSuccess && outcome != OutcomeFailed {
		return fmt.Errorf("unknown bank outcome %q", outcome)
	}

	var mutatedWalletID string
	err := s.repo.ExecuteInTransaction(func(r repositories.WalletRepository) error {
		tx, err := r.GetTransactionByReferenceIDForUpdate(ctx, referenceID)
		if err != nil {
			if stderrors.Is(err, repositories.ErrTransactionNotFound) {
				return errors.ErrTransactionNotFound.WithMessage(
					fmt.Sprintf("transaction with reference '%s' not found", referenceID))
			}
			return err
		}

		if !tx.IsPending() {
			// already settled by an earlier notification
			slog.Info("skipping settlement of non-pending transaction",
				"reference_id", referenceID, "status", tx.Status)
			return nil
		}

		switch tx.Entry {
		case models.TransactionEntryDeposit:
			mutatedWalletID, err = s.settleDeposit(ctx, r, tx, outcome)
		case models.TransactionEntryWithdraw:
			mutatedWalletID, err = s.settleWithdraw(ctx, r, tx, outcome)
		default:
			err = fmt.Errorf("unknown transaction entry %q", tx.Entry)
		}
		return err
	})
	if err != nil {
		s.metrics.RecordError("settle", errorCode(err))
		return err
	}

	if mutatedWalletID != "" {
		s.invalidateWallet(ctx, mutatedWalletID)
	}
	return nil
}

// settleDeposit credits the wallet only on SUCCESS; a failed deposit never
// touched the balance. Returns the wallet id when the wallet was mutated.
func (s *service) settleDeposit(ctx context.Context, r repositories.WalletRepository, tx *models.Transaction, outcome string) (string, error) {
	switch outcome {
	case OutcomeSuccess:
		wallet, err := r.GetWalletByIDForUpdate(ctx, tx.WalletID)
		if err != nil {
			return "", err
		}
		if err := wallet.Deposit(tx.Amount); err != nil {
			return "", err
		}
		if err := r.UpdateWallet(ctx, wallet); err != nil {
			return "", err
		}

		tx.Success()
		if err := r.UpdateTransaction(ctx, tx); err != nil {
			return "", err
		}
		s.logSettled(tx, outcome)
		return wallet.ID, nil

	default: // OutcomeFailed
		tx.Failed()
		if err := r.UpdateTransaction(ctx, tx); err != nil {
			return "", err
		}
		s.logSettled(tx, outcome)
		return "", nil
	}
}

// settleWithdraw resolves the hold placed at reservation time. SUCCESS lets
// the held funds leave for good; FAILED returns them to the available
// balance. Either way the hold is cleared.
func (s *service) settleWithdraw(ctx context.Context, r repositories.WalletRepository, tx *models.Transaction, outcome string) (string, error) {
	wallet, err := r.GetWalletByIDForUpdate(ctx, tx.WalletID)
	if err != nil {
		return "", err
	}

	switch outcome {
	case OutcomeSuccess:
		wallet.ResetBalanceOnHold()
		if err := r.UpdateWallet(ctx, wallet); err != nil {
			return "", err
		}
		tx.Success()

	default: // OutcomeFailed
		if err := wallet.Deposit(tx.Amount); err != nil {
			return "", err
		}
		wallet.ResetBalanceOnHold()
		if err := r.UpdateWallet(ctx, wallet); err != nil {
			return "", err
		}
		tx.Failed()
	}

	if err := r.UpdateTransaction(ctx, tx); err != nil {
		return "", err
	}
	s.logSettled(tx, outcome)
	return wallet.ID, nil
}

func (s *service) GetWalletDetails(ctx context.Context, walletID, customerID string) (*WalletDetails, error) {
	if wallet, err := s.cache.GetWallet(ctx, walletID); err == nil {
		if wallet.CustomerID == customerID {
			return walletDetails(wallet), nil
		}
	}

	wallet, err := s.repo.GetWallet(ctx, walletID, customerID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrWalletNotFound) {
			return nil, errors.ErrWalletNotFound
		}
		return nil, err
	}

	if err := s.cache.SetWallet(ctx, wallet); err != nil {
		slog.Warn("failed to cache wallet", "wallet_id", walletID, "error", err)
	}
	return walletDetails(wallet), nil
}

func (s *service) ListTransactions(ctx context.Context, walletID, customerID string, page, size int) (*TransactionPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	wallet, err := s.repo.GetWallet(ctx, walletID, customerID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrWalletNotFound) {
			return nil, errors.ErrWalletNotFound
		}
		return nil, err
	}

	transactions, total, err := s.repo.ListTransactionsByWalletID(ctx, wallet.ID, size, (page-1)*size)
	if err != nil {
		return nil, err
	}

	summaries := make([]TransactionSummary, 0, len(transactions))
	for _, tx := range transactions {
		summaries = append(summaries, TransactionSummary{
			ID:          tx.ID,
			ReferenceID: tx.ReferenceID,
			Type:        tx.Type,
			Entry:       tx.Entry,
			Status:      tx.Status,
			Amount:      tx.Amount,
			CreatedAt:   tx.CreatedAt,
		})
	}

	return &TransactionPage{
		TotalElements: total,
		TotalPages:    int(math.Ceil(float64(total) / float64(size))),
		Page:          page,
		Size:          len(summaries),
		Transactions:  summaries,
	}, nil
}

// findReplay returns the receipt of a previously recorded reference, or nil
// when the reference is new.
func (s *service) findReplay(ctx context.Context, referenceID string) (*TransactionReceipt, error) {
	existing, err := s.repo.GetTransactionByReferenceID(ctx, referenceID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &TransactionReceipt{TransactionID: existing.ID, Status: existing.Status}, nil
}

// replay resolves a lost insert race by returning the winner's receipt.
func (s *service) replay(ctx context.Context, referenceID string) (*TransactionReceipt, error) {
	existing, err := s.repo.GetTransactionByReferenceID(ctx, referenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction for reference %s: %w", referenceID, err)
	}
	return &TransactionReceipt{TransactionID: existing.ID, Status: existing.Status}, nil
}

func (s *service) validateAmount(amount models.Money, limit config.Limit) error {
	if !s.currencies.IsSupported(amount.Currency) {
		return errors.ErrCurrencyNotSupported.WithMessage(
			fmt.Sprintf("currency '%s' is not supported", amount.Currency))
	}
	if !limit.IsWithinLimit(amount.Amount) {
		return errors.ErrAmountNotWithinLimit.WithMessage(
			fmt.Sprintf("invalid amount, max limit is '%s' and min limit is '%s'",
				limit.Max.String(), limit.Min.String()))
	}
	return nil
}

func (s *service) invalidateWallet(ctx context.Context, walletID string) {
	if err := s.cache.InvalidateWallet(ctx, walletID); err != nil {
		slog.Warn("failed to invalidate wallet cache", "wallet_id", walletID, "error", err)
	}
}

func (s *service) logSettled(tx *models.Transaction, outcome string) {
	s.metrics.RecordSettlement(tx.Entry, outcome)
	slog.Info("transaction settled",
		"transaction_id", tx.ID, "reference_id", tx.ReferenceID,
		"entry", tx.Entry, "outcome", outcome)
}

func walletDetails(wallet *models.Wallet) *WalletDetails {
	return &WalletDetails{
		WalletID:      wallet.ID,
		CustomerID:    wallet.CustomerID,
		Balance:       wallet.Balance,
		BalanceOnHold: wallet.BalanceOnHold,
	}
}

func errorCode(err error) string {
	var domainErr *errors.DomainError
	if stderrors.As(err, &domainErr) {
		return domainErr.Code
	}
	return "INTERNAL"
}
