/*
Package ledger implements the wallet ledger workflows: deposit and withdraw
request creation and settlement of asynchronous bank outcomes.

Deposit and Withdraw record a PENDING transaction keyed by a caller-supplied
reference. Resubmitting the same reference returns the original receipt and
has no further effect. A withdrawal reserves the funds immediately by moving
them from the available balance to the held balance; a deposit touches the
wallet only once the bank confirms receipt.

Settle applies the terminal bank outcome (SUCCESS or FAILED) to a pending
transaction exactly once. A transaction already settled is left untouched, so
duplicate or out-of-order notifications are absorbed silently.

Concurrency:

Correctness rests on exclusive row locks scoped to one unit of work. Withdraw
locks the wallet row for its whole unit of work. Settle locks the transaction
row first and the wallet row second; the fixed order prevents deadlocks
between concurrent settlements touching the same wallet. No lock is ever held
while waiting on the bank; outcomes arrive as separate callback requests.

Usage:

	svc := ledger.NewService(repo, cache, currencies, limits, nil)

	receipt, err := svc.Deposit(ctx, ledger.DepositRequest{
	    ReferenceID: "ref-1",
	    WalletID:    walletID,
	    CustomerID:  customerID,
	    Amount:      ledger.Amount{Currency: "GBP", Value: decimal.NewFromInt(10)},
	})

	err = svc.Settle(ctx, "ref-1", ledger.OutcomeSuccess)

Error Handling:

Business failures are *errors.DomainError values with stable codes
(WALLET_NOT_FOUND, CURRENCY_NOT_SUPPORTED, AMOUNT_NOT_WITHIN_LIMIT,
CURRENCY_MISMATCH, INVALID_AMOUNT, INSUFFICIENT_FUNDS). Infrastructure
failures are wrapped and safe to retry with the same reference.
*/
package ledger
