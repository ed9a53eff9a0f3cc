package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
)

// Deposit credits an account balance and returns the new balance. Funding
// comes from outside the ledger, so deposits are a balance mutation only and
// are not recorded in the event log.
func (u *Usecase) Deposit(ctx context.Context, account entity.Account, amount int64) (int64, error) {
	if account == "" {
		return 0, errors.Wrap(errs.InvalidInput, "account must not be empty")
	}
	if amount <= 0 {
		return 0, errors.Wrap(errs.InvalidInput, "amount must be positive")
	}

	tx, err := u.dg.BeginLedgerTx(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "can't begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.AddBalance(ctx, account, amount); err != nil {
		return 0, errors.Wrap(err, "can't credit account")
	}

	balance, err := tx.GetBalance(ctx, account)
	if err != nil {
		return 0, errors.Wrap(err, "can't get balance")
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errors.Wrap(err, "can't commit transaction")
	}
	return balance, nil
}
