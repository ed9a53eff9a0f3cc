package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/datagateway"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
)

// requireAdmin fails with Unauthorized unless caller is the current holder of
// the admin capability. The capability is a single movable credential, not a
// role flag: the check is identity against the one current holder.
func requireAdmin(ctx context.Context, dg datagateway.LedgerDataGateway, caller entity.Account) error {
	holder, err := dg.GetAdminHolder(ctx)
	if err != nil {
		return errors.Wrap(err, "can't get admin capability holder")
	}
	if holder != caller {
		return errors.Wrapf(errs.Unauthorized, "%q does not hold the admin capability", caller)
	}
	return nil
}

// TransferAdmin moves the admin capability from its current holder to any
// account. The transfer is unconditional for the holder; a transfer to an
// unrecoverable account permanently loses the capability. Emits
// AdminTransferred.
func (u *Usecase) TransferAdmin(ctx context.Context, holder, to entity.Account) error {
	if to == "" {
		return errors.Wrap(errs.InvalidInput, "recipient must not be empty")
	}

	tx, err := u.dg.BeginLedgerTx(ctx)
	if err != nil {
		return errors.Wrap(err, "can't begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := requireAdmin(ctx, tx, holder); err != nil {
		return errors.WithStack(err)
	}
	if err := tx.SetAdminHolder(ctx, to); err != nil {
		return errors.Wrap(err, "can't set admin capability holder")
	}
	if err := tx.AddEvent(ctx, entity.Event{
		Kind:         entity.EventAdminTransferred,
		Timestamp:    u.now(),
		Actor:        holder,
		Counterparty: to,
	}); err != nil {
		return errors.Wrap(err, "can't append event")
	}

	return errors.Wrap(tx.Commit(ctx), "can't commit transaction")
}
