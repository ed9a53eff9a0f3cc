package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
)

// TransferHero reassigns ownership of an unescrowed hero. No event is defined
// for direct transfers; only marketplace and arena transitions are recorded.
func (u *Usecase) TransferHero(ctx context.Context, heroID entity.HeroID, from, to entity.Account) error {
	if to == "" {
		return errors.Wrap(errs.InvalidInput, "recipient must not be empty")
	}

	tx, err := u.dg.BeginLedgerTx(ctx)
	if err != nil {
		return errors.Wrap(err, "can't begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	hero, err := tx.GetHero(ctx, heroID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errors.Wrapf(errs.NotFound, "hero %q", heroID)
		}
		return errors.Wrap(err, "can't get hero")
	}
	if hero.Owner != from {
		return errors.Wrapf(errs.NotOwner, "hero %q is not owned by %q", heroID, from)
	}
	escrowed, err := heroEscrowed(ctx, tx, heroID)
	if err != nil {
		return errors.WithStack(err)
	}
	if escrowed {
		return errors.Wrapf(errs.Escrowed, "hero %q is held in escrow", heroID)
	}

	if err := tx.SetHeroOwner(ctx, heroID, to); err != nil {
		return errors.Wrap(err, "can't set hero owner")
	}

	return errors.Wrap(tx.Commit(ctx), "can't commit transaction")
}
