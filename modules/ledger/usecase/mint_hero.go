package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
)

// MintHero creates a new hero owned by the caller and emits HeroCreated.
func (u *Usecase) MintHero(ctx context.Context, owner entity.Account, name, imageURL string, power int64) (*entity.Hero, error) {
	if owner == "" {
		return nil, errors.Wrap(errs.InvalidInput, "owner must not be empty")
	}
	if name == "" {
		return nil, errors.Wrap(errs.InvalidInput, "name must not be empty")
	}
	if imageURL == "" {
		return nil, errors.Wrap(errs.InvalidInput, "image_url must not be empty")
	}
	if power <= 0 {
		return nil, errors.Wrap(errs.InvalidInput, "power must be positive")
	}

	tx, err := u.dg.BeginLedgerTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "can't begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := u.now()
	hero := entity.Hero{
		ID:        entity.HeroID(newID()),
		Name:      name,
		ImageURL:  imageURL,
		Power:     power,
		Owner:     owner,
		CreatedAt: now,
	}
	if err := tx.CreateHero(ctx, hero); err != nil {
		return nil, errors.Wrap(err, "can't create hero")
	}
	if err := tx.AddEvent(ctx, entity.Event{
		Kind:      entity.EventHeroCreated,
		Timestamp: now,
		HeroID:    hero.ID,
		Actor:     owner,
	}); err != nil {
		return nil, errors.Wrap(err, "can't append event")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "can't commit transaction")
	}
	return &hero, nil
}
