package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
)

// ListHero escrows the seller's hero into a new marketplace listing and emits
// HeroListed. The hero's owner of record is unchanged; transfers are blocked
// while the listing is active.
func (u *Usecase) ListHero(ctx context.Context, heroID entity.HeroID, seller entity.Account, price int64) (*entity.Listing, error) {
	if price <= 0 {
		return nil, errors.Wrap(errs.InvalidInput, "price must be positive")
	}

	tx, err := u.dg.BeginLedgerTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "can't begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	hero, err := tx.GetHero(ctx, heroID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, errors.Wrapf(errs.NotFound, "hero %q", heroID)
		}
		return nil, errors.Wrap(err, "can't get hero")
	}
	if hero.Owner != seller {
		return nil, errors.Wrapf(errs.NotOwner, "hero %q is not owned by %q", heroID, seller)
	}
	escrowed, err := heroEscrowed(ctx, tx, heroID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if escrowed {
		return nil, errors.Wrapf(errs.AlreadyEscrowed, "hero %q already has an active listing or arena", heroID)
	}

	now := u.now()
	listing := entity.Listing{
		ID:       entity.ListingID(newID()),
		HeroID:   heroID,
		Seller:   seller,
		Price:    price,
		ListedAt: now,
	}
	if err := tx.CreateListing(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "can't create listing")
	}
	if err := tx.AddEvent(ctx, entity.Event{
		Kind:      entity.EventHeroListed,
		Timestamp: now,
		HeroID:    heroID,
		ListingID: listing.ID,
		Actor:     seller,
		Price:     price,
	}); err != nil {
		return nil, errors.Wrap(err, "can't append event")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "can't commit transaction")
	}
	return &listing, nil
}
