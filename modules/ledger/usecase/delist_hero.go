package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
)

// DelistHero removes an active listing and returns the hero to its seller's
// unescrowed state. Admin-gated: marketplace moderation is centralized in the
// capability holder rather than per-listing seller control. Emits
// HeroDelisted.
func (u *Usecase) DelistHero(ctx context.Context, listingID entity.ListingID, caller entity.Account) error {
	tx, err := u.dg.BeginLedgerTx(ctx)
	if err != nil {
		return errors.Wrap(err, "can't begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := requireAdmin(ctx, tx, caller); err != nil {
		return errors.WithStack(err)
	}
	listing, err := tx.GetListing(ctx, listingID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errors.Wrapf(errs.NotFound, "listing %q", listingID)
		}
		return errors.Wrap(err, "can't get listing")
	}

	if err := tx.DeleteListing(ctx, listingID); err != nil {
		return errors.Wrap(err, "can't delete listing")
	}
	if err := tx.AddEvent(ctx, entity.Event{
		Kind:         entity.EventHeroDelisted,
		Timestamp:    u.now(),
		HeroID:       listing.HeroID,
		ListingID:    listingID,
		Actor:        caller,
		Counterparty: listing.Seller,
	}); err != nil {
		return errors.Wrap(err, "can't append event")
	}

	return errors.Wrap(tx.Commit(ctx), "can't commit transaction")
}
