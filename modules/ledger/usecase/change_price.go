package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
)

// ChangePrice updates the price of an active listing. Admin-gated. Emits
// PriceChanged.
func (u *Usecase) ChangePrice(ctx context.Context, listingID entity.ListingID, newPrice int64, caller entity.Account) error {
	if newPrice <= 0 {
		return errors.Wrap(errs.InvalidInput, "price must be positive")
	}

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

	if err := tx.SetListingPrice(ctx, listingID, newPrice); err != nil {
		return errors.Wrap(err, "can't set listing price")
	}
	if err := tx.AddEvent(ctx, entity.Event{
		Kind:      entity.EventPriceChanged,
		Timestamp: u.now(),
		HeroID:    listing.HeroID,
		ListingID: listingID,
		Actor:     caller,
		Price:     newPrice,
	}); err != nil {
		return errors.Wrap(err, "can't append event")
	}

	return errors.Wrap(tx.Commit(ctx), "can't commit transaction")
}
