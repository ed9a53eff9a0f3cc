package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
)

// BuyHero atomically swaps hero ownership against payment and destroys the
// listing. The buyer is charged exactly the listing price; overpayment stays
// with the buyer. Emits HeroBought.
func (u *Usecase) BuyHero(ctx context.Context, listingID entity.ListingID, buyer entity.Account, payment int64) error {
	if buyer == "" {
		return errors.Wrap(errs.InvalidInput, "buyer must not be empty")
	}

	tx, err := u.dg.BeginLedgerTx(ctx)
	if err != nil {
		return errors.Wrap(err, "can't begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	listing, err := tx.GetListing(ctx, listingID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errors.Wrapf(errs.NotFound, "listing %q", listingID)
		}
		return errors.Wrap(err, "can't get listing")
	}
	if payment < listing.Price {
		return errors.Wrapf(errs.InsufficientPayment, "payment %d < price %d", payment, listing.Price)
	}
	balance, err := tx.GetBalance(ctx, buyer)
	if err != nil {
		return errors.Wrap(err, "can't get buyer balance")
	}
	if balance < listing.Price {
		return errors.Wrapf(errs.InsufficientPayment, "balance %d < price %d", balance, listing.Price)
	}

	if err := tx.AddBalance(ctx, buyer, -listing.Price); err != nil {
		return errors.Wrap(err, "can't debit buyer")
	}
	if err := tx.AddBalance(ctx, listing.Seller, listing.Price); err != nil {
		return errors.Wrap(err, "can't credit seller")
	}
	if err := tx.SetHeroOwner(ctx, listing.HeroID, buyer); err != nil {
		return errors.Wrap(err, "can't set hero owner")
	}
	if err := tx.DeleteListing(ctx, listingID); err != nil {
		return errors.Wrap(err, "can't delete listing")
	}
	if err := tx.AddEvent(ctx, entity.Event{
		Kind:         entity.EventHeroBought,
		Timestamp:    u.now(),
		HeroID:       listing.HeroID,
		ListingID:    listingID,
		Actor:        buyer,
		Counterparty: listing.Seller,
		Price:        listing.Price,
	}); err != nil {
		return errors.Wrap(err, "can't append event")
	}

	return errors.Wrap(tx.Commit(ctx), "can't commit transaction")
}
