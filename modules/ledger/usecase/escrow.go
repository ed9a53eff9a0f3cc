package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/datagateway"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
)

// heroEscrowed reports whether the hero is held by an active listing or arena.
// The single-active-escrow invariant makes this two index lookups, not a scan.
func heroEscrowed(ctx context.Context, dg datagateway.LedgerDataGateway, heroID entity.HeroID) (bool, error) {
	if _, err := dg.GetListingByHero(ctx, heroID); err == nil {
		return true, nil
	} else if !errors.Is(err, errs.NotFound) {
		return false, errors.Wrap(err, "can't look up listing by hero")
	}
	if _, err := dg.GetArenaByHero(ctx, heroID); err == nil {
		return true, nil
	} else if !errors.Is(err, errs.NotFound) {
		return false, errors.Wrap(err, "can't look up arena by hero")
	}
	return false, nil
}
