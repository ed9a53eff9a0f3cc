package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/modules/ledger/datagateway"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
)

func (u *Usecase) GetHero(ctx context.Context, id entity.HeroID) (*entity.Hero, error) {
	hero, err := u.dg.GetHero(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetHero")
	}
	return hero, nil
}

func (u *Usecase) GetHeroesByOwner(ctx context.Context, owner entity.Account) ([]entity.Hero, error) {
	heroes, err := u.dg.GetHeroesByOwner(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetHeroesByOwner")
	}
	return heroes, nil
}

func (u *Usecase) GetActiveListings(ctx context.Context) ([]entity.Listing, error) {
	listings, err := u.dg.GetActiveListings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetActiveListings")
	}
	return listings, nil
}

func (u *Usecase) GetActiveArenas(ctx context.Context) ([]entity.Arena, error) {
	arenas, err := u.dg.GetActiveArenas(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetActiveArenas")
	}
	return arenas, nil
}

func (u *Usecase) GetAdminHolder(ctx context.Context) (entity.Account, error) {
	holder, err := u.dg.GetAdminHolder(ctx)
	if err != nil {
		return "", errors.Wrap(err, "error during GetAdminHolder")
	}
	return holder, nil
}

func (u *Usecase) GetBalance(ctx context.Context, account entity.Account) (int64, error) {
	balance, err := u.dg.GetBalance(ctx, account)
	if err != nil {
		return 0, errors.Wrap(err, "error during GetBalance")
	}
	return balance, nil
}

func (u *Usecase) GetEvents(ctx context.Context, params datagateway.GetEventsParams) ([]entity.Event, error) {
	events, err := u.dg.GetEvents(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetEvents")
	}
	return events, nil
}
