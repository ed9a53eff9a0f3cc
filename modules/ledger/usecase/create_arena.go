package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
)

// CreateArena escrows the owner's hero as a standing battle challenge and
// emits ArenaCreated.
func (u *Usecase) CreateArena(ctx context.Context, heroID entity.HeroID, owner entity.Account) (*entity.Arena, error) {
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
	if hero.Owner != owner {
		return nil, errors.Wrapf(errs.NotOwner, "hero %q is not owned by %q", heroID, owner)
	}
	escrowed, err := heroEscrowed(ctx, tx, heroID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if escrowed {
		return nil, errors.Wrapf(errs.AlreadyEscrowed, "hero %q already has an active listing or arena", heroID)
	}

	now := u.now()
	arena := entity.Arena{
		ID:        entity.ArenaID(newID()),
		Owner:     owner,
		WarriorID: heroID,
		CreatedAt: now,
	}
	if err := tx.CreateArena(ctx, arena); err != nil {
		return nil, errors.Wrap(err, "can't create arena")
	}
	if err := tx.AddEvent(ctx, entity.Event{
		Kind:      entity.EventArenaCreated,
		Timestamp: now,
		HeroID:    heroID,
		ArenaID:   arena.ID,
		Actor:     owner,
	}); err != nil {
		return nil, errors.Wrap(err, "can't append event")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "can't commit transaction")
	}
	return &arena, nil
}
