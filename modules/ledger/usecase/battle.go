package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
)

// Battle resolves an open arena against the challenger's hero and destroys
// the arena. The hero with strictly greater power wins; the defender wins
// ties. The loser's hero transfers to the winner's account. The whole
// transition commits atomically; a second battle against the same arena fails
// with NotFound. Emits ArenaCompleted.
func (u *Usecase) Battle(ctx context.Context, arenaID entity.ArenaID, challengerHeroID entity.HeroID, challenger entity.Account) (*entity.BattleOutcome, error) {
	tx, err := u.dg.BeginLedgerTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "can't begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	arena, err := tx.GetArena(ctx, arenaID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, errors.Wrapf(errs.NotFound, "arena %q", arenaID)
		}
		return nil, errors.Wrap(err, "can't get arena")
	}
	challengerHero, err := tx.GetHero(ctx, challengerHeroID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, errors.Wrapf(errs.NotFound, "hero %q", challengerHeroID)
		}
		return nil, errors.Wrap(err, "can't get challenger hero")
	}
	if challengerHero.Owner != challenger {
		return nil, errors.Wrapf(errs.NotOwner, "hero %q is not owned by %q", challengerHeroID, challenger)
	}
	defender, err := tx.GetHero(ctx, arena.WarriorID)
	if err != nil {
		return nil, errors.Wrap(err, "can't get defending hero")
	}
	if defender.Owner == challenger {
		return nil, errors.Wrapf(errs.SelfChallenge, "%q already owns the defending hero", challenger)
	}
	escrowed, err := heroEscrowed(ctx, tx, challengerHeroID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if escrowed {
		return nil, errors.Wrapf(errs.AlreadyEscrowed, "hero %q already has an active listing or arena", challengerHeroID)
	}

	// Deterministic resolution: strictly greater power wins, defender wins ties.
	winner, loser := defender, challengerHero
	if challengerHero.Power > defender.Power {
		winner, loser = challengerHero, defender
	}

	if err := tx.SetHeroOwner(ctx, loser.ID, winner.Owner); err != nil {
		return nil, errors.Wrap(err, "can't transfer losing hero")
	}
	if err := tx.DeleteArena(ctx, arenaID); err != nil {
		return nil, errors.Wrap(err, "can't delete arena")
	}
	if err := tx.AddEvent(ctx, entity.Event{
		Kind:         entity.EventArenaCompleted,
		Timestamp:    u.now(),
		ArenaID:      arenaID,
		Actor:        challenger,
		Counterparty: arena.Owner,
		WinnerHeroID: winner.ID,
		LoserHeroID:  loser.ID,
	}); err != nil {
		return nil, errors.Wrap(err, "can't append event")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "can't commit transaction")
	}
	return &entity.BattleOutcome{
		ArenaID:      arenaID,
		WinnerHeroID: winner.ID,
		LoserHeroID:  loser.ID,
		Winner:       winner.Owner,
	}, nil
}
