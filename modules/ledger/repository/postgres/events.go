package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/modules/ledger/datagateway"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
)

func (r *Repository) AddEvent(ctx context.Context, event entity.Event) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO events (kind, timestamp, hero_id, listing_id, arena_id, actor, counterparty, price, winner_hero_id, loser_hero_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		event.Kind, event.Timestamp, event.HeroID, event.ListingID, event.ArenaID,
		event.Actor, event.Counterparty, event.Price, event.WinnerHeroID, event.LoserHeroID,
	)
	if err != nil {
		return errors.Wrap(err, "cannot insert event")
	}
	return nil
}

func (r *Repository) GetEvents(ctx context.Context, params datagateway.GetEventsParams) ([]entity.Event, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.q.Query(ctx, `
		SELECT sequence, kind, timestamp, hero_id, listing_id, arena_id, actor, counterparty, price, winner_hero_id, loser_hero_id
		FROM events
		WHERE ($1 = '' OR kind = $1)
		  AND ($2::timestamptz IS NULL OR timestamp >= $2)
		  AND ($3::timestamptz IS NULL OR timestamp <= $3)
		ORDER BY timestamp DESC, sequence DESC
		LIMIT $4`,
		params.Kind, nullableTime(params.From), nullableTime(params.To), limit,
	)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get events")
	}
	defer rows.Close()
	return scanEvents(rows)
}
