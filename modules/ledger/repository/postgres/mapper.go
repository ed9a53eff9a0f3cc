package postgres

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/jackc/pgx/v5"
)

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func scanHero(row pgx.Row) (*entity.Hero, error) {
	var hero entity.Hero
	if err := row.Scan(&hero.ID, &hero.Name, &hero.ImageURL, &hero.Power, &hero.Owner, &hero.CreatedAt); err != nil {
		return nil, err
	}
	return &hero, nil
}

func scanHeroes(rows pgx.Rows) ([]entity.Hero, error) {
	var heroes []entity.Hero
	for rows.Next() {
		hero, err := scanHero(rows)
		if err != nil {
			return nil, errors.Wrap(err, "cannot scan hero row")
		}
		heroes = append(heroes, *hero)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating hero rows")
	}
	return heroes, nil
}

func scanListing(row pgx.Row) (*entity.Listing, error) {
	var listing entity.Listing
	if err := row.Scan(&listing.ID, &listing.HeroID, &listing.Seller, &listing.Price, &listing.ListedAt); err != nil {
		return nil, err
	}
	return &listing, nil
}

func scanListings(rows pgx.Rows) ([]entity.Listing, error) {
	var listings []entity.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, errors.Wrap(err, "cannot scan listing row")
		}
		listings = append(listings, *listing)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating listing rows")
	}
	return listings, nil
}

func scanArena(row pgx.Row) (*entity.Arena, error) {
	var arena entity.Arena
	if err := row.Scan(&arena.ID, &arena.WarriorID, &arena.Owner, &arena.CreatedAt); err != nil {
		return nil, err
	}
	return &arena, nil
}

func scanArenas(rows pgx.Rows) ([]entity.Arena, error) {
	var arenas []entity.Arena
	for rows.Next() {
		arena, err := scanArena(rows)
		if err != nil {
			return nil, errors.Wrap(err, "cannot scan arena row")
		}
		arenas = append(arenas, *arena)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating arena rows")
	}
	return arenas, nil
}

func scanEvents(rows pgx.Rows) ([]entity.Event, error) {
	var events []entity.Event
	for rows.Next() {
		var e entity.Event
		if err := rows.Scan(&e.Sequence, &e.Kind, &e.Timestamp, &e.HeroID, &e.ListingID, &e.ArenaID,
			&e.Actor, &e.Counterparty, &e.Price, &e.WinnerHeroID, &e.LoserHeroID); err != nil {
			return nil, errors.Wrap(err, "cannot scan event row")
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating event rows")
	}
	return events, nil
}
