package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/internal/postgres"
	"github.com/heroarena/ledger/modules/ledger/datagateway"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/jackc/pgx/v5"
)

// Make sure Repository implements the datagateway contract
var _ datagateway.LedgerDataGateway = (*Repository)(nil)

type Repository struct {
	db postgres.DB
	q  postgres.Queryable
	tx pgx.Tx
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{
		db: db,
		q:  db,
	}
}

// forUpdate appends a row lock inside a transaction so that concurrent
// intents touching the same entity serialize on the first admitted one.
func (r *Repository) forUpdate() string {
	if r.tx != nil {
		return " FOR UPDATE"
	}
	return ""
}

func (r *Repository) CreateHero(ctx context.Context, hero entity.Hero) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO heroes (id, name, image_url, power, owner, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		hero.ID, hero.Name, hero.ImageURL, hero.Power, hero.Owner, hero.CreatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "cannot insert hero")
	}
	return nil
}

func (r *Repository) GetHero(ctx context.Context, id entity.HeroID) (*entity.Hero, error) {
	row := r.q.QueryRow(ctx, `
		SELECT id, name, image_url, power, owner, created_at
		FROM heroes WHERE id = $1`+r.forUpdate(),
		id,
	)
	hero, err := scanHero(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "cannot get hero")
	}
	return hero, nil
}

func (r *Repository) GetHeroesByOwner(ctx context.Context, owner entity.Account) ([]entity.Hero, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, image_url, power, owner, created_at
		FROM heroes WHERE owner = $1
		ORDER BY created_at, id`,
		owner,
	)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get heroes by owner")
	}
	defer rows.Close()
	return scanHeroes(rows)
}

func (r *Repository) SetHeroOwner(ctx context.Context, id entity.HeroID, owner entity.Account) error {
	tag, err := r.q.Exec(ctx, `UPDATE heroes SET owner = $2 WHERE id = $1`, id, owner)
	if err != nil {
		return errors.Wrap(err, "cannot set hero owner")
	}
	if tag.RowsAffected() == 0 {
		return errors.WithStack(errs.NotFound)
	}
	return nil
}

func (r *Repository) CreateListing(ctx context.Context, listing entity.Listing) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO listings (id, hero_id, seller, price, listed_at)
		VALUES ($1, $2, $3, $4, $5)`,
		listing.ID, listing.HeroID, listing.Seller, listing.Price, listing.ListedAt,
	)
	if err != nil {
		return errors.Wrap(err, "cannot insert listing")
	}
	return nil
}

func (r *Repository) GetListing(ctx context.Context, id entity.ListingID) (*entity.Listing, error) {
	row := r.q.QueryRow(ctx, `
		SELECT id, hero_id, seller, price, listed_at
		FROM listings WHERE id = $1`+r.forUpdate(),
		id,
	)
	listing, err := scanListing(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "cannot get listing")
	}
	return listing, nil
}

func (r *Repository) GetListingByHero(ctx context.Context, heroID entity.HeroID) (*entity.Listing, error) {
	row := r.q.QueryRow(ctx, `
		SELECT id, hero_id, seller, price, listed_at
		FROM listings WHERE hero_id = $1`+r.forUpdate(),
		heroID,
	)
	listing, err := scanListing(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "cannot get listing by hero")
	}
	return listing, nil
}

func (r *Repository) GetActiveListings(ctx context.Context) ([]entity.Listing, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, hero_id, seller, price, listed_at
		FROM listings
		ORDER BY listed_at, id`,
	)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get active listings")
	}
	defer rows.Close()
	return scanListings(rows)
}

func (r *Repository) SetListingPrice(ctx context.Context, id entity.ListingID, price int64) error {
	tag, err := r.q.Exec(ctx, `UPDATE listings SET price = $2 WHERE id = $1`, id, price)
	if err != nil {
		return errors.Wrap(err, "cannot set listing price")
	}
	if tag.RowsAffected() == 0 {
		return errors.WithStack(errs.NotFound)
	}
	return nil
}

func (r *Repository) DeleteListing(ctx context.Context, id entity.ListingID) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "cannot delete listing")
	}
	if tag.RowsAffected() == 0 {
		return errors.WithStack(errs.NotFound)
	}
	return nil
}

func (r *Repository) CreateArena(ctx context.Context, arena entity.Arena) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO arenas (id, hero_id, owner, created_at)
		VALUES ($1, $2, $3, $4)`,
		arena.ID, arena.WarriorID, arena.Owner, arena.CreatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "cannot insert arena")
	}
	return nil
}

func (r *Repository) GetArena(ctx context.Context, id entity.ArenaID) (*entity.Arena, error) {
	row := r.q.QueryRow(ctx, `
		SELECT id, hero_id, owner, created_at
		FROM arenas WHERE id = $1`+r.forUpdate(),
		id,
	)
	arena, err := scanArena(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "cannot get arena")
	}
	return arena, nil
}

func (r *Repository) GetArenaByHero(ctx context.Context, heroID entity.HeroID) (*entity.Arena, error) {
	row := r.q.QueryRow(ctx, `
		SELECT id, hero_id, owner, created_at
		FROM arenas WHERE hero_id = $1`+r.forUpdate(),
		heroID,
	)
	arena, err := scanArena(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "cannot get arena by hero")
	}
	return arena, nil
}

func (r *Repository) GetActiveArenas(ctx context.Context) ([]entity.Arena, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, hero_id, owner, created_at
		FROM arenas
		ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get active arenas")
	}
	defer rows.Close()
	return scanArenas(rows)
}

func (r *Repository) DeleteArena(ctx context.Context, id entity.ArenaID) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM arenas WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "cannot delete arena")
	}
	if tag.RowsAffected() == 0 {
		return errors.WithStack(errs.NotFound)
	}
	return nil
}

func (r *Repository) GetAdminHolder(ctx context.Context) (entity.Account, error) {
	var holder entity.Account
	err := r.q.QueryRow(ctx, `SELECT holder FROM admin_capability`+r.forUpdate()).Scan(&holder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errors.WithStack(errs.NotFound)
		}
		return "", errors.Wrap(err, "cannot get admin capability holder")
	}
	return holder, nil
}

func (r *Repository) SetAdminHolder(ctx context.Context, holder entity.Account) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO admin_capability (singleton, holder) VALUES (TRUE, $1)
		ON CONFLICT (singleton) DO UPDATE SET holder = EXCLUDED.holder`,
		holder,
	)
	if err != nil {
		return errors.Wrap(err, "cannot set admin capability holder")
	}
	return nil
}

func (r *Repository) InitAdminHolder(ctx context.Context, holder entity.Account) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO admin_capability (singleton, holder) VALUES (TRUE, $1)
		ON CONFLICT (singleton) DO NOTHING`,
		holder,
	)
	if err != nil {
		return errors.Wrap(err, "cannot init admin capability holder")
	}
	return nil
}

func (r *Repository) GetBalance(ctx context.Context, account entity.Account) (int64, error) {
	var balance int64
	err := r.q.QueryRow(ctx, `SELECT balance FROM balances WHERE account = $1`+r.forUpdate(), account).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "cannot get balance")
	}
	return balance, nil
}

func (r *Repository) AddBalance(ctx context.Context, account entity.Account, delta int64) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO balances (account, balance) VALUES ($1, $2)
		ON CONFLICT (account) DO UPDATE SET balance = balances.balance + EXCLUDED.balance`,
		account, delta,
	)
	if err != nil {
		return errors.Wrap(err, "cannot add balance")
	}
	return nil
}
