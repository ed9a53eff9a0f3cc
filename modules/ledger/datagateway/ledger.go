package datagateway

import (
	"context"
	"time"

	"github.com/heroarena/ledger/modules/ledger/internal/entity"
)

// LedgerDataGateway is the storage contract for the marketplace & arena
// ledger. Get* methods return errs.NotFound (possibly wrapped) when the
// entity does not exist.
//
// Implementations must guarantee that all writes performed through a
// LedgerDataGatewayWithTx become visible atomically on Commit, and that
// entities read inside a transaction are protected from concurrent writers
// until the transaction ends (single-writer-at-a-time per entity).
type LedgerDataGateway interface {
	BeginLedgerTx(ctx context.Context) (LedgerDataGatewayWithTx, error)

	CreateHero(ctx context.Context, hero entity.Hero) error
	GetHero(ctx context.Context, id entity.HeroID) (*entity.Hero, error)
	GetHeroesByOwner(ctx context.Context, owner entity.Account) ([]entity.Hero, error)
	SetHeroOwner(ctx context.Context, id entity.HeroID, owner entity.Account) error

	CreateListing(ctx context.Context, listing entity.Listing) error
	GetListing(ctx context.Context, id entity.ListingID) (*entity.Listing, error)
	GetListingByHero(ctx context.Context, heroID entity.HeroID) (*entity.Listing, error)
	GetActiveListings(ctx context.Context) ([]entity.Listing, error)
	SetListingPrice(ctx context.Context, id entity.ListingID, price int64) error
	DeleteListing(ctx context.Context, id entity.ListingID) error

	CreateArena(ctx context.Context, arena entity.Arena) error
	GetArena(ctx context.Context, id entity.ArenaID) (*entity.Arena, error)
	GetArenaByHero(ctx context.Context, heroID entity.HeroID) (*entity.Arena, error)
	GetActiveArenas(ctx context.Context) ([]entity.Arena, error)
	DeleteArena(ctx context.Context, id entity.ArenaID) error

	GetAdminHolder(ctx context.Context) (entity.Account, error)
	SetAdminHolder(ctx context.Context, holder entity.Account) error
	// InitAdminHolder sets the admin capability holder only if none exists yet.
	InitAdminHolder(ctx context.Context, holder entity.Account) error

	GetBalance(ctx context.Context, account entity.Account) (int64, error)
	AddBalance(ctx context.Context, account entity.Account, delta int64) error

	// AddEvent assigns the next emission sequence number and appends the event.
	AddEvent(ctx context.Context, event entity.Event) error
	GetEvents(ctx context.Context, params GetEventsParams) ([]entity.Event, error)
}

type LedgerDataGatewayWithTx interface {
	LedgerDataGateway
	Tx
}

// GetEventsParams filters the event log. Zero values mean "no filter".
// Results are ordered descending by (timestamp, sequence).
type GetEventsParams struct {
	Kind  entity.EventKind
	From  time.Time
	To    time.Time
	Limit int32 // default 50
}
