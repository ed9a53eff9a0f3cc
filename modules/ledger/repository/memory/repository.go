package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/datagateway"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
)

// Make sure Repository implements the datagateway contract
var _ datagateway.LedgerDataGateway = (*Repository)(nil)

// Repository is the in-process ledger store. The zero writer cost makes it the
// default backend; it enforces the same commit-or-nothing contract as the
// postgres backend.
type Repository struct {
	store   *store
	pending *state // non-nil while inside a transaction
}

func NewRepository() *Repository {
	return &Repository{
		store: &store{committed: newState()},
	}
}

// read runs fn against the transaction state if one is active, otherwise
// against the committed state under a read lock.
func (r *Repository) read(fn func(*state) error) error {
	if r.pending != nil {
		return fn(r.pending)
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return fn(r.store.committed)
}

// update runs fn against the transaction state if one is active, otherwise as
// a standalone single-write transaction.
func (r *Repository) update(fn func(*state) error) error {
	if r.pending != nil {
		return fn(r.pending)
	}
	r.store.writer.Lock()
	defer r.store.writer.Unlock()
	next := r.store.snapshot()
	if err := fn(next); err != nil {
		return err
	}
	r.store.mu.Lock()
	r.store.committed = next
	r.store.mu.Unlock()
	return nil
}

func (r *Repository) CreateHero(_ context.Context, hero entity.Hero) error {
	return r.update(func(s *state) error {
		if _, ok := s.heroes[hero.ID]; ok {
			return errors.Wrapf(errs.InternalError, "hero %q already exists", hero.ID)
		}
		s.heroes[hero.ID] = hero
		return nil
	})
}

func (r *Repository) GetHero(_ context.Context, id entity.HeroID) (*entity.Hero, error) {
	var hero entity.Hero
	err := r.read(func(s *state) error {
		h, ok := s.heroes[id]
		if !ok {
			return errors.WithStack(errs.NotFound)
		}
		hero = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

func (r *Repository) GetHeroesByOwner(_ context.Context, owner entity.Account) ([]entity.Hero, error) {
	var heroes []entity.Hero
	err := r.read(func(s *state) error {
		for _, h := range s.heroes {
			if h.Owner == owner {
				heroes = append(heroes, h)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(heroes, func(a, b entity.Hero) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(string(a.ID), string(b.ID))
	})
	return heroes, nil
}

func (r *Repository) SetHeroOwner(_ context.Context, id entity.HeroID, owner entity.Account) error {
	return r.update(func(s *state) error {
		hero, ok := s.heroes[id]
		if !ok {
			return errors.WithStack(errs.NotFound)
		}
		hero.Owner = owner
		s.heroes[id] = hero
		return nil
	})
}

func (r *Repository) CreateListing(_ context.Context, listing entity.Listing) error {
	return r.update(func(s *state) error {
		if _, ok := s.listingByHero[listing.HeroID]; ok {
			return errors.Wrapf(errs.InternalError, "hero %q already listed", listing.HeroID)
		}
		s.listings[listing.ID] = listing
		s.listingByHero[listing.HeroID] = listing.ID
		return nil
	})
}

func (r *Repository) GetListing(_ context.Context, id entity.ListingID) (*entity.Listing, error) {
	var listing entity.Listing
	err := r.read(func(s *state) error {
		l, ok := s.listings[id]
		if !ok {
			return errors.WithStack(errs.NotFound)
		}
		listing = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *Repository) GetListingByHero(_ context.Context, heroID entity.HeroID) (*entity.Listing, error) {
	var listing entity.Listing
	err := r.read(func(s *state) error {
		id, ok := s.listingByHero[heroID]
		if !ok {
			return errors.WithStack(errs.NotFound)
		}
		listing = s.listings[id]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *Repository) GetActiveListings(_ context.Context) ([]entity.Listing, error) {
	var listings []entity.Listing
	err := r.read(func(s *state) error {
		for _, l := range s.listings {
			listings = append(listings, l)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(listings, func(a, b entity.Listing) int {
		if c := a.ListedAt.Compare(b.ListedAt); c != 0 {
			return c
		}
		return strings.Compare(string(a.ID), string(b.ID))
	})
	return listings, nil
}

func (r *Repository) SetListingPrice(_ context.Context, id entity.ListingID, price int64) error {
	return r.update(func(s *state) error {
		listing, ok := s.listings[id]
		if !ok {
			return errors.WithStack(errs.NotFound)
		}
		listing.Price = price
		s.listings[id] = listing
		return nil
	})
}

func (r *Repository) DeleteListing(_ context.Context, id entity.ListingID) error {
	return r.update(func(s *state) error {
		listing, ok := s.listings[id]
		if !ok {
			return errors.WithStack(errs.NotFound)
		}
		delete(s.listings, id)
		delete(s.listingByHero, listing.HeroID)
		return nil
	})
}

func (r *Repository) CreateArena(_ context.Context, arena entity.Arena) error {
	return r.update(func(s *state) error {
		if _, ok := s.arenaByHero[arena.WarriorID]; ok {
			return errors.Wrapf(errs.InternalError, "hero %q already defends an arena", arena.WarriorID)
		}
		s.arenas[arena.ID] = arena
		s.arenaByHero[arena.WarriorID] = arena.ID
		return nil
	})
}

func (r *Repository) GetArena(_ context.Context, id entity.ArenaID) (*entity.Arena, error) {
	var arena entity.Arena
	err := r.read(func(s *state) error {
		a, ok := s.arenas[id]
		if !ok {
			return errors.WithStack(errs.NotFound)
		}
		arena = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &arena, nil
}

func (r *Repository) GetArenaByHero(_ context.Context, heroID entity.HeroID) (*entity.Arena, error) {
	var arena entity.Arena
	err := r.read(func(s *state) error {
		id, ok := s.arenaByHero[heroID]
		if !ok {
			return errors.WithStack(errs.NotFound)
		}
		arena = s.arenas[id]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &arena, nil
}

func (r *Repository) GetActiveArenas(_ context.Context) ([]entity.Arena, error) {
	var arenas []entity.Arena
	err := r.read(func(s *state) error {
		for _, a := range s.arenas {
			arenas = append(arenas, a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(arenas, func(a, b entity.Arena) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(string(a.ID), string(b.ID))
	})
	return arenas, nil
}

func (r *Repository) DeleteArena(_ context.Context, id entity.ArenaID) error {
	return r.update(func(s *state) error {
		arena, ok := s.arenas[id]
		if !ok {
			return errors.WithStack(errs.NotFound)
		}
		delete(s.arenas, id)
		delete(s.arenaByHero, arena.WarriorID)
		return nil
	})
}

func (r *Repository) GetAdminHolder(_ context.Context) (entity.Account, error) {
	var holder entity.Account
	err := r.read(func(s *state) error {
		if !s.adminSet {
			return errors.WithStack(errs.NotFound)
		}
		holder = s.admin
		return nil
	})
	if err != nil {
		return "", err
	}
	return holder, nil
}

func (r *Repository) SetAdminHolder(_ context.Context, holder entity.Account) error {
	return r.update(func(s *state) error {
		s.admin = holder
		s.adminSet = true
		return nil
	})
}

func (r *Repository) InitAdminHolder(_ context.Context, holder entity.Account) error {
	return r.update(func(s *state) error {
		if s.adminSet {
			return nil
		}
		s.admin = holder
		s.adminSet = true
		return nil
	})
}

func (r *Repository) GetBalance(_ context.Context, account entity.Account) (int64, error) {
	var balance int64
	err := r.read(func(s *state) error {
		balance = s.balances[account]
		return nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *Repository) AddBalance(_ context.Context, account entity.Account, delta int64) error {
	return r.update(func(s *state) error {
		next := s.balances[account] + delta
		if next < 0 {
			return errors.Wrapf(errs.InternalError, "balance of %q would become negative", account)
		}
		s.balances[account] = next
		return nil
	})
}

func (r *Repository) AddEvent(_ context.Context, event entity.Event) error {
	return r.update(func(s *state) error {
		s.sequence++
		event.Sequence = s.sequence
		s.events = append(s.events, event)
		return nil
	})
}

func (r *Repository) GetEvents(_ context.Context, params datagateway.GetEventsParams) ([]entity.Event, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	var events []entity.Event
	err := r.read(func(s *state) error {
		for _, e := range s.events {
			if params.Kind != "" && e.Kind != params.Kind {
				continue
			}
			if !params.From.IsZero() && e.Timestamp.Before(params.From) {
				continue
			}
			if !params.To.IsZero() && e.Timestamp.After(params.To) {
				continue
			}
			events = append(events, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// descending by (timestamp, sequence)
	slices.SortFunc(events, func(a, b entity.Event) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		switch {
		case b.Sequence > a.Sequence:
			return 1
		case b.Sequence < a.Sequence:
			return -1
		}
		return 0
	})
	if int32(len(events)) > limit {
		events = events[:limit]
	}
	return events, nil
}
