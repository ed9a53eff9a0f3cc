package memory

import (
	"maps"
	"slices"
	"sync"

	"github.com/heroarena/ledger/modules/ledger/internal/entity"
)

// state is one immutable-once-committed snapshot of the whole ledger.
// Transactions mutate a private clone and swap it in on commit, so readers
// never observe a partial transition.
type state struct {
	heroes        map[entity.HeroID]entity.Hero
	listings      map[entity.ListingID]entity.Listing
	listingByHero map[entity.HeroID]entity.ListingID
	arenas        map[entity.ArenaID]entity.Arena
	arenaByHero   map[entity.HeroID]entity.ArenaID
	balances      map[entity.Account]int64
	admin         entity.Account
	adminSet      bool
	events        []entity.Event
	sequence      int64
}

func newState() *state {
	return &state{
		heroes:        make(map[entity.HeroID]entity.Hero),
		listings:      make(map[entity.ListingID]entity.Listing),
		listingByHero: make(map[entity.HeroID]entity.ListingID),
		arenas:        make(map[entity.ArenaID]entity.Arena),
		arenaByHero:   make(map[entity.HeroID]entity.ArenaID),
		balances:      make(map[entity.Account]int64),
	}
}

func (s *state) clone() *state {
	return &state{
		heroes:        maps.Clone(s.heroes),
		listings:      maps.Clone(s.listings),
		listingByHero: maps.Clone(s.listingByHero),
		arenas:        maps.Clone(s.arenas),
		arenaByHero:   maps.Clone(s.arenaByHero),
		balances:      maps.Clone(s.balances),
		admin:         s.admin,
		adminSet:      s.adminSet,
		events:        slices.Clone(s.events),
		sequence:      s.sequence,
	}
}

// store holds the committed state shared by all Repository handles.
// writer serializes transactions (single writer at a time); mu guards the
// committed pointer for concurrent readers.
type store struct {
	mu        sync.RWMutex
	writer    sync.Mutex
	committed *state
}

func (s *store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.committed.clone()
}
