package entity

import "time"

// EventKind identifies a kind of committed state transition.
type EventKind string

const (
	EventHeroCreated      = EventKind("HeroCreated")
	EventHeroListed       = EventKind("HeroListed")
	EventHeroBought       = EventKind("HeroBought")
	EventHeroDelisted     = EventKind("HeroDelisted")
	EventPriceChanged     = EventKind("PriceChanged")
	EventArenaCreated     = EventKind("ArenaCreated")
	EventArenaCompleted   = EventKind("ArenaCompleted")
	EventAdminTransferred = EventKind("AdminTransferred")
)

// Event is an immutable record of one committed state transition. Ordering is
// by Timestamp; Sequence breaks ties by emission order. Fields not relevant to
// a kind are left zero.
type Event struct {
	Sequence  int64
	Kind      EventKind
	Timestamp time.Time

	HeroID       HeroID
	ListingID    ListingID
	ArenaID      ArenaID
	Actor        Account // account that submitted the intent
	Counterparty Account // seller on buy, recipient on admin transfer
	Price        int64   // listing price on HeroListed/HeroBought/PriceChanged
	WinnerHeroID HeroID  // ArenaCompleted only
	LoserHeroID  HeroID  // ArenaCompleted only
}
