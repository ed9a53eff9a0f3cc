package entity

import "time"

// ListingID is the unique identity of a marketplace listing.
type ListingID string

// Listing is an escrow record offering a hero for sale at a fixed price.
// At most one active listing exists per hero.
type Listing struct {
	ID       ListingID
	HeroID   HeroID
	Seller   Account
	Price    int64 // smallest currency unit
	ListedAt time.Time
}
