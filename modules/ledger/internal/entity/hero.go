package entity

import "time"

// Account is an opaque account identifier (address).
type Account string

// HeroID is the unique identity of a hero, assigned at mint and immutable.
type HeroID string

// Hero is a named, owned, power-rated in-game asset. The hero registry is the
// single source of truth for Owner; escrow records never change it directly,
// they only block transfers while active.
type Hero struct {
	ID        HeroID
	Name      string
	ImageURL  string
	Power     int64
	Owner     Account
	CreatedAt time.Time
}
