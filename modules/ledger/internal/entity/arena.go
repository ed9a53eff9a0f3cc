package entity

import "time"

// ArenaID is the unique identity of an arena.
type ArenaID string

// Arena is an escrow record offering a hero as a standing battle challenge.
// An arena is single-use: it is either awaiting a challenger or gone.
type Arena struct {
	ID        ArenaID
	Owner     Account
	WarriorID HeroID // the escrowed defender
	CreatedAt time.Time
}

// BattleOutcome reports the result of a resolved battle.
type BattleOutcome struct {
	ArenaID      ArenaID
	WinnerHeroID HeroID
	LoserHeroID  HeroID
	Winner       Account
}
