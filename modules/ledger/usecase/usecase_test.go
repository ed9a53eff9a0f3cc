package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/datagateway"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/heroarena/ledger/modules/ledger/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUsecase(t *testing.T) *Usecase {
	t.Helper()
	u := New(memory.NewRepository())
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	var calls int
	// deterministic, strictly increasing timestamps
	u.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}
	return u
}

func mustMint(t *testing.T, u *Usecase, owner entity.Account, name string, power int64) *entity.Hero {
	t.Helper()
	hero, err := u.MintHero(context.Background(), owner, name, "https://img.example/"+name, power)
	require.NoError(t, err)
	return hero
}

func TestMintHero(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		u := newTestUsecase(t)
		hero, err := u.MintHero(ctx, "alice", "Slasher", "https://img.example/slasher", 80)
		require.NoError(t, err)
		assert.NotEmpty(t, hero.ID)
		assert.Equal(t, entity.Account("alice"), hero.Owner)
		assert.Equal(t, int64(80), hero.Power)

		got, err := u.GetHero(ctx, hero.ID)
		require.NoError(t, err)
		assert.Equal(t, *hero, *got)

		events, err := u.GetEvents(ctx, datagateway.GetEventsParams{})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, entity.EventHeroCreated, events[0].Kind)
		assert.Equal(t, hero.ID, events[0].HeroID)
		assert.Equal(t, entity.Account("alice"), events[0].Actor)
	})

	t.Run("distinct ids", func(t *testing.T) {
		u := newTestUsecase(t)
		a := mustMint(t, u, "alice", "A", 10)
		b := mustMint(t, u, "alice", "A", 10)
		assert.NotEqual(t, a.ID, b.ID)
	})

	testInvalid := func(name string, fn func(u *Usecase) error) {
		t.Run(name, func(t *testing.T) {
			u := newTestUsecase(t)
			err := fn(u)
			assert.ErrorIs(t, err, errs.InvalidInput)
		})
	}
	testInvalid("empty owner", func(u *Usecase) error {
		_, err := u.MintHero(ctx, "", "A", "https://img", 10)
		return err
	})
	testInvalid("empty name", func(u *Usecase) error {
		_, err := u.MintHero(ctx, "alice", "", "https://img", 10)
		return err
	})
	testInvalid("empty image url", func(u *Usecase) error {
		_, err := u.MintHero(ctx, "alice", "A", "", 10)
		return err
	})
	testInvalid("zero power", func(u *Usecase) error {
		_, err := u.MintHero(ctx, "alice", "A", "https://img", 0)
		return err
	})
	testInvalid("negative power", func(u *Usecase) error {
		_, err := u.MintHero(ctx, "alice", "A", "https://img", -5)
		return err
	})
}

func TestTransferHero(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		require.NoError(t, u.TransferHero(ctx, hero.ID, "alice", "bob"))

		got, err := u.GetHero(ctx, hero.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.Account("bob"), got.Owner)
	})

	t.Run("hero not found", func(t *testing.T) {
		u := newTestUsecase(t)
		err := u.TransferHero(ctx, "missing", "alice", "bob")
		assert.ErrorIs(t, err, errs.NotFound)
	})

	t.Run("not owner", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		err := u.TransferHero(ctx, hero.ID, "mallory", "bob")
		assert.ErrorIs(t, err, errs.NotOwner)
	})

	t.Run("blocked while listed", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		_, err := u.ListHero(ctx, hero.ID, "alice", 100)
		require.NoError(t, err)

		err = u.TransferHero(ctx, hero.ID, "alice", "bob")
		assert.ErrorIs(t, err, errs.Escrowed)
	})

	t.Run("blocked while in arena", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		_, err := u.CreateArena(ctx, hero.ID, "alice")
		require.NoError(t, err)

		err = u.TransferHero(ctx, hero.ID, "alice", "bob")
		assert.ErrorIs(t, err, errs.Escrowed)
	})
}

func TestListHero(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		listing, err := u.ListHero(ctx, hero.ID, "alice", 500)
		require.NoError(t, err)
		assert.Equal(t, hero.ID, listing.HeroID)
		assert.Equal(t, int64(500), listing.Price)

		// owner of record does not change while escrowed
		got, err := u.GetHero(ctx, hero.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.Account("alice"), got.Owner)

		listings, err := u.GetActiveListings(ctx)
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, listing.ID, listings[0].ID)
	})

	t.Run("non-positive price", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		_, err := u.ListHero(ctx, hero.ID, "alice", 0)
		assert.ErrorIs(t, err, errs.InvalidInput)
	})

	t.Run("not owner", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		_, err := u.ListHero(ctx, hero.ID, "mallory", 100)
		assert.ErrorIs(t, err, errs.NotOwner)
	})

	t.Run("already listed", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		_, err := u.ListHero(ctx, hero.ID, "alice", 100)
		require.NoError(t, err)
		_, err = u.ListHero(ctx, hero.ID, "alice", 200)
		assert.ErrorIs(t, err, errs.AlreadyEscrowed)
	})

	t.Run("already in arena", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		_, err := u.CreateArena(ctx, hero.ID, "alice")
		require.NoError(t, err)
		_, err = u.ListHero(ctx, hero.ID, "alice", 100)
		assert.ErrorIs(t, err, errs.AlreadyEscrowed)
	})
}

func TestBuyHero(t *testing.T) {
	ctx := context.Background()

	t.Run("mint list buy scenario", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		listing, err := u.ListHero(ctx, hero.ID, "alice", 300)
		require.NoError(t, err)

		_, err = u.Deposit(ctx, "bob", 1000)
		require.NoError(t, err)

		require.NoError(t, u.BuyHero(ctx, listing.ID, "bob", 300))

		got, err := u.GetHero(ctx, hero.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.Account("bob"), got.Owner)

		bobBalance, err := u.GetBalance(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, int64(700), bobBalance)

		aliceBalance, err := u.GetBalance(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(300), aliceBalance)

		listings, err := u.GetActiveListings(ctx)
		require.NoError(t, err)
		assert.Empty(t, listings)

		events, err := u.GetEvents(ctx, datagateway.GetEventsParams{Kind: entity.EventHeroBought})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, entity.Account("bob"), events[0].Actor)
		assert.Equal(t, entity.Account("alice"), events[0].Counterparty)
		assert.Equal(t, int64(300), events[0].Price)
	})

	t.Run("charges exactly the price on overpayment", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		listing, err := u.ListHero(ctx, hero.ID, "alice", 300)
		require.NoError(t, err)
		_, err = u.Deposit(ctx, "bob", 1000)
		require.NoError(t, err)

		require.NoError(t, u.BuyHero(ctx, listing.ID, "bob", 999))

		bobBalance, err := u.GetBalance(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, int64(700), bobBalance)
	})

	t.Run("listing not found", func(t *testing.T) {
		u := newTestUsecase(t)
		err := u.BuyHero(ctx, "missing", "bob", 100)
		assert.ErrorIs(t, err, errs.NotFound)
	})

	t.Run("payment below price", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		listing, err := u.ListHero(ctx, hero.ID, "alice", 300)
		require.NoError(t, err)
		_, err = u.Deposit(ctx, "bob", 1000)
		require.NoError(t, err)

		err = u.BuyHero(ctx, listing.ID, "bob", 299)
		assert.ErrorIs(t, err, errs.InsufficientPayment)

		// nothing moved
		got, err := u.GetHero(ctx, hero.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.Account("alice"), got.Owner)
		bobBalance, err := u.GetBalance(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, int64(1000), bobBalance)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		listing, err := u.ListHero(ctx, hero.ID, "alice", 300)
		require.NoError(t, err)
		_, err = u.Deposit(ctx, "bob", 100)
		require.NoError(t, err)

		err = u.BuyHero(ctx, listing.ID, "bob", 300)
		assert.ErrorIs(t, err, errs.InsufficientPayment)
	})

	t.Run("second buy fails", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		listing, err := u.ListHero(ctx, hero.ID, "alice", 300)
		require.NoError(t, err)
		_, err = u.Deposit(ctx, "bob", 1000)
		require.NoError(t, err)
		_, err = u.Deposit(ctx, "carol", 1000)
		require.NoError(t, err)

		require.NoError(t, u.BuyHero(ctx, listing.ID, "bob", 300))
		err = u.BuyHero(ctx, listing.ID, "carol", 300)
		assert.ErrorIs(t, err, errs.NotFound)
	})
}

func TestAdminCapability(t *testing.T) {
	ctx := context.Background()

	seedAdmin := func(t *testing.T, u *Usecase, holder entity.Account) {
		t.Helper()
		require.NoError(t, u.dg.InitAdminHolder(ctx, holder))
	}

	t.Run("holder query", func(t *testing.T) {
		u := newTestUsecase(t)
		seedAdmin(t, u, "admin")
		holder, err := u.GetAdminHolder(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.Account("admin"), holder)
	})

	t.Run("delist requires capability", func(t *testing.T) {
		u := newTestUsecase(t)
		seedAdmin(t, u, "admin")
		hero := mustMint(t, u, "alice", "A", 10)
		listing, err := u.ListHero(ctx, hero.ID, "alice", 100)
		require.NoError(t, err)

		err = u.DelistHero(ctx, listing.ID, "alice")
		assert.ErrorIs(t, err, errs.Unauthorized)

		require.NoError(t, u.DelistHero(ctx, listing.ID, "admin"))
		listings, err := u.GetActiveListings(ctx)
		require.NoError(t, err)
		assert.Empty(t, listings)

		// delisted hero is transferable again
		require.NoError(t, u.TransferHero(ctx, hero.ID, "alice", "bob"))
	})

	t.Run("change price requires capability", func(t *testing.T) {
		u := newTestUsecase(t)
		seedAdmin(t, u, "admin")
		hero := mustMint(t, u, "alice", "A", 10)
		listing, err := u.ListHero(ctx, hero.ID, "alice", 100)
		require.NoError(t, err)

		err = u.ChangePrice(ctx, listing.ID, 250, "alice")
		assert.ErrorIs(t, err, errs.Unauthorized)

		require.NoError(t, u.ChangePrice(ctx, listing.ID, 250, "admin"))
		listings, err := u.GetActiveListings(ctx)
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, int64(250), listings[0].Price)
	})

	t.Run("change price rejects non-positive", func(t *testing.T) {
		u := newTestUsecase(t)
		seedAdmin(t, u, "admin")
		hero := mustMint(t, u, "alice", "A", 10)
		listing, err := u.ListHero(ctx, hero.ID, "alice", 100)
		require.NoError(t, err)

		err = u.ChangePrice(ctx, listing.ID, 0, "admin")
		assert.ErrorIs(t, err, errs.InvalidInput)
	})

	t.Run("handover moves authority", func(t *testing.T) {
		u := newTestUsecase(t)
		seedAdmin(t, u, "admin")
		hero := mustMint(t, u, "alice", "A", 10)
		listing, err := u.ListHero(ctx, hero.ID, "alice", 100)
		require.NoError(t, err)

		require.NoError(t, u.TransferAdmin(ctx, "admin", "bob"))

		holder, err := u.GetAdminHolder(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.Account("bob"), holder)

		// previous holder lost the capability
		err = u.DelistHero(ctx, listing.ID, "admin")
		assert.ErrorIs(t, err, errs.Unauthorized)
		require.NoError(t, u.DelistHero(ctx, listing.ID, "bob"))
	})

	t.Run("transfer by non-holder", func(t *testing.T) {
		u := newTestUsecase(t)
		seedAdmin(t, u, "admin")
		err := u.TransferAdmin(ctx, "mallory", "mallory")
		assert.ErrorIs(t, err, errs.Unauthorized)
	})
}

func TestArenaAndBattle(t *testing.T) {
	ctx := context.Background()

	t.Run("create arena", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		arena, err := u.CreateArena(ctx, hero.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, hero.ID, arena.WarriorID)
		assert.Equal(t, entity.Account("alice"), arena.Owner)

		arenas, err := u.GetActiveArenas(ctx)
		require.NoError(t, err)
		require.Len(t, arenas, 1)
		assert.Equal(t, arena.ID, arenas[0].ID)
	})

	t.Run("create arena not owner", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		_, err := u.CreateArena(ctx, hero.ID, "mallory")
		assert.ErrorIs(t, err, errs.NotOwner)
	})

	t.Run("create arena while listed", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		_, err := u.ListHero(ctx, hero.ID, "alice", 100)
		require.NoError(t, err)
		_, err = u.CreateArena(ctx, hero.ID, "alice")
		assert.ErrorIs(t, err, errs.AlreadyEscrowed)
	})

	t.Run("challenger wins with greater power", func(t *testing.T) {
		u := newTestUsecase(t)
		defender := mustMint(t, u, "alice", "Defender", 80)
		challenger := mustMint(t, u, "bob", "Challenger", 100)
		arena, err := u.CreateArena(ctx, defender.ID, "alice")
		require.NoError(t, err)

		outcome, err := u.Battle(ctx, arena.ID, challenger.ID, "bob")
		require.NoError(t, err)
		assert.Equal(t, challenger.ID, outcome.WinnerHeroID)
		assert.Equal(t, defender.ID, outcome.LoserHeroID)
		assert.Equal(t, entity.Account("bob"), outcome.Winner)

		// losing hero transfers to the winner
		got, err := u.GetHero(ctx, defender.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.Account("bob"), got.Owner)

		// challenger hero stays put
		got, err = u.GetHero(ctx, challenger.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.Account("bob"), got.Owner)

		// arena is consumed
		arenas, err := u.GetActiveArenas(ctx)
		require.NoError(t, err)
		assert.Empty(t, arenas)
	})

	t.Run("defender wins with greater power", func(t *testing.T) {
		u := newTestUsecase(t)
		defender := mustMint(t, u, "alice", "Defender", 100)
		challenger := mustMint(t, u, "bob", "Challenger", 80)
		arena, err := u.CreateArena(ctx, defender.ID, "alice")
		require.NoError(t, err)

		outcome, err := u.Battle(ctx, arena.ID, challenger.ID, "bob")
		require.NoError(t, err)
		assert.Equal(t, defender.ID, outcome.WinnerHeroID)
		assert.Equal(t, challenger.ID, outcome.LoserHeroID)
		assert.Equal(t, entity.Account("alice"), outcome.Winner)

		got, err := u.GetHero(ctx, challenger.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.Account("alice"), got.Owner)
	})

	t.Run("defender wins power tie", func(t *testing.T) {
		u := newTestUsecase(t)
		defender := mustMint(t, u, "alice", "Defender", 90)
		challenger := mustMint(t, u, "bob", "Challenger", 90)
		arena, err := u.CreateArena(ctx, defender.ID, "alice")
		require.NoError(t, err)

		outcome, err := u.Battle(ctx, arena.ID, challenger.ID, "bob")
		require.NoError(t, err)
		assert.Equal(t, defender.ID, outcome.WinnerHeroID)
	})

	t.Run("arena is single use", func(t *testing.T) {
		u := newTestUsecase(t)
		defender := mustMint(t, u, "alice", "Defender", 80)
		challenger := mustMint(t, u, "bob", "Challenger", 100)
		second := mustMint(t, u, "carol", "Second", 100)
		arena, err := u.CreateArena(ctx, defender.ID, "alice")
		require.NoError(t, err)

		_, err = u.Battle(ctx, arena.ID, challenger.ID, "bob")
		require.NoError(t, err)
		_, err = u.Battle(ctx, arena.ID, second.ID, "carol")
		assert.ErrorIs(t, err, errs.NotFound)
	})

	t.Run("self challenge", func(t *testing.T) {
		u := newTestUsecase(t)
		defender := mustMint(t, u, "alice", "Defender", 80)
		challenger := mustMint(t, u, "alice", "Challenger", 100)
		arena, err := u.CreateArena(ctx, defender.ID, "alice")
		require.NoError(t, err)

		_, err = u.Battle(ctx, arena.ID, challenger.ID, "alice")
		assert.ErrorIs(t, err, errs.SelfChallenge)
	})

	t.Run("challenger hero not owned", func(t *testing.T) {
		u := newTestUsecase(t)
		defender := mustMint(t, u, "alice", "Defender", 80)
		challenger := mustMint(t, u, "bob", "Challenger", 100)
		arena, err := u.CreateArena(ctx, defender.ID, "alice")
		require.NoError(t, err)

		_, err = u.Battle(ctx, arena.ID, challenger.ID, "mallory")
		assert.ErrorIs(t, err, errs.NotOwner)
	})

	t.Run("challenger hero escrowed", func(t *testing.T) {
		u := newTestUsecase(t)
		defender := mustMint(t, u, "alice", "Defender", 80)
		challenger := mustMint(t, u, "bob", "Challenger", 100)
		arena, err := u.CreateArena(ctx, defender.ID, "alice")
		require.NoError(t, err)
		_, err = u.ListHero(ctx, challenger.ID, "bob", 100)
		require.NoError(t, err)

		_, err = u.Battle(ctx, arena.ID, challenger.ID, "bob")
		assert.ErrorIs(t, err, errs.AlreadyEscrowed)
	})
}

func TestDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("accumulates", func(t *testing.T) {
		u := newTestUsecase(t)
		balance, err := u.Deposit(ctx, "alice", 100)
		require.NoError(t, err)
		assert.Equal(t, int64(100), balance)

		balance, err = u.Deposit(ctx, "alice", 50)
		require.NoError(t, err)
		assert.Equal(t, int64(150), balance)
	})

	t.Run("zero balance for unknown account", func(t *testing.T) {
		u := newTestUsecase(t)
		balance, err := u.GetBalance(ctx, "nobody")
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		u := newTestUsecase(t)
		_, err := u.Deposit(ctx, "alice", 0)
		assert.ErrorIs(t, err, errs.InvalidInput)
		_, err = u.Deposit(ctx, "alice", -10)
		assert.ErrorIs(t, err, errs.InvalidInput)
	})
}

func TestGetEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("descending order with limit", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		listing, err := u.ListHero(ctx, hero.ID, "alice", 100)
		require.NoError(t, err)
		_, err = u.Deposit(ctx, "bob", 1000)
		require.NoError(t, err)
		require.NoError(t, u.BuyHero(ctx, listing.ID, "bob", 100))

		events, err := u.GetEvents(ctx, datagateway.GetEventsParams{})
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, entity.EventHeroBought, events[0].Kind)
		assert.Equal(t, entity.EventHeroListed, events[1].Kind)
		assert.Equal(t, entity.EventHeroCreated, events[2].Kind)

		events, err = u.GetEvents(ctx, datagateway.GetEventsParams{Limit: 2})
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, entity.EventHeroBought, events[0].Kind)
	})

	t.Run("kind filter", func(t *testing.T) {
		u := newTestUsecase(t)
		hero := mustMint(t, u, "alice", "A", 10)
		_, err := u.ListHero(ctx, hero.ID, "alice", 100)
		require.NoError(t, err)

		events, err := u.GetEvents(ctx, datagateway.GetEventsParams{Kind: entity.EventHeroListed})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, entity.EventHeroListed, events[0].Kind)
	})
}

func TestConcurrentEscrow(t *testing.T) {
	ctx := context.Background()

	// Concurrent list and arena intents against the same hero: exactly one
	// escrow may win.
	u := newTestUsecase(t)
	hero := mustMint(t, u, "alice", "A", 10)

	const attempts = 16
	results := make(chan error, attempts*2)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := u.ListHero(ctx, hero.ID, "alice", 100)
			results <- err
		}()
		go func() {
			defer wg.Done()
			_, err := u.CreateArena(ctx, hero.ID, "alice")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded int
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		require.Truef(t, errors.Is(err, errs.AlreadyEscrowed), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)

	listings, err := u.GetActiveListings(ctx)
	require.NoError(t, err)
	arenas, err2 := u.GetActiveArenas(ctx)
	require.NoError(t, err2)
	assert.Equal(t, 1, len(listings)+len(arenas))
}
