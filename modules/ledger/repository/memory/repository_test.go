package memory

import (
	"context"
	"testing"
	"time"

	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/datagateway"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHero(id entity.HeroID, owner entity.Account) entity.Hero {
	return entity.Hero{
		ID:        id,
		Name:      "Hero " + string(id),
		ImageURL:  "https://img.example/" + string(id),
		Power:     50,
		Owner:     owner,
		CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTxCommit(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	tx, err := repo.BeginLedgerTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.CreateHero(ctx, testHero("h1", "alice")))

	// not visible before commit
	_, err = repo.GetHero(ctx, "h1")
	assert.ErrorIs(t, err, errs.NotFound)

	require.NoError(t, tx.Commit(ctx))

	hero, err := repo.GetHero(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, entity.Account("alice"), hero.Owner)

	// Commit after commit is a no-op
	require.NoError(t, tx.Commit(ctx))
	require.NoError(t, tx.Rollback(ctx))
}

func TestTxRollback(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	require.NoError(t, repo.CreateHero(ctx, testHero("h1", "alice")))

	tx, err := repo.BeginLedgerTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SetHeroOwner(ctx, "h1", "bob"))
	require.NoError(t, tx.CreateHero(ctx, testHero("h2", "bob")))
	require.NoError(t, tx.Rollback(ctx))

	hero, err := repo.GetHero(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, entity.Account("alice"), hero.Owner)
	_, err = repo.GetHero(ctx, "h2")
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestTxReadsOwnWrites(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	tx, err := repo.BeginLedgerTx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	require.NoError(t, tx.CreateHero(ctx, testHero("h1", "alice")))
	hero, err := tx.GetHero(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, entity.HeroID("h1"), hero.ID)
}

func TestBeginTxTwice(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	tx, err := repo.BeginLedgerTx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.BeginLedgerTx(ctx)
	assert.ErrorIs(t, err, ErrTxAlreadyExists)
}

func TestListingIndex(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	require.NoError(t, repo.CreateHero(ctx, testHero("h1", "alice")))

	listing := entity.Listing{ID: "l1", HeroID: "h1", Seller: "alice", Price: 100, ListedAt: time.Now()}
	require.NoError(t, repo.CreateListing(ctx, listing))

	got, err := repo.GetListingByHero(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, listing.ID, got.ID)

	// one listing per hero
	err = repo.CreateListing(ctx, entity.Listing{ID: "l2", HeroID: "h1", Seller: "alice", Price: 200})
	assert.Error(t, err)

	require.NoError(t, repo.DeleteListing(ctx, "l1"))
	_, err = repo.GetListingByHero(ctx, "h1")
	assert.ErrorIs(t, err, errs.NotFound)
	err = repo.DeleteListing(ctx, "l1")
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestInitAdminHolder(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.GetAdminHolder(ctx)
	assert.ErrorIs(t, err, errs.NotFound)

	require.NoError(t, repo.InitAdminHolder(ctx, "alice"))
	// second init is ignored, the capability is a singleton
	require.NoError(t, repo.InitAdminHolder(ctx, "bob"))

	holder, err := repo.GetAdminHolder(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Account("alice"), holder)

	require.NoError(t, repo.SetAdminHolder(ctx, "bob"))
	holder, err = repo.GetAdminHolder(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Account("bob"), holder)
}

func TestAddBalanceRejectsNegative(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.NoError(t, repo.AddBalance(ctx, "alice", 100))
	err := repo.AddBalance(ctx, "alice", -200)
	assert.Error(t, err)

	balance, err := repo.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)
}

func TestEventSequenceAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	kinds := []entity.EventKind{entity.EventHeroCreated, entity.EventHeroListed, entity.EventHeroBought}
	for i, kind := range kinds {
		require.NoError(t, repo.AddEvent(ctx, entity.Event{
			Kind:      kind,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			HeroID:    "h1",
		}))
	}

	events, err := repo.GetEvents(ctx, datagateway.GetEventsParams{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	// newest first, sequence assigned in emission order
	assert.Equal(t, entity.EventHeroBought, events[0].Kind)
	assert.Equal(t, int64(3), events[0].Sequence)
	assert.Equal(t, entity.EventHeroCreated, events[2].Kind)
	assert.Equal(t, int64(1), events[2].Sequence)
}

func TestGetEventsFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		kind := entity.EventHeroCreated
		if i%2 == 1 {
			kind = entity.EventHeroListed
		}
		require.NoError(t, repo.AddEvent(ctx, entity.Event{
			Kind:      kind,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	t.Run("kind", func(t *testing.T) {
		events, err := repo.GetEvents(ctx, datagateway.GetEventsParams{Kind: entity.EventHeroListed})
		require.NoError(t, err)
		assert.Len(t, events, 5)
	})

	t.Run("time range", func(t *testing.T) {
		events, err := repo.GetEvents(ctx, datagateway.GetEventsParams{
			From: base.Add(2 * time.Minute),
			To:   base.Add(5 * time.Minute),
		})
		require.NoError(t, err)
		assert.Len(t, events, 4)
	})

	t.Run("limit", func(t *testing.T) {
		events, err := repo.GetEvents(ctx, datagateway.GetEventsParams{Limit: 3})
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, base.Add(9*time.Minute), events[0].Timestamp)
	})
}
