package product

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pb-tools/partner-atlas/pkg/models/domain"
	"github.com/pb-tools/partner-atlas/pkg/models/store"
	"github.com/pb-tools/partner-atlas/pkg/store/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, store: s}
}

func TestProductStore_Upsert(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	t.Run("success - insert then overwrite", func(t *testing.T) {
		err := f.store.Upsert(ctx, store.Product{
			ASIN:        "B000TEST01",
			BrandID:     "42",
			BrandName:   "Acme",
			Title:       "Widget",
			CountryCode: "US",
		})
		require.NoError(t, err)

		err = f.store.Upsert(ctx, store.Product{
			ASIN:        "B000TEST01",
			BrandID:     "42",
			BrandName:   "Acme Corp",
			Title:       "Widget v2",
			CountryCode: "US",
		})
		require.NoError(t, err)

		var count int
		err = f.db.QueryRow(`SELECT COUNT(*) FROM products WHERE asin = ?`, "B000TEST01").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		name, err := f.store.GetBrandName(ctx, "B000TEST01")
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", name)
	})

	t.Run("no-op - missing asin", func(t *testing.T) {
		err := f.store.Upsert(ctx, store.Product{BrandName: "Nameless"})
		require.NoError(t, err)

		var count int
		err = f.db.QueryRow(`SELECT COUNT(*) FROM products WHERE brand_name = ?`, "Nameless").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("success - inside transaction", func(t *testing.T) {
		tx, err := f.db.BeginTx(ctx, nil)
		require.NoError(t, err)

		ctxTx := sqlite.WithTransaction(ctx, tx)
		err = f.store.Upsert(ctxTx, store.Product{ASIN: "B000TXTEST", BrandName: "TxBrand"})
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		name, err := f.store.GetBrandName(ctx, "B000TXTEST")
		require.NoError(t, err)
		assert.Equal(t, "TxBrand", name)
	})
}

func TestProductStore_GetBrandName(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	t.Run("unknown - no row", func(t *testing.T) {
		name, err := f.store.GetBrandName(ctx, "B000MISSING")
		require.NoError(t, err)
		assert.Equal(t, domain.UnknownBrand, name)
	})

	t.Run("unknown - empty stored name", func(t *testing.T) {
		err := f.store.Upsert(ctx, store.Product{ASIN: "B000EMPTY"})
		require.NoError(t, err)

		name, err := f.store.GetBrandName(ctx, "B000EMPTY")
		require.NoError(t, err)
		assert.Equal(t, domain.UnknownBrand, name)
	})
}

func TestProductStore_Stats(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	products := []store.Product{
		{ASIN: "A1", BrandID: "1", BrandName: "Acme"},
		{ASIN: "A2", BrandID: "1", BrandName: "Acme"},
		{ASIN: "A3", BrandID: "2", BrandName: "Globex"},
	}
	for _, p := range products {
		require.NoError(t, f.store.Upsert(ctx, p))
	}

	stats, err := f.store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalProducts)
	assert.Equal(t, int64(2), stats.DistinctBrandIDs)
	assert.Equal(t, int64(2), stats.DistinctBrandNames)
}
