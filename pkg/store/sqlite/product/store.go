package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pb-tools/partner-atlas/pkg/models/domain"
	"github.com/pb-tools/partner-atlas/pkg/models/store"
	"github.com/pb-tools/partner-atlas/pkg/store/sqlite"
)

// Store is the local product→brand lookup table. Upsert honors a
// transaction carried in the context via sqlite.WithTransaction; reads go
// straight through the pool.
type Store interface {
	Upsert(ctx context.Context, p store.Product) error
	GetBrandName(ctx context.Context, asin string) (string, error)
	Stats(ctx context.Context) (*store.ProductStats, error)
}

type productStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &productStore{db: db}, nil
}

// Upsert inserts a product row or overwrites every non-key column of an
// existing one. Records without an ASIN are skipped silently.
func (p *productStore) Upsert(ctx context.Context, record store.Product) error {
	if record.ASIN == "" {
		return nil
	}

	query := `
		INSERT INTO products (asin, brand_id, brand_name, title, country_code)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(asin) DO UPDATE SET
			brand_id=excluded.brand_id,
			brand_name=excluded.brand_name,
			title=excluded.title,
			country_code=excluded.country_code`

	var err error
	if tx := sqlite.GetTransaction(ctx); tx != nil {
		_, err = tx.ExecContext(ctx, query,
			record.ASIN, record.BrandID, record.BrandName, record.Title, record.CountryCode)
	} else {
		_, err = p.db.ExecContext(ctx, query,
			record.ASIN, record.BrandID, record.BrandName, record.Title, record.CountryCode)
	}
	if err != nil {
		return fmt.Errorf("upsert product %s: %w", record.ASIN, err)
	}
	return nil
}

// GetBrandName resolves an ASIN to its stored brand name, falling back to
// the Unknown sentinel when the row is absent or the stored name is empty.
func (p *productStore) GetBrandName(ctx context.Context, asin string) (string, error) {
	var name sql.NullString
	err := p.db.QueryRowContext(ctx,
		`SELECT brand_name FROM products WHERE asin = ?`, asin).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UnknownBrand, nil
	}
	if err != nil {
		return "", fmt.Errorf("query brand name for %s: %w", asin, err)
	}
	if !name.Valid || name.String == "" {
		return domain.UnknownBrand, nil
	}
	return name.String, nil
}

func (p *productStore) Stats(ctx context.Context) (*store.ProductStats, error) {
	var stats store.ProductStats
	err := p.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(DISTINCT brand_id),
		       COUNT(DISTINCT brand_name)
		FROM products`).
		Scan(&stats.TotalProducts, &stats.DistinctBrandIDs, &stats.DistinctBrandNames)
	if err != nil {
		return nil, fmt.Errorf("query product stats: %w", err)
	}
	return &stats, nil
}
