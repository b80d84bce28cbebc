package sync

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pb-tools/partner-atlas/pkg/adapters"
	"github.com/pb-tools/partner-atlas/pkg/models/api"
	"github.com/pb-tools/partner-atlas/pkg/models/store"
	"github.com/pb-tools/partner-atlas/pkg/store/sqlite"
	"github.com/pb-tools/partner-atlas/pkg/store/sqlite/product"
	"github.com/rs/zerolog"
)

// ProductLister is the slice of the PartnerBoost client the syncer needs.
type ProductLister interface {
	FBAProducts(ctx context.Context, page, pageSize int) (*api.Page[api.ProductRecord], error)
}

// Syncer refreshes the local product lookup table from the FBA product
// listing, committing one transaction per fetched page. A failure mid-page
// rolls that page back; pages committed before it stay committed.
type Syncer struct {
	client ProductLister
	db     *sql.DB
	store  product.Store
}

type Result struct {
	Processed int64
	Stats     *store.ProductStats
}

func NewSyncer(client ProductLister, db *sql.DB, productStore product.Store) *Syncer {
	return &Syncer{
		client: client,
		db:     db,
		store:  productStore,
	}
}

func (s *Syncer) Run(ctx context.Context, pageSize int) (*Result, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Int("page_size", pageSize).Msg("starting product sync")

	var processed int64
	for page := 1; ; page++ {
		logger.Info().Int("page", page).Msg("fetching product page")

		p, err := s.client.FBAProducts(ctx, page, pageSize)
		if err != nil {
			return nil, err
		}
		if len(p.List) == 0 {
			logger.Info().Msg("no products returned, stopping")
			break
		}

		if err := s.commitPage(ctx, p.List); err != nil {
			return nil, fmt.Errorf("sync page %d: %w", page, err)
		}
		processed += int64(len(p.List))

		logger.Info().
			Int("page", page).
			Int("records", len(p.List)).
			Int64("total", processed).
			Msg("page committed")

		// has_more is authoritative when present; a short page is the
		// fallback stop condition.
		if (p.HasMore != nil && !*p.HasMore) || len(p.List) < pageSize {
			logger.Info().Msg("reached last page")
			break
		}
	}

	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("processed", processed).
		Int64("db_total", stats.TotalProducts).
		Int64("distinct_brand_ids", stats.DistinctBrandIDs).
		Int64("distinct_brand_names", stats.DistinctBrandNames).
		Msg("product sync done")

	return &Result{Processed: processed, Stats: stats}, nil
}

func (s *Syncer) commitPage(ctx context.Context, records []api.ProductRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	ctxTx := sqlite.WithTransaction(ctx, tx)
	for _, record := range records {
		if err := s.store.Upsert(ctxTx, adapters.MapAPIProductToStoreProduct(record)); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
