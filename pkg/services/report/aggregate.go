package report

import (
	"context"

	"github.com/pb-tools/partner-atlas/pkg/models/api"
	"github.com/pb-tools/partner-atlas/pkg/models/domain"
)

// BrandResolver resolves a product code to a brand display name.
// pkg/store/sqlite/product.Store satisfies it.
type BrandResolver interface {
	GetBrandName(ctx context.Context, asin string) (string, error)
}

// AggregateTransactions folds transaction rows into per-brand totals. The
// brand comes straight off the row and every row counts as one order.
func AggregateTransactions(rows []api.TransactionRow) domain.BrandReport {
	result := domain.BrandReport{}
	for _, row := range rows {
		brand := row.MerchantName
		if brand == "" {
			brand = domain.UnknownBrand
		}

		stats := result[brand]
		stats.Orders++
		stats.Sales += float64(row.SaleAmount)
		stats.Commission += float64(row.SaleComm)
		result[brand] = stats
	}
	return result
}

// AggregateDatafeed folds Amazon report rows into per-brand totals,
// resolving each row's ASIN through the lookup store. Rows only count as an
// order when they carry a positive quantity.
func AggregateDatafeed(ctx context.Context, resolver BrandResolver, rows []api.AmazonReportRow) (domain.BrandReport, error) {
	result := domain.BrandReport{}
	for _, row := range rows {
		brand := domain.UnknownBrand
		if row.ASIN != "" {
			resolved, err := resolver.GetBrandName(ctx, row.ASIN)
			if err != nil {
				return nil, err
			}
			brand = resolved
		}

		stats := result[brand]
		if row.Quantity > 0 {
			stats.Orders++
		}
		stats.Sales += float64(row.Sales)
		stats.Commission += float64(row.EstCommission)
		result[brand] = stats
	}
	return result, nil
}
