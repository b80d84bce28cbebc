package partnerboost

import (
	"context"
	"strconv"

	"github.com/pb-tools/partner-atlas/pkg/models/api"
	"github.com/pb-tools/partner-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Transactions fetches every transaction row in the inclusive date range
// (YYYY-MM-DD) from the medium transaction endpoint, which declares a total
// page count.
func (c *Client) Transactions(ctx context.Context, rng domain.DateRange, limit int) ([]api.TransactionRow, error) {
	logger := zerolog.Ctx(ctx)

	return collectTotalPage(ctx, func(ctx context.Context, page int) (*api.Page[api.TransactionRow], error) {
		logger.Info().
			Str("begin", rng.BeginDate()).
			Str("end", rng.EndDate()).
			Int("page", page).
			Msg("fetching transactions")

		res, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"mod": "medium",
				"op":  "transaction",
			}).
			SetFormData(map[string]string{
				"token":      c.token,
				"type":       "json",
				"begin_date": rng.BeginDate(),
				"end_date":   rng.EndDate(),
				"page":       strconv.Itoa(page),
				"limit":      strconv.Itoa(limit),
			}).
			Post(mediumAPIPath)
		if err != nil {
			return nil, err
		}
		if err := checkHTTP(res); err != nil {
			return nil, err
		}
		return decodePage[api.TransactionRow](res.Body())
	})
}
