package partnerboost

import (
	"context"

	"github.com/pb-tools/partner-atlas/pkg/models/api"
	"github.com/pb-tools/partner-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// AmazonReport fetches every performance row in the inclusive date range
// from the datafeed report endpoint, which paginates with a continuation
// flag. Dates go over the wire as YYYYMMDD.
func (c *Client) AmazonReport(ctx context.Context, rng domain.DateRange, pageSize int) ([]api.AmazonReportRow, error) {
	logger := zerolog.Ctx(ctx)
	start := rng.Begin.Format("20060102")
	end := rng.End.Format("20060102")

	return collectHasMore(ctx, func(ctx context.Context, page int) (*api.Page[api.AmazonReportRow], error) {
		logger.Info().
			Str("start", start).
			Str("end", end).
			Int("page", page).
			Msg("fetching amazon report")

		res, err := c.http.R().
			SetContext(ctx).
			SetBody(map[string]any{
				"token":       c.token,
				"page_size":   pageSize,
				"page":        page,
				"start_date":  start,
				"end_date":    end,
				"marketplace": "",
				"asins":       "",
				"adGroupIds":  "",
			}).
			Post(amazonReportPath)
		if err != nil {
			return nil, err
		}
		if err := checkHTTP(res); err != nil {
			return nil, err
		}
		return decodePage[api.AmazonReportRow](res.Body())
	})
}

// FBAProducts fetches a single page of the FBA product listing. The sync
// component owns the page loop so it can commit one transaction per page.
func (c *Client) FBAProducts(ctx context.Context, page, pageSize int) (*api.Page[api.ProductRecord], error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"token":                  c.token,
			"page_size":              pageSize,
			"page":                   page,
			"default_filter":         1,
			"country_code":           "",
			"brand_id":               nil,
			"sort":                   "",
			"asins":                  "",
			"relationship":           1,
			"is_original_currency":   0,
			"has_promo_code":         0,
			"has_acc":                0,
			"filter_sexual_wellness": 0,
		}).
		Post(fbaProductsPath)
	if err != nil {
		return nil, err
	}
	if err := checkHTTP(res); err != nil {
		return nil, err
	}
	return decodePage[api.ProductRecord](res.Body())
}
