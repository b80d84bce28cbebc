package partnerboost

import (
	"context"
	"encoding/json"
	"strconv"
)

// Brands fetches one raw page of the brand monetization API, for inspecting
// the partnered Amazon brands. The page is returned undecoded so callers
// can dump it as-is.
func (c *Client) Brands(ctx context.Context, page, limit int) (json.RawMessage, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"mod": "medium",
			"op":  "monetization_api",
		}).
		SetFormData(map[string]string{
			"token":      c.token,
			"type":       "json",
			"brand_type": "Amazon",
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
	if _, err := decodePage[json.RawMessage](res.Body()); err != nil {
		return nil, err
	}
	return json.RawMessage(res.Body()), nil
}
