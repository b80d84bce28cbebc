package api

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Envelope is the PartnerBoost response wrapper shared by every endpoint:
// a status block plus a paged data block.
type Envelope[T any] struct {
	Status Status  `json:"status"`
	Data   Page[T] `json:"data"`
}

type Status struct {
	Code json.Number `json:"code"`
	Msg  string      `json:"msg"`
}

// OK reports whether the status code signals success. The API sends the
// code either as a number or as a string; both 0 and "0" mean success.
func (s Status) OK() bool {
	return s.Code.String() == "0"
}

type Page[T any] struct {
	List      []T         `json:"list"`
	HasMore   *bool       `json:"has_more"`
	TotalPage json.Number `json:"total_page"`
}

// More reports the continuation flag; an absent flag counts as false.
func (p Page[T]) More() bool {
	return p.HasMore != nil && *p.HasMore
}

// TotalPages returns the declared page count, defaulting to 1 when the
// field is absent or unparseable.
func (p Page[T]) TotalPages() int {
	n, err := p.TotalPage.Int64()
	if err != nil || n < 1 {
		return 1
	}
	return int(n)
}

// Amount is a monetary or quantity field that may arrive as a JSON number,
// a numeric string, null, or not at all. Values that cannot be parsed
// decode to zero instead of failing (the "parse-or-zero" policy).
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = 0
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*a = Amount(f)
		}
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*a = Amount(f)
	}
	return nil
}

// Text is a string field that some endpoints send as a bare number
// (brand ids in particular).
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	*t = ""
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

// TransactionRow is one item of the medium transaction report.
type TransactionRow struct {
	MerchantName string `json:"merchant_name"`
	SaleAmount   Amount `json:"sale_amount"`
	SaleComm     Amount `json:"sale_comm"`
}

// AmazonReportRow is one item of the datafeed Amazon performance report.
type AmazonReportRow struct {
	ASIN          string `json:"asin"`
	Quantity      Amount `json:"quantity"`
	Sales         Amount `json:"sales"`
	EstCommission Amount `json:"estCommission"`
}

// ProductRecord is one item of the FBA product listing. The API is not
// entirely consistent about field names, hence the brand/name fallbacks
// handled in the adapter layer.
type ProductRecord struct {
	ASIN        string `json:"asin"`
	BrandID     Text   `json:"brand_id"`
	BrandName   string `json:"brand_name"`
	Brand       string `json:"brand"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
}
