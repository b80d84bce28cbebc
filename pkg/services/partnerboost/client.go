package partnerboost

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pb-tools/partner-atlas/pkg/models/api"
)

const (
	mediumAPIPath    = "/api.php"
	fbaProductsPath  = "/api/datafeed/get_fba_products"
	amazonReportPath = "/api/datafeed/get_amazon_report"

	defaultTimeout = 30 * time.Second
)

// RemoteAPIError is a non-success status code inside an otherwise valid
// response envelope. It aborts the whole fetch regardless of any data
// payload that came with it.
type RemoteAPIError struct {
	Code string
	Msg  string
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("partnerboost api error: code=%s msg=%s", e.Code, e.Msg)
}

// Client talks to the PartnerBoost reporting and datafeed endpoints.
type Client struct {
	http  *resty.Client
	token string
}

type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

func NewClient(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseURL)
	client.SetTimeout(opts.Timeout)

	return &Client{
		http:  client,
		token: opts.Token,
	}
}

// decodePage unwraps one response envelope, converting a non-success status
// into a RemoteAPIError.
func decodePage[T any](body []byte) (*api.Page[T], error) {
	var env api.Envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode response envelope: %w", err)
	}
	if !env.Status.OK() {
		return nil, &RemoteAPIError{Code: env.Status.Code.String(), Msg: env.Status.Msg}
	}
	return &env.Data, nil
}

func checkHTTP(res *resty.Response) error {
	if res.IsError() {
		return fmt.Errorf("http error from %s: %s", res.Request.URL, res.Status())
	}
	return nil
}
