package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the Yahoo Finance chart API host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Client looks up recent price samples for an instrument symbol. It asks
// for one day of one-minute candles and takes the latest close, which is
// what the dashboard treats as "current price".
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a quote client. An empty baseURL selects the public
// Yahoo endpoint.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// chartResponse is the subset of the v8 chart payload we read.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Latest returns the most recent close for symbol. It fails when the
// upstream errors or reports no recent samples.
func (c *Client) Latest(ctx context.Context, symbol string) (float64, error) {
	if symbol == "" {
		return 0, fmt.Errorf("symbol is required")
	}

	params := url.Values{}
	params.Set("range", "1d")
	params.Set("interval", "1m")

	apiURL := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.baseURL, url.PathEscape(symbol), params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", "folio/1.0")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("API error (status %d) for %s", resp.StatusCode, symbol)
	}

	var apiResp chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	if apiResp.Chart.Error != nil {
		return 0, fmt.Errorf("chart error for %s: %s", symbol, apiResp.Chart.Error.Description)
	}
	if len(apiResp.Chart.Result) == 0 {
		return 0, fmt.Errorf("no result for %s", symbol)
	}

	result := apiResp.Chart.Result[0]

	// Walk closes back to front; minutes with no trade come back null.
	for _, q := range result.Indicators.Quote {
		for i := len(q.Close) - 1; i >= 0; i-- {
			if q.Close[i] != nil {
				return *q.Close[i], nil
			}
		}
	}

	if result.Meta.RegularMarketPrice > 0 {
		return result.Meta.RegularMarketPrice, nil
	}
	return 0, fmt.Errorf("no recent samples for %s", symbol)
}

// Exists reports whether the upstream has at least one recent sample for
// symbol. Transport failures count as "cannot confirm" and return false.
func (c *Client) Exists(ctx context.Context, symbol string) bool {
	_, err := c.Latest(ctx, symbol)
	return err == nil
}
