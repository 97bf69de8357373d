package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/iagocanalejas/richjet/internal/apperrors"
	"github.com/iagocanalejas/richjet/internal/model"
)

const defaultBaseURL = "https://finnhub.io/api/v1"

// Client provides methods for fetching quotes from the Finnhub API.
// It wraps an HTTP client and carries the API token on every request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a new Finnhub client with default HTTP settings.
func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    defaultBaseURL,
		token:      token,
	}
}

// NewClientWithBaseURL creates a client pointed at a custom endpoint.
// Used by tests to target an httptest server.
func NewClientWithBaseURL(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

// Quote fetches the latest quote for a symbol. The provider signals an
// unknown ticker with an all-zero payload rather than an error status, so a
// zero current price is reported as an error here.
func (c *Client) Quote(ctx context.Context, symbol model.Symbol) (model.Quote, error) {
	endpoint := fmt.Sprintf("%s/quote?symbol=%s&token=%s",
		c.baseURL, url.QueryEscape(symbol.Ticker), url.QueryEscape(c.token))

	var response QuoteResponse
	if err := c.query(ctx, endpoint, &response); err != nil {
		return model.Quote{}, err
	}
	if response.Current == 0 {
		return model.Quote{}, fmt.Errorf("%w: no quote data for symbol %s", apperrors.ErrQuoteUnavailable, symbol.Ticker)
	}

	return model.Quote{
		Current:       response.Current,
		PreviousClose: response.PreviousClose,
		Currency:      symbol.Currency,
	}, nil
}

// query executes a GET against the Finnhub API and decodes the JSON body
// into out. Non-200 responses are surfaced with the provider's error text
// when one is present.
func (c *Client) query(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr ErrorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("finnhub error: %s", apiErr.Error)
		}
		return fmt.Errorf("finnhub error: status %d", resp.StatusCode)
	}

	return json.Unmarshal(data, out)
}
