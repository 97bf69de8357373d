package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/iagocanalejas/richjet/internal/apperrors"
)

const defaultBaseURL = "https://v6.exchangerate-api.com/v6"

// Client provides methods for fetching currency conversion rates from the
// ExchangeRate API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new ExchangeRate client with default HTTP settings.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
}

// NewClientWithBaseURL creates a client pointed at a custom endpoint.
// Used by tests to target an httptest server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// Rate fetches the conversion rate from one currency to another.
func (c *Client) Rate(ctx context.Context, from, to string) (float64, error) {
	endpoint := fmt.Sprintf("%s/%s/pair/%s/%s",
		c.baseURL, url.PathEscape(c.apiKey), url.PathEscape(from), url.PathEscape(to))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var response PairResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return 0, err
	}
	if response.Result != "success" {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrRateUnavailable, response.ErrorType)
	}
	if response.ConversionRate <= 0 {
		return 0, fmt.Errorf("%w: non-positive rate for %s/%s", apperrors.ErrRateUnavailable, from, to)
	}

	return response.ConversionRate, nil
}
