package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"fxswap/internal/domain"
)

// PriceClient fetches a one-shot snapshot of token prices in USD from a fixed
// URL. The response is a JSON object mapping token symbol to a nullable price.
type PriceClient struct {
	http *http.Client
	url  string
}

func (c *PriceClient) GetPrices(ctx context.Context) (domain.PriceSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create price request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute price request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d from price source: %s", resp.StatusCode, resp.Status)
	}

	var body map[string]*float64
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode price response: %w", err)
	}

	snapshot := make(domain.PriceSnapshot, len(body))
	for sym, price := range body {
		code := domain.Code(strings.ToUpper(strings.TrimSpace(sym)))
		if code == "" {
			continue
		}
		snapshot[code] = price
	}
	return snapshot, nil
}

func NewPriceClient(httpClient *http.Client, url string) *PriceClient {
	return &PriceClient{http: httpClient, url: url}
}
