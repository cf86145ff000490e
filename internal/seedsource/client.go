package seedsource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lakefield-systems/sales-server/internal/storage/transaction"
)

const fetchTimeout = time.Duration(30) * time.Second

// Client fetches the transaction data set served by the external seed source.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Client for the given source URL. An empty URL is legal
// at construction time and rejected on fetch.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: fetchTimeout},
	}
}

// FetchTransactions downloads the source's full JSON array of sale records.
func (c *Client) FetchTransactions(ctx context.Context) ([]*transaction.Transaction, error) {
	if c.BaseURL == "" {
		return nil, errors.New("seed source URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("seed source returned status %d", resp.StatusCode)
	}

	var records []*transaction.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, err
	}

	return records, nil
}
