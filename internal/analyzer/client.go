// Package analyzer talks to the reward-analysis backend. The client's only
// responsibilities are serializing the request, deserializing the response,
// and mapping transport failures into the common error taxonomy; the reward
// arithmetic itself lives behind the network boundary.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cardwise/cardwise/internal/common"
	"github.com/cardwise/cardwise/internal/model"
)

// analyzePath is the backend's purchase analysis endpoint.
const analyzePath = "/api/analyze-purchase"

// Client implements the RewardAnalyzer interface over HTTP/JSON.
type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the request timeout. Expiry surfaces as a network failure.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a reward analyzer client for the given backend.
func NewClient(baseURL, userID string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		userID:  userID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AnalyzePurchase sends the transaction for valuation and returns the
// candidate cards with their reward breakdowns.
func (c *Client) AnalyzePurchase(ctx context.Context, txn model.Transaction) ([]model.CardReward, error) {
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("invalid transaction: %w", err)
	}

	body, err := json.Marshal(analyzeRequest{
		Amount:   txn.Amount,
		UserID:   c.userID,
		Merchant: txn.Merchant,
		Category: string(txn.Category),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("Requesting purchase analysis",
		"merchant", txn.Merchant,
		"category", txn.Category,
		"amount", txn.Amount)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", common.ErrNetworkFailure, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: analyzer returned %d - %s", common.ErrNetworkFailure, resp.StatusCode, string(snippet))
	}

	var wire analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}

	pairs, err := wire.toModel()
	if err != nil {
		return nil, err
	}

	slog.Debug("Purchase analysis received", "cards", len(pairs), "status", wire.Status)
	return pairs, nil
}
