// Package service defines the interfaces for the checkout flow's collaborators.
package service

import (
	"context"
	"time"

	"github.com/cardwise/cardwise/internal/model"
)

// CatalogProvider supplies the static category and order-preview listings.
// Implementations must return a non-empty, order-preserving item sequence for
// every defined category id, and common.ErrUnknownCategory otherwise.
type CatalogProvider interface {
	// Categories lists the merchant categories shown on the home screen.
	Categories(ctx context.Context) ([]model.Category, error)
	// Items returns the order-preview line items for a category.
	Items(ctx context.Context, id model.CategoryID) ([]model.LineItem, error)
}

// RewardAnalyzer values a transaction against the user's candidate cards.
// Implementations serialize the request, deserialize the response, and map
// transport failures into the common error taxonomy; they perform no reward
// arithmetic of their own.
type RewardAnalyzer interface {
	AnalyzePurchase(ctx context.Context, txn model.Transaction) ([]model.CardReward, error)
}

// RetryOptions configures retry behavior for analyzer requests.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
