// Package catalog provides the static category and order-preview listings the
// checkout flow browses. A pure lookup; no computation beyond totals happens
// here.
package catalog

import (
	"context"
	"fmt"

	"github.com/cardwise/cardwise/internal/common"
	"github.com/cardwise/cardwise/internal/model"
)

// categoryEntry holds everything the flow needs for one category: its home
// screen card and the line items of its order preview.
type categoryEntry struct {
	category model.Category
	items    []model.LineItem
}

// StaticProvider serves a fixed in-memory catalog. It implements
// service.CatalogProvider.
type StaticProvider struct {
	entries map[model.CategoryID]categoryEntry
	order   []model.CategoryID
}

// NewStaticProvider returns a provider seeded with the demo catalog.
func NewStaticProvider() *StaticProvider {
	p := &StaticProvider{
		entries: make(map[model.CategoryID]categoryEntry),
	}

	p.add(model.Category{
		ID:          model.CategoryAirlines,
		Name:        "Airlines",
		Merchant:    "Emirates Airlines",
		Description: "Flight tickets & rewards",
		Offers:      15,
	}, []model.LineItem{
		{ID: 1, Name: "NYC → LDN", Description: "Business Class, Emirates", UnitPrice: 2499.99, Quantity: 1},
		{ID: 2, Name: "LAX → TYO", Description: "First Class, ANA", UnitPrice: 3299.99, Quantity: 1},
	})

	p.add(model.Category{
		ID:          model.CategoryGrocery,
		Name:        "Grocery",
		Merchant:    "Whole Foods",
		Description: "Supermarkets & stores",
		Offers:      18,
	}, []model.LineItem{
		{ID: 1, Name: "Fresh Produce Bundle", Description: "Organic Selection", UnitPrice: 89.99, Quantity: 1},
		{ID: 2, Name: "Premium Dairy", Description: "Farm Fresh", UnitPrice: 45.50, Quantity: 1},
	})

	p.add(model.Category{
		ID:          model.CategoryBigTicket,
		Name:        "Big Ticket",
		Merchant:    "Apple Store",
		Description: "Luxury & high-value items",
		Offers:      8,
	}, []model.LineItem{
		{ID: 1, Name: "iPhone 15 Pro Max", Description: "256GB Titanium", UnitPrice: 1299.99, Quantity: 1},
		{ID: 2, Name: "MacBook Pro", Description: "14-inch M3 Pro", UnitPrice: 2499.99, Quantity: 1},
	})

	p.add(model.Category{
		ID:          model.CategoryDining,
		Name:        "Dining",
		Merchant:    "Fine Dining",
		Description: "Restaurants & experiences",
		Offers:      12,
	}, []model.LineItem{
		{ID: 1, Name: "Gourmet Dinner", Description: "5-course meal at a Michelin-star restaurant", UnitPrice: 199.99, Quantity: 1},
		{ID: 2, Name: "Wine Tasting", Description: "Selection of premium wines", UnitPrice: 89.99, Quantity: 1},
	})

	return p
}

func (p *StaticProvider) add(category model.Category, items []model.LineItem) {
	p.entries[category.ID] = categoryEntry{category: category, items: items}
	p.order = append(p.order, category.ID)
}

// Categories lists the merchant categories in display order.
func (p *StaticProvider) Categories(_ context.Context) ([]model.Category, error) {
	categories := make([]model.Category, 0, len(p.order))
	for _, id := range p.order {
		categories = append(categories, p.entries[id].category)
	}
	return categories, nil
}

// Items returns a copy of the order-preview line items for a category.
func (p *StaticProvider) Items(_ context.Context, id model.CategoryID) ([]model.LineItem, error) {
	entry, ok := p.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownCategory, id)
	}

	items := make([]model.LineItem, len(entry.items))
	copy(items, entry.items)
	return items, nil
}

// Category returns the home screen entry for a single category id.
func (p *StaticProvider) Category(_ context.Context, id model.CategoryID) (*model.Category, error) {
	entry, ok := p.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownCategory, id)
	}
	category := entry.category
	return &category, nil
}
