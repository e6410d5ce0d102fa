// Package model defines the core domain types for the checkout flow.
package model

import "fmt"

// CategoryID identifies one of the merchant categories available on the home
// screen. The set is closed; unknown ids are rejected at the catalog boundary.
type CategoryID string

const (
	CategoryAirlines  CategoryID = "airlines"
	CategoryGrocery   CategoryID = "grocery"
	CategoryBigTicket CategoryID = "bigticket"
	CategoryDining    CategoryID = "dining"
)

// KnownCategories returns every defined category id in display order.
func KnownCategories() []CategoryID {
	return []CategoryID{CategoryAirlines, CategoryGrocery, CategoryBigTicket, CategoryDining}
}

// Valid reports whether the id is one of the defined categories.
func (c CategoryID) Valid() bool {
	switch c {
	case CategoryAirlines, CategoryGrocery, CategoryBigTicket, CategoryDining:
		return true
	}
	return false
}

// ParseCategoryID converts a raw string into a CategoryID.
func ParseCategoryID(s string) (CategoryID, error) {
	id := CategoryID(s)
	if !id.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return id, nil
}

// Category describes a merchant category as shown on the home screen.
type Category struct {
	ID          CategoryID
	Name        string
	Merchant    string // merchant the order preview is placed with
	Description string
	Offers      int
}
