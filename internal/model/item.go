package model

// LineItem is a single purchasable entry in a category's order preview.
type LineItem struct {
	ID          int
	Name        string
	Description string
	UnitPrice   float64
	Quantity    int
}

// Total returns the extended price for the line.
func (i LineItem) Total() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// OrderTotal sums the extended prices of all line items. Tax is always
// included in the listed prices and contributes nothing on top.
func OrderTotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Total()
	}
	return total
}
