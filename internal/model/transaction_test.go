package model

import (
	"regexp"
	"testing"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		txn     Transaction
		wantErr bool
	}{
		{
			name: "valid transaction",
			txn:  Transaction{Amount: 299.99, Merchant: "Whole Foods", Category: CategoryGrocery},
		},
		{
			name:    "zero amount",
			txn:     Transaction{Amount: 0, Merchant: "Whole Foods", Category: CategoryGrocery},
			wantErr: true,
		},
		{
			name:    "negative amount",
			txn:     Transaction{Amount: -10, Merchant: "Whole Foods", Category: CategoryGrocery},
			wantErr: true,
		},
		{
			name:    "missing merchant",
			txn:     Transaction{Amount: 10, Category: CategoryGrocery},
			wantErr: true,
		},
		{
			name:    "unknown category",
			txn:     Transaction{Amount: 10, Merchant: "Somewhere", Category: "electronics"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.txn.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewTransactionID(t *testing.T) {
	pattern := regexp.MustCompile(`^TXN[0-9A-Z]{9}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewTransactionID()
		if !pattern.MatchString(id) {
			t.Fatalf("NewTransactionID() = %q, want match for %s", id, pattern)
		}
		if seen[id] {
			t.Fatalf("NewTransactionID() produced duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestOrderTotal(t *testing.T) {
	items := []LineItem{
		{Name: "Fresh Produce Bundle", UnitPrice: 89.99, Quantity: 1},
		{Name: "Premium Dairy", UnitPrice: 45.50, Quantity: 2},
	}

	want := 89.99 + 45.50*2
	if got := OrderTotal(items); got != want {
		t.Errorf("OrderTotal() = %.2f, want %.2f", got, want)
	}

	if got := OrderTotal(nil); got != 0 {
		t.Errorf("OrderTotal(nil) = %.2f, want 0", got)
	}
}
