package model

import (
	"crypto/rand"
	"fmt"
)

// Transaction is the purchase being valued: the order total plus the merchant
// context the reward analyzer scores against. Immutable once created for a
// session.
type Transaction struct {
	Amount   float64
	Merchant string
	Category CategoryID
}

// Validate ensures the transaction can be sent to the analyzer.
func (t Transaction) Validate() error {
	if t.Amount <= 0 {
		return fmt.Errorf("amount must be positive, got %.2f", t.Amount)
	}
	if t.Merchant == "" {
		return fmt.Errorf("merchant is required")
	}
	if !t.Category.Valid() {
		return fmt.Errorf("unknown category %q", t.Category)
	}
	return nil
}

const txnIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewTransactionID generates a receipt identifier of the form TXN followed by
// nine base-36 characters. Generated only once a payment succeeds.
func NewTransactionID() string {
	buf := make([]byte, 9)
	// rand.Read on crypto/rand never fails on supported platforms.
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = txnIDAlphabet[int(b)%len(txnIDAlphabet)]
	}
	return "TXN" + string(buf)
}
