package model

import (
	"fmt"
	"math"
	"sort"
)

// breakdownTolerance is the allowed rounding slack, in currency units, between
// a card's total value and the sum of its components.
const breakdownTolerance = 0.01

// Card represents a payment instrument available to the user.
type Card struct {
	ID          string
	DisplayName string
	Network     string
	Last4       string
}

// RewardComponent is one contributor to a card's value for a transaction.
type RewardComponent struct {
	Value       float64
	Description string
}

// RewardBreakdown decomposes a card's value for one transaction into its base
// rewards and any special offer.
type RewardBreakdown struct {
	BaseRewards   RewardComponent
	SpecialOffer  RewardComponent
	TotalValue    float64
	EffectiveRate float64 // percent of the transaction amount
}

// Validate ensures the breakdown is internally consistent.
func (b RewardBreakdown) Validate() error {
	if b.TotalValue < 0 {
		return fmt.Errorf("total value must not be negative, got %.2f", b.TotalValue)
	}
	if b.BaseRewards.Value < 0 || b.SpecialOffer.Value < 0 {
		return fmt.Errorf("reward components must not be negative")
	}
	if diff := math.Abs(b.TotalValue - (b.BaseRewards.Value + b.SpecialOffer.Value)); diff > breakdownTolerance {
		return fmt.Errorf("total value %.2f does not match components %.2f + %.2f",
			b.TotalValue, b.BaseRewards.Value, b.SpecialOffer.Value)
	}
	if b.EffectiveRate < 0 {
		return fmt.Errorf("effective rate must not be negative, got %.1f", b.EffectiveRate)
	}
	return nil
}

// CardReward pairs a card with its reward breakdown for one transaction, as
// returned by the reward analyzer.
type CardReward struct {
	Card    Card
	Rewards RewardBreakdown
}

// RankedCard is a CardReward annotated with its position in the reward
// comparison, 1 being best.
type RankedCard struct {
	Card    Card
	Rewards RewardBreakdown
	Rank    int
}

// RankedCards is a slice of RankedCard that supports sorting and lookup.
type RankedCards []RankedCard

// Len implements sort.Interface.
func (r RankedCards) Len() int {
	return len(r)
}

// Less implements sort.Interface - higher total value comes first, ties broken
// by ascending card id so repeated runs produce identical order.
func (r RankedCards) Less(i, j int) bool {
	if r[i].Rewards.TotalValue != r[j].Rewards.TotalValue {
		return r[i].Rewards.TotalValue > r[j].Rewards.TotalValue
	}
	return r[i].Card.ID < r[j].Card.ID
}

// Swap implements sort.Interface.
func (r RankedCards) Swap(i, j int) {
	r[i], r[j] = r[j], r[i]
}

// Sort orders the cards by descending total value and renumbers ranks 1..N.
func (r RankedCards) Sort() {
	sort.Sort(r)
	for i := range r {
		r[i].Rank = i + 1
	}
}

// Top returns the rank-1 card, or nil if the slice is empty.
func (r RankedCards) Top() *RankedCard {
	if len(r) == 0 {
		return nil
	}
	return &r[0]
}

// ByID returns the card with the given id, or nil if absent.
func (r RankedCards) ByID(id string) *RankedCard {
	for i := range r {
		if r[i].Card.ID == id {
			return &r[i]
		}
	}
	return nil
}
