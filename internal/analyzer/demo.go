package analyzer

import (
	"context"
	"fmt"
	"math"

	"github.com/cardwise/cardwise/internal/model"
)

// Demo is an offline RewardAnalyzer producing deterministic valuations, so
// the checkout flow stays usable without a running backend. Rates are loosely
// modeled on the sample wallet: a flat-cashback card and a category-bonus
// travel card.
type Demo struct{}

// NewDemo returns the offline analyzer.
func NewDemo() *Demo {
	return &Demo{}
}

// demoCard is one entry of the fixed demo wallet.
type demoCard struct {
	card         model.Card
	baseRate     float64
	bonusRates   map[model.CategoryID]float64
	bonusDetails map[model.CategoryID]string
}

var demoWallet = []demoCard{
	{
		card: model.Card{
			ID:          "card_1",
			DisplayName: "Rewards Plus",
			Network:     "Mastercard",
			Last4:       "4567",
		},
		baseRate: 0.05,
		bonusRates: map[model.CategoryID]float64{
			model.CategoryBigTicket: 0.05,
			model.CategoryGrocery:   0.03,
		},
		bonusDetails: map[model.CategoryID]string{
			model.CategoryBigTicket: "Extra 5% off with selected cards",
			model.CategoryGrocery:   "3% grocery bonus this month",
		},
	},
	{
		card: model.Card{
			ID:          "card_2",
			DisplayName: "Travel Elite",
			Network:     "Visa",
			Last4:       "8901",
		},
		baseRate: 0.03,
		bonusRates: map[model.CategoryID]float64{
			model.CategoryAirlines: 0.04,
			model.CategoryDining:   0.02,
		},
		bonusDetails: map[model.CategoryID]string{
			model.CategoryAirlines: "4x points on airline purchases",
			model.CategoryDining:   "2x points on dining",
		},
	},
}

// AnalyzePurchase computes the demo wallet's value for the transaction. The
// same transaction always yields the same breakdowns.
func (d *Demo) AnalyzePurchase(_ context.Context, txn model.Transaction) ([]model.CardReward, error) {
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("invalid transaction: %w", err)
	}

	pairs := make([]model.CardReward, 0, len(demoWallet))
	for _, entry := range demoWallet {
		base := roundCents(txn.Amount * entry.baseRate)
		bonus := roundCents(txn.Amount * entry.bonusRates[txn.Category])
		total := roundCents(base + bonus)

		offerDetail := entry.bonusDetails[txn.Category]
		if offerDetail == "" {
			offerDetail = "No special offer for this category"
		}

		pairs = append(pairs, model.CardReward{
			Card: entry.card,
			Rewards: model.RewardBreakdown{
				BaseRewards: model.RewardComponent{
					Value:       base,
					Description: fmt.Sprintf("%.0f%% base rewards on all purchases", entry.baseRate*100),
				},
				SpecialOffer: model.RewardComponent{
					Value:       bonus,
					Description: offerDetail,
				},
				TotalValue:    total,
				EffectiveRate: roundCents(total / txn.Amount * 100),
			},
		})
	}

	return pairs, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
