package analyzer

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/cardwise/cardwise/internal/common"
	"github.com/cardwise/cardwise/internal/model"
)

var validate = validator.New()

// analyzeRequest is the wire shape of the analysis request. User identity is
// attached here; authentication proper is handled upstream of this client.
type analyzeRequest struct {
	Amount   float64 `json:"amount"`
	UserID   string  `json:"user_id"`
	Merchant string  `json:"merchant"`
	Category string  `json:"category"`
}

// Wire shapes of the analysis response.
type analyzeResponse struct {
	Cards       []wireCard      `json:"cards" validate:"required,dive"`
	Transaction wireTransaction `json:"transaction"`
	Status      string          `json:"status" validate:"required"`
}

type wireTransaction struct {
	Amount   float64 `json:"amount"`
	Merchant string  `json:"merchant"`
	Category string  `json:"category"`
}

type wireCard struct {
	ID      string      `json:"id" validate:"required"`
	Name    string      `json:"name" validate:"required"`
	Network string      `json:"network" validate:"required"`
	Last4   string      `json:"last4" validate:"required,len=4,number"`
	Rewards wireRewards `json:"rewards" validate:"required"`
}

type wireRewards struct {
	BaseRewards   wireComponent `json:"baseRewards"`
	SpecialOffer  wireComponent `json:"specialOffer"`
	TotalValue    float64       `json:"totalValue" validate:"gte=0"`
	EffectiveRate float64       `json:"effectiveRate" validate:"gte=0"`
}

type wireComponent struct {
	Value       float64 `json:"value" validate:"gte=0"`
	Description string  `json:"description"`
}

// toModel validates the payload schema and converts it to domain types.
// Schema violations map to ErrMalformedResponse so they can be logged apart
// from plain transport failures.
func (r analyzeResponse) toModel() ([]model.CardReward, error) {
	if err := validate.Struct(r); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}

	pairs := make([]model.CardReward, 0, len(r.Cards))
	for _, card := range r.Cards {
		pairs = append(pairs, model.CardReward{
			Card: model.Card{
				ID:          card.ID,
				DisplayName: card.Name,
				Network:     card.Network,
				Last4:       card.Last4,
			},
			Rewards: model.RewardBreakdown{
				BaseRewards: model.RewardComponent{
					Value:       card.Rewards.BaseRewards.Value,
					Description: card.Rewards.BaseRewards.Description,
				},
				SpecialOffer: model.RewardComponent{
					Value:       card.Rewards.SpecialOffer.Value,
					Description: card.Rewards.SpecialOffer.Description,
				},
				TotalValue:    card.Rewards.TotalValue,
				EffectiveRate: card.Rewards.EffectiveRate,
			},
		})
	}

	return pairs, nil
}
