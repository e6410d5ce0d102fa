// Package rewards ranks the cards returned by the reward analyzer for one
// transaction. The ranking is a pure function over its input: safe to re-run
// whenever a new analyzer response arrives, and deterministic so the rank-1
// card (the default selection) never varies run to run.
package rewards

import (
	"fmt"

	"github.com/cardwise/cardwise/internal/common"
	"github.com/cardwise/cardwise/internal/model"
)

// Rank annotates the analyzer's card/breakdown pairs with integer ranks 1..N,
// sorted by descending total value with ties broken by ascending card id.
//
// Upstream data is never silently repaired: an empty input fails with
// ErrEmptyCardSet, and any breakdown whose total is negative or inconsistent
// with its components fails with ErrInvalidBreakdown so the caller can log and
// display the anomaly.
func Rank(pairs []model.CardReward) (model.RankedCards, error) {
	if len(pairs) == 0 {
		return nil, common.ErrEmptyCardSet
	}

	ranked := make(model.RankedCards, 0, len(pairs))
	for _, pair := range pairs {
		if err := pair.Rewards.Validate(); err != nil {
			return nil, fmt.Errorf("%w: card %s: %v", common.ErrInvalidBreakdown, pair.Card.ID, err)
		}
		ranked = append(ranked, model.RankedCard{
			Card:    pair.Card,
			Rewards: pair.Rewards,
		})
	}

	ranked.Sort()
	return ranked, nil
}
