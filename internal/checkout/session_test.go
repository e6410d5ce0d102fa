package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwise/cardwise/internal/common"
	"github.com/cardwise/cardwise/internal/model"
)

// fakeCatalog is an in-memory CatalogProvider for driving the state machine.
type fakeCatalog struct {
	categories []model.Category
	items      map[model.CategoryID][]model.LineItem
}

func (f *fakeCatalog) Categories(_ context.Context) ([]model.Category, error) {
	return f.categories, nil
}

func (f *fakeCatalog) Items(_ context.Context, id model.CategoryID) ([]model.LineItem, error) {
	items, ok := f.items[id]
	if !ok {
		return nil, common.ErrUnknownCategory
	}
	return items, nil
}

func groceryCatalog() *fakeCatalog {
	return &fakeCatalog{
		categories: []model.Category{
			{ID: model.CategoryGrocery, Name: "Grocery", Merchant: "Whole Foods"},
		},
		items: map[model.CategoryID][]model.LineItem{
			model.CategoryGrocery: {
				{ID: 1, Name: "Organic Groceries", UnitPrice: 299.99, Quantity: 1},
			},
		},
	}
}

func twoCardPairs() []model.CardReward {
	return []model.CardReward{
		{
			Card: model.Card{ID: "card_2", DisplayName: "Travel Elite", Network: "Visa", Last4: "8901"},
			Rewards: model.RewardBreakdown{
				BaseRewards:  model.RewardComponent{Value: 30.00},
				SpecialOffer: model.RewardComponent{Value: 8.99},
				TotalValue:   38.99,
			},
		},
		{
			Card: model.Card{ID: "card_1", DisplayName: "Rewards Plus", Network: "Mastercard", Last4: "4567"},
			Rewards: model.RewardBreakdown{
				BaseRewards:  model.RewardComponent{Value: 50.00},
				SpecialOffer: model.RewardComponent{Value: 14.99},
				TotalValue:   64.99,
			},
		},
	}
}

// toPayment drives a fresh session to the payment screen and returns it with
// the outstanding analysis request.
func toPayment(t *testing.T) (*Session, *AnalysisRequest) {
	t.Helper()

	session := NewSession(groceryCatalog())
	require.NoError(t, session.SelectCategory(context.Background(), model.CategoryGrocery))

	req, err := session.ProceedToPayment()
	require.NoError(t, err)
	require.NotNil(t, req)
	return session, req
}

func TestSession_InitialState(t *testing.T) {
	session := NewSession(groceryCatalog())
	snap := session.Snapshot()

	assert.Equal(t, ScreenHome, snap.Screen)
	assert.Nil(t, snap.Category)
	assert.Empty(t, snap.Items)
	assert.Nil(t, snap.Transaction)
	assert.Empty(t, snap.RankedCards)
	assert.Empty(t, snap.SelectedCardID)
	assert.Empty(t, snap.TransactionID)
	assert.False(t, snap.AnalysisPending)
}

func TestSession_SelectCategory(t *testing.T) {
	session := NewSession(groceryCatalog())

	err := session.SelectCategory(context.Background(), model.CategoryGrocery)
	require.NoError(t, err)

	snap := session.Snapshot()
	assert.Equal(t, ScreenPreview, snap.Screen)
	require.NotNil(t, snap.Category)
	assert.Equal(t, "Whole Foods", snap.Category.Merchant)
	assert.Len(t, snap.Items, 1)
	assert.InDelta(t, 299.99, snap.Subtotal, 0.001)
}

func TestSession_SelectCategoryUnknown(t *testing.T) {
	session := NewSession(groceryCatalog())

	err := session.SelectCategory(context.Background(), "electronics")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnknownCategory)
	assert.Equal(t, ScreenHome, session.Snapshot().Screen, "unknown category keeps the session on home")
}

// Scenario: a 299.99 grocery order produces a 299.99 transaction.
func TestSession_ProceedToPayment(t *testing.T) {
	session, req := toPayment(t)

	snap := session.Snapshot()
	assert.Equal(t, ScreenPayment, snap.Screen)
	assert.True(t, snap.AnalysisPending)
	require.NotNil(t, snap.Transaction)
	assert.InDelta(t, 299.99, snap.Transaction.Amount, 0.001)
	assert.Equal(t, "Whole Foods", snap.Transaction.Merchant)
	assert.Equal(t, model.CategoryGrocery, snap.Transaction.Category)
	assert.InDelta(t, 299.99, req.Transaction.Amount, 0.001)
}

func TestSession_ProceedToPaymentRequiresItems(t *testing.T) {
	empty := &fakeCatalog{
		categories: []model.Category{{ID: model.CategoryDining, Merchant: "Fine Dining"}},
		items:      map[model.CategoryID][]model.LineItem{model.CategoryDining: {}},
	}
	session := NewSession(empty)
	require.NoError(t, session.SelectCategory(context.Background(), model.CategoryDining))

	_, err := session.ProceedToPayment()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidTransition)
	assert.Equal(t, ScreenPreview, session.Snapshot().Screen)
}

// Scenario: the highest-value card becomes the default selection.
func TestSession_ApplyAnalysisAutoSelectsTopCard(t *testing.T) {
	session, req := toPayment(t)

	require.NoError(t, session.ApplyAnalysis(req.Token, twoCardPairs()))

	snap := session.Snapshot()
	assert.Equal(t, ScreenPayment, snap.Screen)
	assert.False(t, snap.AnalysisPending)
	require.Len(t, snap.RankedCards, 2)
	assert.Equal(t, "card_1", snap.RankedCards[0].Card.ID)
	assert.Equal(t, 1, snap.RankedCards[0].Rank)
	assert.Equal(t, "card_1", snap.SelectedCardID)
}

// Scenario: an explicit card choice survives a duplicate analyzer response
// for the same transaction.
func TestSession_ExplicitSelectionNotReverted(t *testing.T) {
	session, req := toPayment(t)
	require.NoError(t, session.ApplyAnalysis(req.Token, twoCardPairs()))

	require.NoError(t, session.SelectCard("card_2"))
	assert.Equal(t, "card_2", session.Snapshot().SelectedCardID)

	// Duplicate response arrives for the same transaction.
	require.NoError(t, session.ApplyAnalysis(req.Token, twoCardPairs()))
	assert.Equal(t, "card_2", session.Snapshot().SelectedCardID)
}

func TestSession_SelectCardUnknown(t *testing.T) {
	session, req := toPayment(t)
	require.NoError(t, session.ApplyAnalysis(req.Token, twoCardPairs()))

	err := session.SelectCard("card_9")
	require.Error(t, err)
	assert.Equal(t, "card_1", session.Snapshot().SelectedCardID, "selection unchanged on unknown card")
}

// Scenario: backing out of the payment screen makes the in-flight response
// stale; its arrival is a no-op.
func TestSession_StaleResponseDiscardedAfterBack(t *testing.T) {
	session, req := toPayment(t)

	require.NoError(t, session.Back())

	err := session.ApplyAnalysis(req.Token, twoCardPairs())
	assert.ErrorIs(t, err, common.ErrStaleTransaction)

	snap := session.Snapshot()
	assert.Equal(t, ScreenPreview, snap.Screen)
	assert.Empty(t, snap.RankedCards)
	assert.Nil(t, snap.Transaction)
	assert.False(t, snap.AnalysisPending)
}

func TestSession_StaleFailureDiscardedAfterBack(t *testing.T) {
	session, req := toPayment(t)
	require.NoError(t, session.Back())

	err := session.AnalysisFailed(req.Token)
	assert.ErrorIs(t, err, common.ErrStaleTransaction)
}

// Scenario: paying is refused while the valuation is still in flight.
func TestSession_ConfirmPayRefusedWhilePending(t *testing.T) {
	session, _ := toPayment(t)

	err := session.ConfirmPay()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrAnalysisPending)
	assert.Equal(t, ScreenPayment, session.Snapshot().Screen)
	assert.Empty(t, session.Snapshot().TransactionID)
}

func TestSession_ConfirmPayRefusedWithoutCards(t *testing.T) {
	session, req := toPayment(t)
	require.NoError(t, session.AnalysisFailed(req.Token))

	err := session.ConfirmPay()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrEmptyCardSet)
	assert.Equal(t, ScreenPayment, session.Snapshot().Screen)
}

func TestSession_ConfirmPay(t *testing.T) {
	session, req := toPayment(t)
	require.NoError(t, session.ApplyAnalysis(req.Token, twoCardPairs()))

	require.NoError(t, session.ConfirmPay())

	snap := session.Snapshot()
	assert.Equal(t, ScreenSuccess, snap.Screen)
	assert.Regexp(t, `^TXN[0-9A-Z]{9}$`, snap.TransactionID)
	require.NotNil(t, snap.Transaction)
	assert.InDelta(t, 299.99, snap.Transaction.Amount, 0.001)
}

func TestSession_DoneResetsEverything(t *testing.T) {
	session, req := toPayment(t)
	require.NoError(t, session.ApplyAnalysis(req.Token, twoCardPairs()))
	require.NoError(t, session.ConfirmPay())

	require.NoError(t, session.Done())

	snap := session.Snapshot()
	assert.Equal(t, ScreenHome, snap.Screen)
	assert.Nil(t, snap.Category)
	assert.Empty(t, snap.Items)
	assert.Nil(t, snap.Transaction)
	assert.Empty(t, snap.RankedCards)
	assert.Empty(t, snap.SelectedCardID)
	assert.Empty(t, snap.TransactionID)
}

func TestSession_RetryAnalysis(t *testing.T) {
	session, req := toPayment(t)
	require.NoError(t, session.AnalysisFailed(req.Token))

	retry, err := session.RetryAnalysis()
	require.NoError(t, err)
	assert.NotEqual(t, req.Token, retry.Token, "retry must supersede the failed request")
	assert.Equal(t, req.Transaction, retry.Transaction)

	// The old token no longer applies.
	err = session.ApplyAnalysis(req.Token, twoCardPairs())
	assert.ErrorIs(t, err, common.ErrStaleTransaction)

	// The new one does.
	require.NoError(t, session.ApplyAnalysis(retry.Token, twoCardPairs()))
	assert.Equal(t, "card_1", session.Snapshot().SelectedCardID)
}

func TestSession_RetryRefusedWhilePending(t *testing.T) {
	session, _ := toPayment(t)

	_, err := session.RetryAnalysis()
	assert.ErrorIs(t, err, common.ErrAnalysisPending)
}

func TestSession_ApplyAnalysisEmptyCardSet(t *testing.T) {
	session, req := toPayment(t)

	err := session.ApplyAnalysis(req.Token, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrEmptyCardSet)

	snap := session.Snapshot()
	assert.False(t, snap.AnalysisPending, "a resolved empty response is no longer pending")
	assert.Empty(t, snap.RankedCards)
	assert.Empty(t, snap.SelectedCardID)
}

func TestSession_ApplyAnalysisInvalidBreakdown(t *testing.T) {
	session, req := toPayment(t)

	bad := []model.CardReward{{
		Card:    model.Card{ID: "card_1"},
		Rewards: model.RewardBreakdown{TotalValue: -1.00},
	}}
	err := session.ApplyAnalysis(req.Token, bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidBreakdown)
	assert.Empty(t, session.Snapshot().RankedCards)
}

func TestSession_BackFromPreview(t *testing.T) {
	session := NewSession(groceryCatalog())
	require.NoError(t, session.SelectCategory(context.Background(), model.CategoryGrocery))

	require.NoError(t, session.Back())

	snap := session.Snapshot()
	assert.Equal(t, ScreenHome, snap.Screen)
	assert.Nil(t, snap.Category)
	assert.Empty(t, snap.Items)
}

func TestSession_InvalidTransitions(t *testing.T) {
	session := NewSession(groceryCatalog())

	// Home has no back, no payment, no pay, no done.
	assert.Error(t, session.Back())
	_, err := session.ProceedToPayment()
	assert.Error(t, err)
	assert.Error(t, session.ConfirmPay())
	assert.Error(t, session.Done())
	assert.Error(t, session.SelectCard("card_1"))
	assert.Equal(t, ScreenHome, session.Snapshot().Screen)

	// Success has no back.
	sessionAtSuccess, req := toPayment(t)
	require.NoError(t, sessionAtSuccess.ApplyAnalysis(req.Token, twoCardPairs()))
	require.NoError(t, sessionAtSuccess.ConfirmPay())
	assert.Error(t, sessionAtSuccess.Back())
	assert.Equal(t, ScreenSuccess, sessionAtSuccess.Snapshot().Screen)

	// Selecting a second category mid-flow is not a transition.
	assert.Error(t, sessionAtSuccess.SelectCategory(context.Background(), model.CategoryGrocery))
}

func TestSession_SnapshotIsIsolated(t *testing.T) {
	session, req := toPayment(t)
	require.NoError(t, session.ApplyAnalysis(req.Token, twoCardPairs()))

	snap := session.Snapshot()
	snap.RankedCards[0].Card.ID = "tampered"
	snap.Items[0].UnitPrice = 0

	fresh := session.Snapshot()
	assert.Equal(t, "card_1", fresh.RankedCards[0].Card.ID)
	assert.InDelta(t, 299.99, fresh.Items[0].UnitPrice, 0.001)
}
