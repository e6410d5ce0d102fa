// Package checkout owns the session state machine for the simulated
// point-of-sale flow: which screen is active, what the session has
// accumulated so far, and which transitions are legal.
//
// All mutations happen through the event methods below. A single session is
// live per user interaction and transitions are applied from one goroutine
// (the presentation layer's update loop), so no locking is needed. The only
// suspending operation, the reward analysis, runs outside the session: an
// AnalysisRequest is handed to the caller, and the response re-enters through
// ApplyAnalysis where it is matched against the originating transaction.
package checkout

import (
	"context"
	"fmt"

	"github.com/cardwise/cardwise/internal/common"
	"github.com/cardwise/cardwise/internal/model"
	"github.com/cardwise/cardwise/internal/rewards"
	"github.com/cardwise/cardwise/internal/service"
)

// Screen identifies the active step of the checkout flow.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenPreview
	ScreenPayment
	ScreenSuccess
)

// String implements fmt.Stringer.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenPreview:
		return "preview"
	case ScreenPayment:
		return "payment"
	case ScreenSuccess:
		return "success"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// AnalysisRequest is the effect emitted when the session enters the payment
// screen: the caller sends Transaction to the reward analyzer and feeds the
// outcome back with the same Token. Responses carrying a stale token are
// discarded.
type AnalysisRequest struct {
	Token       int
	Transaction model.Transaction
}

// Session is the aggregate root of one end-to-end checkout attempt.
type Session struct {
	catalog        service.CatalogProvider
	category       *model.Category
	transaction    *model.Transaction
	items          []model.LineItem
	ranked         model.RankedCards
	selectedCardID string
	transactionID  string
	screen         Screen
	token          int
	pending        bool
	userSelected   bool
}

// NewSession creates a session on the home screen with the given catalog
// collaborator.
func NewSession(catalog service.CatalogProvider) *Session {
	return &Session{
		catalog: catalog,
		screen:  ScreenHome,
	}
}

// SelectCategory moves Home → Preview, loading the category's order preview
// from the catalog. An unknown category leaves the session on Home.
func (s *Session) SelectCategory(ctx context.Context, id model.CategoryID) error {
	if s.screen != ScreenHome {
		return fmt.Errorf("%w: select category on %s", common.ErrInvalidTransition, s.screen)
	}

	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	var category *model.Category
	for i := range categories {
		if categories[i].ID == id {
			category = &categories[i]
			break
		}
	}
	if category == nil {
		return fmt.Errorf("%w: %q", common.ErrUnknownCategory, id)
	}

	items, err := s.catalog.Items(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load items: %w", err)
	}

	s.category = category
	s.items = items
	s.screen = ScreenPreview
	return nil
}

// ProceedToPayment moves Preview → Payment. The transaction is created from
// the order total and frozen for the rest of the session; the returned
// request must be resolved via ApplyAnalysis or AnalysisFailed.
func (s *Session) ProceedToPayment() (*AnalysisRequest, error) {
	if s.screen != ScreenPreview {
		return nil, fmt.Errorf("%w: proceed to payment on %s", common.ErrInvalidTransition, s.screen)
	}
	if len(s.items) == 0 {
		return nil, fmt.Errorf("%w: order preview is empty", common.ErrInvalidTransition)
	}

	txn := model.Transaction{
		Amount:   model.OrderTotal(s.items),
		Merchant: s.category.Merchant,
		Category: s.category.ID,
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("cannot build transaction: %w", err)
	}

	s.transaction = &txn
	s.screen = ScreenPayment
	s.pending = true
	s.token++

	return &AnalysisRequest{Token: s.token, Transaction: txn}, nil
}

// RetryAnalysis re-issues the analyzer request for the current transaction
// after a failure. Only valid on the payment screen with no request in
// flight.
func (s *Session) RetryAnalysis() (*AnalysisRequest, error) {
	if s.screen != ScreenPayment || s.transaction == nil {
		return nil, fmt.Errorf("%w: retry analysis on %s", common.ErrInvalidTransition, s.screen)
	}
	if s.pending {
		return nil, common.ErrAnalysisPending
	}

	s.pending = true
	s.token++
	return &AnalysisRequest{Token: s.token, Transaction: *s.transaction}, nil
}

// ApplyAnalysis ranks an analyzer response and installs it on the session.
// Responses for a superseded transaction return ErrStaleTransaction and leave
// the session untouched. If the caller has not chosen a card explicitly, the
// rank-1 card becomes the selection; an explicit choice is never reverted by
// a later response for the same transaction.
func (s *Session) ApplyAnalysis(token int, pairs []model.CardReward) error {
	if token != s.token || s.screen != ScreenPayment {
		return common.ErrStaleTransaction
	}

	s.pending = false

	ranked, err := rewards.Rank(pairs)
	if err != nil {
		s.ranked = nil
		return err
	}

	s.ranked = ranked
	if !s.userSelected {
		s.selectedCardID = ranked.Top().Card.ID
	}
	return nil
}

// AnalysisFailed records that the outstanding analyzer request failed so the
// payment screen can offer a retry. Failures of superseded requests are
// discarded.
func (s *Session) AnalysisFailed(token int) error {
	if token != s.token || s.screen != ScreenPayment {
		return common.ErrStaleTransaction
	}
	s.pending = false
	return nil
}

// SelectCard records an explicit card choice. The card must be present in the
// current ranking.
func (s *Session) SelectCard(cardID string) error {
	if s.screen != ScreenPayment {
		return fmt.Errorf("%w: select card on %s", common.ErrInvalidTransition, s.screen)
	}
	if s.ranked.ByID(cardID) == nil {
		return fmt.Errorf("%w: card %q not in ranking", common.ErrInvalidTransition, cardID)
	}
	s.selectedCardID = cardID
	s.userSelected = true
	return nil
}

// ConfirmPay moves Payment → Success. Paying is refused until an analyzer
// response has been applied and a card is selected; paying against an empty
// reward set is meaningless.
func (s *Session) ConfirmPay() error {
	if s.screen != ScreenPayment {
		return fmt.Errorf("%w: confirm pay on %s", common.ErrInvalidTransition, s.screen)
	}
	if s.pending {
		return common.ErrAnalysisPending
	}
	if len(s.ranked) == 0 || s.selectedCardID == "" {
		return common.ErrEmptyCardSet
	}

	s.transactionID = model.NewTransactionID()
	s.screen = ScreenSuccess
	return nil
}

// Back navigates one level up: Preview → Home or Payment → Preview. Backing
// out of the payment screen abandons the transaction; any analyzer response
// still in flight becomes stale.
func (s *Session) Back() error {
	switch s.screen {
	case ScreenPreview:
		s.category = nil
		s.items = nil
		s.screen = ScreenHome
		return nil
	case ScreenPayment:
		s.clearPayment()
		s.screen = ScreenPreview
		return nil
	default:
		return fmt.Errorf("%w: back on %s", common.ErrInvalidTransition, s.screen)
	}
}

// Done moves Success → Home, fully resetting the session.
func (s *Session) Done() error {
	if s.screen != ScreenSuccess {
		return fmt.Errorf("%w: done on %s", common.ErrInvalidTransition, s.screen)
	}
	s.Reset()
	return nil
}

// Reset returns the session to its initial state.
func (s *Session) Reset() {
	s.category = nil
	s.items = nil
	s.clearPayment()
	s.transactionID = ""
	s.screen = ScreenHome
}

// clearPayment drops everything accumulated on the payment screen and bumps
// the token so outstanding responses are discarded on arrival.
func (s *Session) clearPayment() {
	s.transaction = nil
	s.ranked = nil
	s.selectedCardID = ""
	s.userSelected = false
	s.pending = false
	s.token++
}
