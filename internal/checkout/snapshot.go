package checkout

import "github.com/cardwise/cardwise/internal/model"

// Snapshot is the read-only view of a session the presentation layer renders
// from. Slices are copied so a renderer can never mutate session state.
type Snapshot struct {
	Screen          Screen
	Category        *model.Category
	Items           []model.LineItem
	Subtotal        float64
	Transaction     *model.Transaction
	RankedCards     model.RankedCards
	SelectedCardID  string
	TransactionID   string
	AnalysisPending bool
}

// SelectedCard returns the ranked entry for the current selection, or nil.
func (s Snapshot) SelectedCard() *model.RankedCard {
	return s.RankedCards.ByID(s.SelectedCardID)
}

// Snapshot captures the current session state for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Screen:          s.screen,
		Subtotal:        model.OrderTotal(s.items),
		SelectedCardID:  s.selectedCardID,
		TransactionID:   s.transactionID,
		AnalysisPending: s.pending,
	}

	if s.category != nil {
		category := *s.category
		snap.Category = &category
	}
	if s.transaction != nil {
		txn := *s.transaction
		snap.Transaction = &txn
	}
	if len(s.items) > 0 {
		snap.Items = make([]model.LineItem, len(s.items))
		copy(snap.Items, s.items)
	}
	if len(s.ranked) > 0 {
		snap.RankedCards = make(model.RankedCards, len(s.ranked))
		copy(snap.RankedCards, s.ranked)
	}

	return snap
}
