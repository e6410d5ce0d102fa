package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cardwise/cardwise/internal/checkout"
	"github.com/cardwise/cardwise/internal/common"
	"github.com/cardwise/cardwise/internal/model"
)

// loadCategories loads the home screen listing from the catalog.
func (m Model) loadCategories() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		categories, err := m.config.Catalog.Categories(ctx)
		if err != nil {
			return categoriesLoadedMsg{err: err}
		}

		return categoriesLoadedMsg{categories: categories}
	}
}

// analyze sends the transaction to the reward analyzer. The session's request
// token travels with the result so stale responses can be discarded.
func (m Model) analyze(req *checkout.AnalysisRequest) tea.Cmd {
	analyzer := m.config.Analyzer
	retry := m.config.Retry

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var pairs []model.CardReward
		err := common.WithRetry(ctx, func() error {
			var opErr error
			pairs, opErr = analyzer.AnalyzePurchase(ctx, req.Transaction)
			return opErr
		}, retry)

		return analysisResultMsg{token: req.Token, pairs: pairs, err: err}
	}
}
