package tui

import (
	"github.com/cardwise/cardwise/internal/model"
)

// Data loading messages.
type categoriesLoadedMsg struct {
	err        error
	categories []model.Category
}

// Async operation messages.
type analysisResultMsg struct {
	err   error
	pairs []model.CardReward
	token int
}

// Error handling.
type errorMsg struct {
	err     error
	context string
}
