package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cardwise/cardwise/internal/checkout"
	"github.com/cardwise/cardwise/internal/common"
	"github.com/cardwise/cardwise/internal/model"
	"github.com/cardwise/cardwise/internal/tui/themes"
)

// Model holds the main TUI state. It is a stateless renderer over the
// checkout session: every user intent becomes a session event, and every
// frame is drawn from a fresh session snapshot.
type Model struct {
	session    *checkout.Session
	lastError  error
	config     Config
	keymap     KeyMap
	theme      themes.Theme
	categories []model.Category
	spin       spinner.Model
	infoCardID string
	cursor     int
	width      int
	height     int
	showHelp   bool
	quitting   bool
	ready      bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		session:  checkout.NewSession(cfg.Catalog),
		config:   cfg,
		keymap:   DefaultKeyMap(),
		theme:    cfg.Theme,
		spin:     spin,
		width:    cfg.Width,
		height:   cfg.Height,
		showHelp: cfg.ShowHelp,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.loadCategories(),
		m.spin.Tick,
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case categoriesLoadedMsg:
		if msg.err != nil {
			m.lastError = common.NewUserError("Could not load categories", msg.err)
			return m, nil
		}
		m.categories = msg.categories
		m.ready = true
		return m, nil

	case analysisResultMsg:
		return m.handleAnalysisResult(msg), nil

	case errorMsg:
		common.LogError(msg.err, "TUI error", common.Fields{"context": msg.context})
		m.lastError = msg.err
		return m, nil
	}

	return m, nil
}

// handleAnalysisResult feeds an analyzer outcome back into the session.
// Results for an abandoned transaction are dropped without user-visible
// effect.
func (m Model) handleAnalysisResult(msg analysisResultMsg) Model {
	if msg.err != nil {
		if err := m.session.AnalysisFailed(msg.token); errors.Is(err, common.ErrStaleTransaction) {
			slog.Debug("Discarding failed analysis for stale transaction", "token", msg.token)
			return m
		}
		if errors.Is(msg.err, common.ErrMalformedResponse) {
			common.LogError(msg.err, "Analyzer response failed validation", common.Fields{"token": msg.token})
		} else {
			common.LogError(msg.err, "Purchase analysis failed", common.Fields{"token": msg.token})
		}
		m.lastError = common.NewUserError("Could not reach the rewards service", msg.err)
		return m
	}

	err := m.session.ApplyAnalysis(msg.token, msg.pairs)
	switch {
	case errors.Is(err, common.ErrStaleTransaction):
		slog.Debug("Discarding analysis for stale transaction", "token", msg.token)
	case errors.Is(err, common.ErrEmptyCardSet), errors.Is(err, common.ErrInvalidBreakdown):
		common.LogError(err, "Unusable analyzer response", common.Fields{"token": msg.token})
		m.lastError = common.NewUserError("No eligible payment methods", err)
	case err != nil:
		m.lastError = err
	default:
		m.lastError = nil
		m.cursor = m.selectedCardIndex()
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	switch m.session.Snapshot().Screen {
	case checkout.ScreenHome:
		return m.handleHomeKey(msg)
	case checkout.ScreenPreview:
		return m.handlePreviewKey(msg)
	case checkout.ScreenPayment:
		return m.handlePaymentKey(msg)
	case checkout.ScreenSuccess:
		return m.handleSuccessKey(msg)
	}
	return m, nil
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.categories)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keymap.Select):
		if m.cursor >= len(m.categories) {
			return m, nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := m.session.SelectCategory(ctx, m.categories[m.cursor].ID); err != nil {
			m.lastError = common.NewUserError("Could not open category", err)
			return m, nil
		}
		m.lastError = nil
	}
	return m, nil
}

func (m Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back):
		if err := m.session.Back(); err == nil {
			m.lastError = nil
		}
	case key.Matches(msg, m.keymap.Select):
		req, err := m.session.ProceedToPayment()
		if err != nil {
			m.lastError = err
			return m, nil
		}
		m.lastError = nil
		m.cursor = 0
		m.infoCardID = ""
		return m, tea.Batch(m.analyze(req), m.spin.Tick)
	}
	return m, nil
}

func (m Model) handlePaymentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.session.Snapshot()

	switch {
	case key.Matches(msg, m.keymap.Back):
		// Backing out while a request is in flight is always allowed; the
		// late response becomes stale and is dropped.
		if err := m.session.Back(); err == nil {
			m.lastError = nil
		}

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(snap.RankedCards)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.Select):
		if m.cursor < len(snap.RankedCards) {
			if err := m.session.SelectCard(snap.RankedCards[m.cursor].Card.ID); err != nil {
				m.lastError = err
			}
		}

	case key.Matches(msg, m.keymap.Info):
		if m.cursor < len(snap.RankedCards) {
			id := snap.RankedCards[m.cursor].Card.ID
			if m.infoCardID == id {
				m.infoCardID = ""
			} else {
				m.infoCardID = id
			}
		}

	case key.Matches(msg, m.keymap.Retry):
		if snap.AnalysisPending || len(snap.RankedCards) > 0 {
			return m, nil
		}
		req, err := m.session.RetryAnalysis()
		if err != nil {
			m.lastError = err
			return m, nil
		}
		m.lastError = nil
		return m, tea.Batch(m.analyze(req), m.spin.Tick)

	case key.Matches(msg, m.keymap.Pay):
		if err := m.session.ConfirmPay(); err != nil {
			if errors.Is(err, common.ErrAnalysisPending) {
				// The pay control is disabled while the valuation is in
				// flight; ignore the press.
				return m, nil
			}
			m.lastError = err
			return m, nil
		}
		m.lastError = nil
	}
	return m, nil
}

func (m Model) handleSuccessKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Select) {
		if err := m.session.Done(); err == nil {
			m.cursor = 0
			m.infoCardID = ""
			m.lastError = nil
		}
	}
	return m, nil
}

// selectedCardIndex returns the cursor position of the selected card.
func (m Model) selectedCardIndex() int {
	snap := m.session.Snapshot()
	for i, card := range snap.RankedCards {
		if card.Card.ID == snap.SelectedCardID {
			return i
		}
	}
	return 0
}
