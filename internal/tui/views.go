package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cardwise/cardwise/internal/checkout"
	"github.com/cardwise/cardwise/internal/common"
	"github.com/cardwise/cardwise/internal/model"
)

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.renderLoading("Loading catalog...")
	}

	snap := m.session.Snapshot()

	var content string
	switch snap.Screen {
	case checkout.ScreenHome:
		content = m.renderHome()
	case checkout.ScreenPreview:
		content = m.renderPreview(snap)
	case checkout.ScreenPayment:
		content = m.renderPayment(snap)
	case checkout.ScreenSuccess:
		content = m.renderSuccess(snap)
	}

	sections := []string{content}
	if m.lastError != nil {
		sections = append(sections, m.theme.StatusError.Render("⚠ "+userMessage(m.lastError)))
	}
	if m.showHelp {
		sections = append(sections, m.renderHelp(snap.Screen))
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

// renderLoading renders a centered waiting indicator.
func (m Model) renderLoading(text string) string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.spin.View(),
		"",
		m.theme.StatusMuted.Render(text),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderHome renders the category picker.
func (m Model) renderHome() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Where are you shopping?"))
	b.WriteString("\n")

	for i, category := range m.categories {
		accent := m.theme.CategoryAccent(category.ID)
		name := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(category.Name)
		line := fmt.Sprintf("%s\n%s · %d offers",
			name,
			category.Description,
			category.Offers,
		)

		card := m.theme.CategoryCard
		if i == m.cursor {
			card = card.BorderForeground(accent)
		} else {
			card = card.BorderForeground(m.theme.Border)
		}
		b.WriteString(card.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// renderPreview renders the order preview with its totals.
func (m Model) renderPreview(snap checkout.Snapshot) string {
	var b strings.Builder

	accent := m.theme.CategoryAccent(snap.Category.ID)
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(accent).Render(snap.Category.Merchant))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Order Preview"))
	b.WriteString("\n")

	for _, item := range snap.Items {
		name := item.Name
		if item.Quantity > 1 {
			name = fmt.Sprintf("%s ×%d", item.Name, item.Quantity)
		}
		b.WriteString(fmt.Sprintf("%s  %s\n   %s\n",
			m.theme.Bold.Render(name),
			m.theme.Amount.Render(fmt.Sprintf("$%.2f", item.Total())),
			m.theme.StatusMuted.Render(item.Description),
		))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  $%.2f\n", m.theme.StatusMuted.Render("Subtotal"), snap.Subtotal))
	b.WriteString(fmt.Sprintf("%s  %s\n", m.theme.StatusMuted.Render("Tax"), "Included"))
	b.WriteString(fmt.Sprintf("%s  %s\n",
		m.theme.Bold.Render("Total to Pay"),
		m.theme.Amount.Render(fmt.Sprintf("$%.2f", snap.Subtotal)),
	))
	b.WriteString("\n")
	b.WriteString(m.theme.Selected.Render("⏎ Continue to Payment"))

	return m.theme.BorderedBox.Render(b.String())
}

// renderPayment renders the card comparison and pay action.
func (m Model) renderPayment(snap checkout.Snapshot) string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Payment"))
	b.WriteString(m.theme.StatusMuted.Render("Amount to Pay"))
	b.WriteString("\n")
	b.WriteString(m.theme.Amount.Render(fmt.Sprintf("$%.2f", snap.Transaction.Amount)))
	b.WriteString("\n\n")

	switch {
	case snap.AnalysisPending:
		b.WriteString(m.spin.View())
		b.WriteString(m.theme.StatusMuted.Render(" Comparing card rewards..."))
		b.WriteString("\n")

	case len(snap.RankedCards) == 0:
		b.WriteString(m.theme.StatusError.Render("No eligible payment methods"))
		b.WriteString("\n")
		b.WriteString(m.theme.StatusMuted.Render("Press r to retry"))
		b.WriteString("\n")

	default:
		b.WriteString(m.theme.Bold.Render("Select Payment Method"))
		b.WriteString("\n")
		for i, card := range snap.RankedCards {
			b.WriteString(m.renderCardRow(snap, card, i == m.cursor))
			if m.infoCardID == card.Card.ID {
				b.WriteString(m.renderBreakdown(card))
			}
		}
		b.WriteString("\n")
		payLabel := fmt.Sprintf("p Pay $%.2f", snap.Transaction.Amount)
		if snap.SelectedCardID == "" {
			b.WriteString(m.theme.StatusMuted.Render(payLabel))
		} else {
			b.WriteString(m.theme.Selected.Render(payLabel))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderCardRow renders one candidate card with its total value.
func (m Model) renderCardRow(snap checkout.Snapshot, card model.RankedCard, focused bool) string {
	marker := "○"
	if card.Card.ID == snap.SelectedCardID {
		marker = "●"
	}

	line := fmt.Sprintf("%s %s  %s •••• %s  %s",
		marker,
		card.Card.DisplayName,
		card.Card.Network,
		card.Card.Last4,
		m.theme.Value.Render(fmt.Sprintf("($%.2f value)", card.Rewards.TotalValue)),
	)
	if card.Rank == 1 {
		line += m.theme.StatusMuted.Render("  best value")
	}

	style := m.theme.Box
	if focused {
		style = style.BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(m.theme.Primary)
	}
	return style.Render(line) + "\n"
}

// renderBreakdown renders the rewards detail panel for a card.
func (m Model) renderBreakdown(card model.RankedCard) string {
	var b strings.Builder
	b.WriteString(m.theme.Bold.Render("Rewards Breakdown"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Base Rewards   $%.2f\n", card.Rewards.BaseRewards.Value))
	b.WriteString(m.theme.StatusMuted.Render("  " + card.Rewards.BaseRewards.Description))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Special Offer  $%.2f\n", card.Rewards.SpecialOffer.Value))
	b.WriteString(m.theme.StatusMuted.Render("  " + card.Rewards.SpecialOffer.Description))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s    %s\n",
		m.theme.Bold.Render("Total Value"),
		m.theme.Value.Render(fmt.Sprintf("$%.2f", card.Rewards.TotalValue)),
	))
	b.WriteString(m.theme.StatusMuted.Render(
		fmt.Sprintf("  Effective reward rate: %.1f%%", card.Rewards.EffectiveRate)))
	b.WriteString("\n")

	return m.theme.BorderedBox.Render(b.String()) + "\n"
}

// renderSuccess renders the payment receipt.
func (m Model) renderSuccess(snap checkout.Snapshot) string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		lipgloss.NewStyle().Foreground(m.theme.Success).Bold(true).Render("✓ Payment Successful!"),
		"",
		m.theme.Normal.Render(fmt.Sprintf("Amount paid: $%.2f", snap.Transaction.Amount)),
		"",
		m.theme.StatusMuted.Render("Transaction ID"),
		m.theme.Bold.Render(snap.TransactionID),
		"",
		m.theme.Selected.Render("⏎ Done"),
	)
	return m.theme.BorderedBox.Render(content)
}

// renderHelp renders the context-sensitive key hints.
func (m Model) renderHelp(screen checkout.Screen) string {
	var hints []string
	switch screen {
	case checkout.ScreenHome:
		hints = []string{"↑/↓ navigate", "⏎ select", "q quit"}
	case checkout.ScreenPreview:
		hints = []string{"⏎ continue", "esc back", "q quit"}
	case checkout.ScreenPayment:
		hints = []string{"↑/↓ navigate", "⏎ select card", "i breakdown", "p pay", "esc back", "q quit"}
	case checkout.ScreenSuccess:
		hints = []string{"⏎ done", "q quit"}
	}
	return m.theme.StatusMuted.Render(strings.Join(hints, " · "))
}

// userMessage extracts the display message from an error.
func userMessage(err error) string {
	var userErr *common.UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}
