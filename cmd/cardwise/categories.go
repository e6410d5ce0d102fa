package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardwise/cardwise/internal/catalog"
	"github.com/cardwise/cardwise/internal/cli"
	"github.com/cardwise/cardwise/internal/model"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the merchant categories and their order previews",
		RunE:  runCategories,
	}
}

func runCategories(cmd *cobra.Command, _ []string) error {
	provider := catalog.NewStaticProvider()

	categories, err := provider.Categories(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	for _, category := range categories {
		items, err := provider.Items(cmd.Context(), category.ID)
		if err != nil {
			return fmt.Errorf("failed to load items for %s: %w", category.ID, err)
		}

		var b strings.Builder
		b.WriteString(cli.SubtleStyle.Render(category.Description))
		b.WriteString("\n")
		for _, item := range items {
			b.WriteString(fmt.Sprintf("%s  $%.2f", item.Name, item.Total()))
			if item.Quantity > 1 {
				b.WriteString(fmt.Sprintf(" (×%d)", item.Quantity))
			}
			b.WriteString("\n")
		}
		b.WriteString(cli.BoldStyle.Render(fmt.Sprintf("Total $%.2f", model.OrderTotal(items))))

		title := fmt.Sprintf("%s — %s", category.Name, category.Merchant)
		slog.Info(cli.RenderBox(title, b.String()))
	}

	return nil
}
