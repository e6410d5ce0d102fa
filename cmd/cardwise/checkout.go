package main

import (
	"github.com/spf13/cobra"

	"github.com/cardwise/cardwise/internal/catalog"
	"github.com/cardwise/cardwise/internal/tui"
)

func checkoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Run the interactive checkout flow",
		Long: `Walk through a simulated purchase: pick a category, review the order,
compare what each card earns on it, and confirm payment.`,
		RunE: runCheckout,
	}
}

func runCheckout(cmd *cobra.Command, _ []string) error {
	return tui.Run(
		cmd.Context(),
		tui.WithCatalog(catalog.NewStaticProvider()),
		tui.WithAnalyzer(newAnalyzer()),
		tui.WithRetry(retryOptions()),
	)
}
