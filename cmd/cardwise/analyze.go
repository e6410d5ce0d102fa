package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cardwise/cardwise/internal/cli"
	"github.com/cardwise/cardwise/internal/model"
	"github.com/cardwise/cardwise/internal/rewards"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Value a one-off purchase against your cards",
		Long: `Send a single transaction to the reward analyzer and print the ranked
card comparison, without entering the interactive flow.`,
		RunE: runAnalyze,
	}

	cmd.Flags().Float64P("amount", "a", 0, "Transaction amount (required)")
	cmd.Flags().StringP("merchant", "m", "", "Merchant name (required)")
	cmd.Flags().StringP("category", "c", "", "Category (airlines, grocery, bigticket, dining)")

	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("merchant")
	_ = cmd.MarkFlagRequired("category")

	_ = viper.BindPFlag("analyze.amount", cmd.Flags().Lookup("amount"))
	_ = viper.BindPFlag("analyze.merchant", cmd.Flags().Lookup("merchant"))
	_ = viper.BindPFlag("analyze.category", cmd.Flags().Lookup("category"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	category, err := model.ParseCategoryID(viper.GetString("analyze.category"))
	if err != nil {
		return err
	}

	txn := model.Transaction{
		Amount:   viper.GetFloat64("analyze.amount"),
		Merchant: viper.GetString("analyze.merchant"),
		Category: category,
	}
	if err := txn.Validate(); err != nil {
		return err
	}

	slog.Info(cli.FormatTitle("Comparing card rewards..."))

	pairs, err := newAnalyzer().AnalyzePurchase(cmd.Context(), txn)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	ranked, err := rewards.Rank(pairs)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	var b strings.Builder
	for _, card := range ranked {
		marker := " "
		if card.Rank == 1 {
			marker = cli.SuccessIcon
		}
		b.WriteString(fmt.Sprintf("%s #%d %s (%s •••• %s)\n", marker, card.Rank,
			card.Card.DisplayName, card.Card.Network, card.Card.Last4))
		b.WriteString(fmt.Sprintf("    Base $%.2f + Offer $%.2f = $%.2f (%.1f%%)\n",
			card.Rewards.BaseRewards.Value,
			card.Rewards.SpecialOffer.Value,
			card.Rewards.TotalValue,
			card.Rewards.EffectiveRate))
	}

	title := fmt.Sprintf("$%.2f at %s", txn.Amount, txn.Merchant)
	slog.Info(cli.RenderBox(title, strings.TrimRight(b.String(), "\n")))

	return nil
}
