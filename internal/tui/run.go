// Package tui renders the checkout session as an interactive terminal flow
// and forwards user intents into the session state machine.
package tui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the checkout TUI and blocks until the user quits.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Catalog == nil {
		return fmt.Errorf("catalog provider is required")
	}
	if cfg.Analyzer == nil {
		return fmt.Errorf("reward analyzer is required")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	program := tea.NewProgram(
		newModel(cfg),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("checkout flow failed: %w", err)
	}
	return nil
}
