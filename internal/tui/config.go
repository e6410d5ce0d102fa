package tui

import (
	"github.com/cardwise/cardwise/internal/service"
	"github.com/cardwise/cardwise/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Catalog  service.CatalogProvider
	Analyzer service.RewardAnalyzer
	Theme    themes.Theme
	Retry    service.RetryOptions
	Width    int
	Height   int
	ShowHelp bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:    themes.Default,
		Width:    80,
		Height:   24,
		ShowHelp: true,
	}
}

// WithCatalog sets the catalog provider.
func WithCatalog(catalog service.CatalogProvider) Option {
	return func(c *Config) {
		c.Catalog = catalog
	}
}

// WithAnalyzer sets the reward analyzer.
func WithAnalyzer(analyzer service.RewardAnalyzer) Option {
	return func(c *Config) {
		c.Analyzer = analyzer
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithRetry sets retry behavior for analyzer requests.
func WithRetry(opts service.RetryOptions) Option {
	return func(c *Config) {
		c.Retry = opts
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
