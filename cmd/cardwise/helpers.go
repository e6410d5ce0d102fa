package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/cardwise/cardwise/internal/analyzer"
	"github.com/cardwise/cardwise/internal/service"
)

// newAnalyzer builds the reward analyzer from configuration: the offline demo
// analyzer when requested, otherwise the HTTP client against the configured
// backend.
func newAnalyzer() service.RewardAnalyzer {
	if viper.GetBool("analyzer.demo") {
		return analyzer.NewDemo()
	}

	opts := []analyzer.Option{}
	if timeout := viper.GetDuration("analyzer.timeout"); timeout > 0 {
		opts = append(opts, analyzer.WithTimeout(timeout))
	}

	return analyzer.NewClient(
		viper.GetString("analyzer.url"),
		viper.GetString("analyzer.user_id"),
		opts...,
	)
}

// retryOptions reads analyzer retry behavior from configuration.
func retryOptions() service.RetryOptions {
	opts := service.RetryOptions{
		MaxAttempts:  viper.GetInt("analyzer.retry.max_attempts"),
		InitialDelay: viper.GetDuration("analyzer.retry.initial_delay"),
		MaxDelay:     viper.GetDuration("analyzer.retry.max_delay"),
		Multiplier:   viper.GetFloat64("analyzer.retry.multiplier"),
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 2
	}
	if opts.InitialDelay <= 0 {
		opts.InitialDelay = 250 * time.Millisecond
	}
	return opts
}
