package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func Load() (*Config, error) {
	// .env is optional; production deployments set real environment variables
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}

	return &cfg, nil
}

// AgentConfigs expands the shared configuration into one AgentConfig per
// trading pair. Each returned config is validated.
func (c *Config) AgentConfigs() ([]AgentConfig, error) {
	agents := make([]AgentConfig, 0, len(c.Pairs))
	for _, pair := range c.Pairs {
		ac := AgentConfig{
			ID:             strings.ToLower(pair),
			Pair:           pair,
			Mode:           c.Mode,
			Timeframe:      c.Timeframe,
			Poll:           c.Poll,
			InitialBalance: c.InitialBalance,
			PositionSize:   c.PositionSize,
			StopLoss:       c.StopLoss,
			TakeProfit:     c.TakeProfit,
			RSIPeriod:      c.RSIPeriod,
			RSIOverbought:  c.RSIOverbought,
			RSIOversold:    c.RSIOversold,
			MAFast:         c.MAFast,
			MASlow:         c.MASlow,
			MaxOpenTrades:  c.MaxOpenTrades,
			MaxDailyLoss:   c.MaxDailyLoss,
			MaxDrawdown:    c.MaxDrawdown,
			Spread:         c.Spread,
			Slippage:       c.Slippage,
		}
		if err := ac.Validate(); err != nil {
			return nil, fmt.Errorf("agent %s: %w", ac.ID, err)
		}
		agents = append(agents, ac)
	}
	return agents, nil
}

// Validate rejects malformed configurations before an agent is constructed.
func (a AgentConfig) Validate() error {
	if a.Pair == "" {
		return fmt.Errorf("trading pair is required")
	}
	if a.Mode != "live" && a.Mode != "simulated" {
		return fmt.Errorf("invalid mode %q", a.Mode)
	}
	if a.Poll <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", a.Poll)
	}
	if a.InitialBalance <= 0 {
		return fmt.Errorf("initial balance must be positive, got %f", a.InitialBalance)
	}
	if a.PositionSize <= 0 || a.PositionSize > 1 {
		return fmt.Errorf("position size must be in (0,1], got %f", a.PositionSize)
	}
	if a.StopLoss <= 0 || a.StopLoss >= 1 {
		return fmt.Errorf("stop loss must be in (0,1), got %f", a.StopLoss)
	}
	if a.TakeProfit <= 0 || a.TakeProfit >= 1 {
		return fmt.Errorf("take profit must be in (0,1), got %f", a.TakeProfit)
	}
	if a.RSIPeriod <= 0 || a.MAFast <= 0 || a.MASlow <= 0 {
		return fmt.Errorf("indicator periods must be positive")
	}
	if a.RSIOversold >= a.RSIOverbought {
		return fmt.Errorf("rsi oversold (%f) must be below overbought (%f)",
			a.RSIOversold, a.RSIOverbought)
	}
	if a.MaxOpenTrades < 1 {
		return fmt.Errorf("max open trades must be at least 1, got %d", a.MaxOpenTrades)
	}
	if a.MaxDailyLoss <= 0 || a.MaxDrawdown <= 0 {
		return fmt.Errorf("risk limits must be positive")
	}
	if a.Mode == "simulated" && (a.Spread < 0 || a.Slippage < 0) {
		return fmt.Errorf("spread and slippage must be non-negative")
	}
	return nil
}

// WarmupCandles is the minimum number of candles needed before the
// indicator snapshot is defined.
func (a AgentConfig) WarmupCandles() int {
	warmup := a.RSIPeriod + 1
	if a.MASlow > warmup {
		warmup = a.MASlow
	}
	return warmup
}

// helper kept for parity with callers expecting durations from timeframes
func TimeframeDuration(timeframe string) time.Duration {
	intervals := map[string]time.Duration{
		"1m":  time.Minute,
		"5m":  5 * time.Minute,
		"15m": 15 * time.Minute,
		"1h":  time.Hour,
		"4h":  4 * time.Hour,
		"1d":  24 * time.Hour,
	}
	if d, ok := intervals[timeframe]; ok {
		return d
	}
	return time.Hour
}
