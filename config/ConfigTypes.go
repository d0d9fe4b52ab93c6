package config

import "time"

type Config struct {
	Mode      string        `envconfig:"TRADING_MODE" default:"simulated"`
	Pairs     []string      `envconfig:"TRADING_PAIRS" default:"BTCUSDT"`
	Timeframe string        `envconfig:"TIMEFRAME" default:"1h"`
	Poll      time.Duration `envconfig:"POLL_INTERVAL" default:"60s"`

	InitialBalance float64 `envconfig:"INITIAL_BALANCE" default:"1000"`
	PositionSize   float64 `envconfig:"POSITION_SIZE" default:"0.1"`
	StopLoss       float64 `envconfig:"STOP_LOSS" default:"0.02"`
	TakeProfit     float64 `envconfig:"TAKE_PROFIT" default:"0.04"`

	RSIPeriod     int     `envconfig:"RSI_PERIOD" default:"14"`
	RSIOverbought float64 `envconfig:"RSI_OVERBOUGHT" default:"70"`
	RSIOversold   float64 `envconfig:"RSI_OVERSOLD" default:"30"`
	MAFast        int     `envconfig:"MA_FAST" default:"20"`
	MASlow        int     `envconfig:"MA_SLOW" default:"50"`

	MaxOpenTrades int     `envconfig:"MAX_OPEN_TRADES" default:"3"`
	MaxDailyLoss  float64 `envconfig:"MAX_DAILY_LOSS" default:"0.05"`
	MaxDrawdown   float64 `envconfig:"MAX_DRAWDOWN" default:"0.15"`

	// Simulated mode only
	Spread        float64 `envconfig:"SIM_SPREAD" default:"0.001"`
	Slippage      float64 `envconfig:"SIM_SLIPPAGE" default:"0.0005"`
	SyntheticSeed int64   `envconfig:"SIM_SEED" default:"42"`
	BasePrice     float64 `envconfig:"SIM_BASE_PRICE" default:"50000"`
	Volatility    float64 `envconfig:"SIM_VOLATILITY" default:"0.01"`

	Exchange ExchangeConfig
	Database DatabaseConfig
}

type ExchangeConfig struct {
	APIKey    string `envconfig:"BINANCE_API_KEY"`
	SecretKey string `envconfig:"BINANCE_SECRET_KEY"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
}

// AgentConfig is the immutable per-agent configuration derived from Config,
// one per trading pair.
type AgentConfig struct {
	ID        string
	Pair      string
	Mode      string
	Timeframe string
	Poll      time.Duration

	InitialBalance float64
	PositionSize   float64
	StopLoss       float64
	TakeProfit     float64

	RSIPeriod     int
	RSIOverbought float64
	RSIOversold   float64
	MAFast        int
	MASlow        int

	MaxOpenTrades int
	MaxDailyLoss  float64
	MaxDrawdown   float64

	Spread   float64
	Slippage float64
}
