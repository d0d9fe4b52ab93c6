package models

import "time"

type Trade struct {
	ID      uint    `gorm:"primaryKey"`
	AgentID string  `gorm:"index;not null"`
	Pair    string  `gorm:"index;not null"`
	Side    string  `gorm:"not null"`
	Size    float64 `gorm:"type:decimal(20,8);not null"`

	EntryPrice      float64 `gorm:"type:decimal(20,8);not null"`
	StopLossPrice   float64 `gorm:"type:decimal(20,8);not null"`
	TakeProfitPrice float64 `gorm:"type:decimal(20,8);not null"`

	ClosePrice  float64 `gorm:"type:decimal(20,8)"`
	PnL         float64 `gorm:"type:decimal(20,8)"`
	CloseReason string

	OpenTime  time.Time `gorm:"index;not null"`
	CloseTime time.Time `gorm:"index"`
	Status    string    `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

const (
	TradeStatusOpen   = "open"
	TradeStatusClosed = "closed"

	TradeSideLong  = "long"
	TradeSideShort = "short"

	CloseReasonStopLoss   = "stop_loss"
	CloseReasonTakeProfit = "take_profit"
)

// Signal is the outcome of indicator evaluation for one tick.
type Signal string

const (
	SignalBuy  Signal = "buy"
	SignalSell Signal = "sell"
	SignalNone Signal = "none"
)
