package models

import (
	"time"
)

type Candle struct {
	ID        uint      `gorm:"primaryKey"`
	AgentID   string    `gorm:"index"`
	Pair      string    `gorm:"index;not null"`
	Timeframe string    `gorm:"not null"`
	OpenTime  time.Time `gorm:"index;not null"`
	CloseTime time.Time `gorm:"index"`
	Open      float64   `gorm:"type:decimal(20,8)"`
	High      float64   `gorm:"type:decimal(20,8)"`
	Low       float64   `gorm:"type:decimal(20,8)"`
	Close     float64   `gorm:"type:decimal(20,8)"`
	Volume    float64   `gorm:"type:decimal(20,8)"`
}

const (
	CandleTimeframe1m  = "1m"
	CandleTimeframe5m  = "5m"
	CandleTimeframe15m = "15m"
	CandleTimeframe1h  = "1h"
	CandleTimeframe4h  = "4h"
	CandleTimeframe1d  = "1d"
)

// TableName sets the table name for Candle model
func (Candle) TableName() string {
	return "candles"
}
