package models

import (
	"time"
)

// Performance is a per-tick snapshot of an agent's account state.
type Performance struct {
	ID      uint   `gorm:"primaryKey"`
	AgentID string `gorm:"index;not null"`

	Balance        float64 `gorm:"type:decimal(20,8);not null"`
	DailyLoss      float64 `gorm:"type:decimal(20,8)"`
	MaxDrawdown    float64 `gorm:"type:decimal(20,8)"`
	OpenTradeCount int

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (Performance) TableName() string {
	return "performance"
}
