package models

import (
	"time"
)

// Bot is the registration record for one configured agent.
type Bot struct {
	ID      uint   `gorm:"primaryKey"`
	AgentID string `gorm:"uniqueIndex;not null"`
	Pair    string `gorm:"not null"`
	Mode    string `gorm:"not null"`

	Timeframe      string
	InitialBalance float64 `gorm:"type:decimal(20,8)"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

const (
	ModeLive      = "live"
	ModeSimulated = "simulated"
)
