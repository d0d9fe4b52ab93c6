package repositories

import (
	"CryptoTradeAgent/internal/models"
	"errors"

	"gorm.io/gorm"
)

type TradeRepository struct {
	db *gorm.DB
}

// TradeStats aggregates closed-trade results for one agent.
type TradeStats struct {
	TotalTrades   int64
	WinningTrades int64
	LosingTrades  int64
	TotalPnL      float64
	WinRate       float64
}

// NewTradeRepository creates a new instance of TradeRepository
func NewTradeRepository(db *gorm.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// Save creates or updates a Trade record
func (r *TradeRepository) Save(trade *models.Trade) error {
	if trade == nil {
		return errors.New("trade cannot be nil")
	}
	return r.db.Save(trade).Error
}

// FindByID retrieves a Trade record by its ID
func (r *TradeRepository) FindByID(id uint) (*models.Trade, error) {
	if id == 0 {
		return nil, errors.New("invalid id")
	}
	var trade models.Trade
	err := r.db.First(&trade, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &trade, err
}

// FindOpenByAgent retrieves all open Trade records for an agent
func (r *TradeRepository) FindOpenByAgent(agentID string) ([]models.Trade, error) {
	if agentID == "" {
		return nil, errors.New("invalid agent id")
	}
	var trades []models.Trade
	err := r.db.Where("agent_id = ? AND status = ?", agentID, models.TradeStatusOpen).
		Find(&trades).Error
	return trades, err
}

// FindByAgent retrieves recent Trade records for an agent, newest first
func (r *TradeRepository) FindByAgent(agentID string, limit int) ([]models.Trade, error) {
	if agentID == "" {
		return nil, errors.New("invalid agent id")
	}
	var trades []models.Trade
	err := r.db.Where("agent_id = ?", agentID).
		Order("open_time DESC").
		Limit(limit).
		Find(&trades).Error
	return trades, err
}

// GetStatistics aggregates closed-trade statistics for an agent
func (r *TradeRepository) GetStatistics(agentID string) (*TradeStats, error) {
	if agentID == "" {
		return nil, errors.New("invalid agent id")
	}

	var stats TradeStats
	err := r.db.Model(&models.Trade{}).
		Where("agent_id = ? AND status = ?", agentID, models.TradeStatusClosed).
		Count(&stats.TotalTrades).Error
	if err != nil {
		return nil, err
	}
	if stats.TotalTrades == 0 {
		return &stats, nil
	}

	err = r.db.Model(&models.Trade{}).
		Where("agent_id = ? AND status = ? AND pnl > 0", agentID, models.TradeStatusClosed).
		Count(&stats.WinningTrades).Error
	if err != nil {
		return nil, err
	}
	stats.LosingTrades = stats.TotalTrades - stats.WinningTrades

	err = r.db.Model(&models.Trade{}).
		Where("agent_id = ? AND status = ?", agentID, models.TradeStatusClosed).
		Select("COALESCE(SUM(pnl), 0) as total_pnl").
		Scan(&stats.TotalPnL).Error
	if err != nil {
		return nil, err
	}

	stats.WinRate = float64(stats.WinningTrades) / float64(stats.TotalTrades) * 100
	return &stats, nil
}
