package repositories

import (
	"CryptoTradeAgent/internal/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

type CandleRepository struct {
	db *gorm.DB
}

// NewCandleRepository creates a new instance of CandleRepository
func NewCandleRepository(db *gorm.DB) *CandleRepository {
	return &CandleRepository{db: db}
}

// Create adds a new Candle record to the database
func (r *CandleRepository) Create(candle *models.Candle) error {
	if candle == nil {
		return errors.New("candle cannot be nil")
	}
	return r.db.Create(candle).Error
}

// CreateBatch stores a batch of Candle records
func (r *CandleRepository) CreateBatch(candles []models.Candle) error {
	if len(candles) == 0 {
		return nil
	}
	return r.db.Create(&candles).Error
}

// GetHistory gets candles for a pair and timeframe within a time range
func (r *CandleRepository) GetHistory(pair, timeframe string, start, end time.Time) ([]models.Candle, error) {
	if pair == "" || timeframe == "" {
		return nil, errors.New("invalid pair or timeframe")
	}
	var candles []models.Candle
	err := r.db.Where("pair = ? AND timeframe = ? AND open_time BETWEEN ? AND ?",
		pair, timeframe, start, end).
		Order("open_time ASC").
		Find(&candles).Error
	return candles, err
}

// GetLatest gets the most recent candle for a pair and timeframe
func (r *CandleRepository) GetLatest(pair, timeframe string) (*models.Candle, error) {
	if pair == "" || timeframe == "" {
		return nil, errors.New("invalid pair or timeframe")
	}
	var candle models.Candle
	err := r.db.Where("pair = ? AND timeframe = ?", pair, timeframe).
		Order("open_time DESC").
		First(&candle).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &candle, err
}
