package repositories

import (
	"CryptoTradeAgent/internal/models"
	"errors"

	"gorm.io/gorm"
)

type PerformanceRepository struct {
	db *gorm.DB
}

// NewPerformanceRepository creates a new instance of PerformanceRepository
func NewPerformanceRepository(db *gorm.DB) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

// Create adds a new Performance snapshot to the database
func (r *PerformanceRepository) Create(perf *models.Performance) error {
	if perf == nil {
		return errors.New("performance cannot be nil")
	}
	return r.db.Create(perf).Error
}

// FindByAgent retrieves recent snapshots for an agent, newest first
func (r *PerformanceRepository) FindByAgent(agentID string, limit int) ([]models.Performance, error) {
	if agentID == "" {
		return nil, errors.New("invalid agent id")
	}
	var snapshots []models.Performance
	err := r.db.Where("agent_id = ?", agentID).
		Order("created_at DESC").
		Limit(limit).
		Find(&snapshots).Error
	return snapshots, err
}

// GetLatest retrieves the most recent snapshot for an agent
func (r *PerformanceRepository) GetLatest(agentID string) (*models.Performance, error) {
	if agentID == "" {
		return nil, errors.New("invalid agent id")
	}
	var perf models.Performance
	err := r.db.Where("agent_id = ?", agentID).
		Order("created_at DESC").
		First(&perf).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &perf, err
}
