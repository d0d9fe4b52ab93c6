package repositories

import (
	"CryptoTradeAgent/internal/models"
	"errors"

	"gorm.io/gorm"
)

type BotRepository struct {
	db *gorm.DB
}

// NewBotRepository creates a new instance of BotRepository
func NewBotRepository(db *gorm.DB) *BotRepository {
	return &BotRepository{db: db}
}

// Register creates the registration record for an agent, or refreshes it
// when the agent already exists.
func (r *BotRepository) Register(bot *models.Bot) error {
	if bot == nil {
		return errors.New("bot cannot be nil")
	}

	var existing models.Bot
	err := r.db.Where("agent_id = ?", bot.AgentID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(bot).Error
	}
	if err != nil {
		return err
	}

	bot.ID = existing.ID
	bot.CreatedAt = existing.CreatedAt
	return r.db.Save(bot).Error
}

// FindByAgentID retrieves a Bot record by agent id
func (r *BotRepository) FindByAgentID(agentID string) (*models.Bot, error) {
	if agentID == "" {
		return nil, errors.New("invalid agent id")
	}
	var bot models.Bot
	err := r.db.Where("agent_id = ?", agentID).First(&bot).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &bot, err
}

// FindAll retrieves all Bot records
func (r *BotRepository) FindAll() ([]models.Bot, error) {
	var bots []models.Bot
	err := r.db.Find(&bots).Error
	return bots, err
}
