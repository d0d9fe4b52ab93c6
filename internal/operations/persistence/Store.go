package persistence

import (
	"log"

	"CryptoTradeAgent/internal/models"
	"CryptoTradeAgent/internal/repositories"
)

// Store records agent activity. Writes are fire-and-forget from the loop's
// perspective: failures are logged and never block a tick.
type Store interface {
	RecordTrade(agentID string, trade *models.Trade)
	RecordPerformance(agentID string, perf models.Performance)
	RecordMarketData(agentID string, candles []models.Candle)
}

// DBStore persists through the gorm repositories.
type DBStore struct {
	trades      *repositories.TradeRepository
	performance *repositories.PerformanceRepository
	candles     *repositories.CandleRepository
}

func NewDBStore(
	trades *repositories.TradeRepository,
	performance *repositories.PerformanceRepository,
	candles *repositories.CandleRepository,
) *DBStore {
	return &DBStore{
		trades:      trades,
		performance: performance,
		candles:     candles,
	}
}

func (s *DBStore) RecordTrade(agentID string, trade *models.Trade) {
	if err := s.trades.Save(trade); err != nil {
		log.Printf("[%s] Error recording trade: %v", agentID, err)
	}
}

func (s *DBStore) RecordPerformance(agentID string, perf models.Performance) {
	perf.AgentID = agentID
	if err := s.performance.Create(&perf); err != nil {
		log.Printf("[%s] Error recording performance: %v", agentID, err)
	}
}

func (s *DBStore) RecordMarketData(agentID string, candles []models.Candle) {
	for i := range candles {
		candles[i].AgentID = agentID
	}
	if err := s.candles.CreateBatch(candles); err != nil {
		log.Printf("[%s] Error recording market data: %v", agentID, err)
	}
}

// NullStore discards everything. Used for simulation runs without a
// database and in tests.
type NullStore struct{}

func NewNullStore() *NullStore {
	return &NullStore{}
}

func (NullStore) RecordTrade(string, *models.Trade)            {}
func (NullStore) RecordPerformance(string, models.Performance) {}
func (NullStore) RecordMarketData(string, []models.Candle)     {}
