package marketdata

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"CryptoTradeAgent/config"
	"CryptoTradeAgent/internal/models"
)

// SyntheticSource synthesizes candles from a seeded random walk, so a fixed
// seed always produces the same price path. The first fetch builds the full
// history window; each later fetch advances the walk by one candle and
// returns the trailing window. No network involved.
type SyntheticSource struct {
	mu sync.Mutex

	rng        *rand.Rand
	basePrice  float64
	volatility float64

	price   float64
	history []models.Candle
	nextAt  time.Time
}

func NewSyntheticSource(seed int64, basePrice, volatility float64) *SyntheticSource {
	return &SyntheticSource{
		rng:        rand.New(rand.NewSource(seed)),
		basePrice:  basePrice,
		volatility: volatility,
		price:      basePrice,
	}
}

func (s *SyntheticSource) Fetch(_ context.Context, pair, timeframe string, limit int) ([]models.Candle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	step := config.TimeframeDuration(timeframe)

	if len(s.history) == 0 {
		// Anchor the window so the newest candle ends "now", keeping the
		// price path itself fully seed-determined.
		start := time.Now().UTC().Truncate(step).Add(-time.Duration(limit) * step)
		s.nextAt = start
		for i := 0; i < limit; i++ {
			s.history = append(s.history, s.nextCandle(pair, timeframe, step))
		}
		return s.window(limit), nil
	}

	s.history = append(s.history, s.nextCandle(pair, timeframe, step))
	if len(s.history) > 4*limit {
		s.history = s.history[len(s.history)-limit:]
	}

	return s.window(limit), nil
}

func (s *SyntheticSource) nextCandle(pair, timeframe string, step time.Duration) models.Candle {
	open := s.price

	// Random walk with normally distributed per-step returns
	change := s.price * s.volatility * s.rng.NormFloat64()
	closePrice := s.price + change
	if closePrice <= 0 {
		closePrice = open * 0.5
	}
	s.price = closePrice

	high := math.Max(open, closePrice) * (1 + s.volatility*s.rng.Float64()/2)
	low := math.Min(open, closePrice) * (1 - s.volatility*s.rng.Float64()/2)
	volume := s.basePrice * (0.5 + s.rng.Float64())

	candle := models.Candle{
		Pair:      pair,
		Timeframe: timeframe,
		OpenTime:  s.nextAt,
		CloseTime: s.nextAt.Add(step),
		Open:      open,
		High:      high,
		Low:       low,
		Close:     closePrice,
		Volume:    volume,
	}
	s.nextAt = s.nextAt.Add(step)
	return candle
}

func (s *SyntheticSource) window(limit int) []models.Candle {
	start := len(s.history) - limit
	if start < 0 {
		start = 0
	}
	out := make([]models.Candle, len(s.history)-start)
	copy(out, s.history[start:])
	return out
}
