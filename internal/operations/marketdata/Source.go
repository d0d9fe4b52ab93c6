package marketdata

import (
	"context"

	"CryptoTradeAgent/internal/models"
)

// Source supplies an ordered candle window, most recent last. The live
// variant polls the exchange; the synthetic variant generates a seeded
// random walk with the same call signature.
type Source interface {
	Fetch(ctx context.Context, pair, timeframe string, limit int) ([]models.Candle, error)
}
