package marketdata

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"CryptoTradeAgent/internal/models"
	"CryptoTradeAgent/internal/operations/binance"
)

// BinanceSource fetches candles from the Binance futures kline endpoint.
type BinanceSource struct {
	client *binance.Client
}

func NewBinanceSource(client *binance.Client) *BinanceSource {
	return &BinanceSource{client: client}
}

func (s *BinanceSource) Fetch(ctx context.Context, pair, timeframe string, limit int) ([]models.Candle, error) {
	klines, err := s.client.GetKlines(ctx, pair, timeframe, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching klines for %s: %w", pair, err)
	}

	candles := make([]models.Candle, 0, len(klines))
	for _, k := range klines {
		candles = append(candles, models.Candle{
			Pair:      pair,
			Timeframe: timeframe,
			OpenTime:  time.Unix(k.OpenTime/1000, 0),
			CloseTime: time.Unix(k.CloseTime/1000, 0),
			Open:      parseFloat(k.Open),
			High:      parseFloat(k.High),
			Low:       parseFloat(k.Low),
			Close:     parseFloat(k.Close),
			Volume:    parseFloat(k.Volume),
		})
	}

	return candles, nil
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("Error parsing float: %v", err)
		return 0
	}
	return f
}
