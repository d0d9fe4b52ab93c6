package execution

import (
	"context"
	"errors"

	"CryptoTradeAgent/internal/models"
)

// ErrExecutionFailed marks a fill that could not be completed. The failed
// trade action is skipped for this tick; there is no automatic retry.
var ErrExecutionFailed = errors.New("execution failed")

// Adapter turns a signal and a reference price into a filled entry price.
// size is the position notional in quote currency. The live variant
// delegates order submission to the exchange; the simulated variant models
// spread and slippage.
type Adapter interface {
	Fill(ctx context.Context, sig models.Signal, referencePrice, size float64) (float64, error)
}

// OrderClient places market orders on the exchange. Live mode only.
type OrderClient interface {
	MarketBuy(ctx context.Context, pair string, quantity float64) error
	MarketSell(ctx context.Context, pair string, quantity float64) error
}
