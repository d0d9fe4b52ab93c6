package execution

import (
	"context"
	"fmt"

	"CryptoTradeAgent/internal/models"
)

// SimulatedAdapter models execution cost by adjusting the reference price
// with spread and slippage. Buys fill above the quote, sells below. It
// never fails for an actionable signal.
type SimulatedAdapter struct {
	spread   float64
	slippage float64
}

func NewSimulatedAdapter(spread, slippage float64) *SimulatedAdapter {
	return &SimulatedAdapter{
		spread:   spread,
		slippage: slippage,
	}
}

func (a *SimulatedAdapter) Fill(_ context.Context, sig models.Signal, referencePrice, _ float64) (float64, error) {
	switch sig {
	case models.SignalBuy:
		return referencePrice * (1 + a.spread + a.slippage), nil
	case models.SignalSell:
		return referencePrice * (1 - a.spread - a.slippage), nil
	default:
		return 0, fmt.Errorf("%w: no actionable signal %q", ErrExecutionFailed, sig)
	}
}
