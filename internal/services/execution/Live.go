package execution

import (
	"context"
	"fmt"

	"CryptoTradeAgent/internal/models"
)

// LiveAdapter submits a market order through the exchange client and fills
// at the reference price.
type LiveAdapter struct {
	client OrderClient
	pair   string
}

func NewLiveAdapter(client OrderClient, pair string) *LiveAdapter {
	return &LiveAdapter{
		client: client,
		pair:   pair,
	}
}

func (a *LiveAdapter) Fill(ctx context.Context, sig models.Signal, referencePrice, size float64) (float64, error) {
	if referencePrice <= 0 {
		return 0, fmt.Errorf("%w: invalid reference price %f", ErrExecutionFailed, referencePrice)
	}

	// Market orders are quoted in base currency
	quantity := size / referencePrice

	var err error
	switch sig {
	case models.SignalBuy:
		err = a.client.MarketBuy(ctx, a.pair, quantity)
	case models.SignalSell:
		err = a.client.MarketSell(ctx, a.pair, quantity)
	default:
		return 0, fmt.Errorf("%w: no actionable signal %q", ErrExecutionFailed, sig)
	}

	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExecutionFailed, err)
	}

	return referencePrice, nil
}
