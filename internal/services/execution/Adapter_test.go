package execution

import (
	"context"
	"errors"
	"testing"

	"CryptoTradeAgent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderClient struct {
	err      error
	buys     int
	sells    int
	pair     string
	quantity float64
}

func (c *stubOrderClient) MarketBuy(_ context.Context, pair string, quantity float64) error {
	c.buys++
	c.pair = pair
	c.quantity = quantity
	return c.err
}

func (c *stubOrderClient) MarketSell(_ context.Context, pair string, quantity float64) error {
	c.sells++
	c.pair = pair
	c.quantity = quantity
	return c.err
}

func TestSimulatedFill_Buy(t *testing.T) {
	adapter := NewSimulatedAdapter(0.001, 0.0005)

	price, err := adapter.Fill(context.Background(), models.SignalBuy, 50000, 100)
	require.NoError(t, err)
	assert.InDelta(t, 50075.0, price, 1e-9, "buy fills above the quote by spread plus slippage")
}

func TestSimulatedFill_Sell(t *testing.T) {
	adapter := NewSimulatedAdapter(0.001, 0.0005)

	price, err := adapter.Fill(context.Background(), models.SignalSell, 50000, 100)
	require.NoError(t, err)
	assert.InDelta(t, 49925.0, price, 1e-9, "sell fills below the quote by spread plus slippage")
}

func TestSimulatedFill_NoSignal(t *testing.T) {
	adapter := NewSimulatedAdapter(0.001, 0.0005)

	_, err := adapter.Fill(context.Background(), models.SignalNone, 50000, 100)
	assert.ErrorIs(t, err, ErrExecutionFailed)
}

func TestLiveFill_ReturnsReferencePrice(t *testing.T) {
	client := &stubOrderClient{}
	adapter := NewLiveAdapter(client, "BTCUSDT")

	price, err := adapter.Fill(context.Background(), models.SignalBuy, 50000, 100)
	require.NoError(t, err)

	assert.Equal(t, 50000.0, price, "live fills at the reference price unchanged")
	assert.Equal(t, 1, client.buys)
	assert.Equal(t, "BTCUSDT", client.pair)
	assert.InDelta(t, 0.002, client.quantity, 1e-12, "order quantity is notional divided by price")
}

func TestLiveFill_SellRoutesToMarketSell(t *testing.T) {
	client := &stubOrderClient{}
	adapter := NewLiveAdapter(client, "ETHUSDT")

	_, err := adapter.Fill(context.Background(), models.SignalSell, 2000, 100)
	require.NoError(t, err)

	assert.Equal(t, 0, client.buys)
	assert.Equal(t, 1, client.sells)
}

func TestLiveFill_OrderFailure(t *testing.T) {
	client := &stubOrderClient{err: errors.New("insufficient margin")}
	adapter := NewLiveAdapter(client, "BTCUSDT")

	_, err := adapter.Fill(context.Background(), models.SignalBuy, 50000, 100)
	assert.ErrorIs(t, err, ErrExecutionFailed)
	assert.Contains(t, err.Error(), "insufficient margin")
}
