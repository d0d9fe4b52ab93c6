package position

import (
	"testing"
	"time"

	"CryptoTradeAgent/config"
	"CryptoTradeAgent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.AgentConfig {
	return config.AgentConfig{
		ID:             "btcusdt",
		Pair:           "BTCUSDT",
		Mode:           "simulated",
		Timeframe:      "1h",
		Poll:           time.Minute,
		InitialBalance: 10000,
		PositionSize:   0.1,
		StopLoss:       0.02,
		TakeProfit:     0.04,
		RSIPeriod:      14,
		RSIOverbought:  70,
		RSIOversold:    30,
		MAFast:         20,
		MASlow:         50,
		MaxOpenTrades:  3,
		MaxDailyLoss:   0.05,
		MaxDrawdown:    0.15,
	}
}

func TestOpen_LongLevels(t *testing.T) {
	m := NewManager(testConfig())

	trade, err := m.Open(models.SignalBuy, 100, time.Now())
	require.NoError(t, err)

	assert.Equal(t, models.TradeSideLong, trade.Side)
	assert.Equal(t, 1000.0, trade.Size, "size is balance times position fraction")
	assert.InDelta(t, 98.0, trade.StopLossPrice, 1e-9)
	assert.InDelta(t, 104.0, trade.TakeProfitPrice, 1e-9)
	assert.Less(t, trade.StopLossPrice, trade.EntryPrice)
	assert.Less(t, trade.EntryPrice, trade.TakeProfitPrice)
	assert.Equal(t, models.TradeStatusOpen, trade.Status)
}

func TestOpen_ShortLevels(t *testing.T) {
	m := NewManager(testConfig())

	trade, err := m.Open(models.SignalSell, 100, time.Now())
	require.NoError(t, err)

	assert.Equal(t, models.TradeSideShort, trade.Side)
	assert.InDelta(t, 102.0, trade.StopLossPrice, 1e-9)
	assert.InDelta(t, 96.0, trade.TakeProfitPrice, 1e-9)
	assert.Greater(t, trade.StopLossPrice, trade.EntryPrice)
	assert.Greater(t, trade.EntryPrice, trade.TakeProfitPrice)
}

func TestOpen_RejectsAtCap(t *testing.T) {
	m := NewManager(testConfig())

	for i := 0; i < 3; i++ {
		_, err := m.Open(models.SignalBuy, 100, time.Now())
		require.NoError(t, err)
	}

	_, err := m.Open(models.SignalBuy, 100, time.Now())
	assert.ErrorIs(t, err, ErrMaxOpenTrades)
	assert.Equal(t, 3, m.OpenCount(), "a rejected open must leave the open set unchanged")
}

func TestEvaluateExits_LongStopLoss(t *testing.T) {
	m := NewManager(testConfig())

	_, err := m.Open(models.SignalBuy, 100, time.Now())
	require.NoError(t, err)

	exits := m.EvaluateExits(97)
	require.Len(t, exits, 1)
	assert.Equal(t, models.CloseReasonStopLoss, exits[0].Reason)

	// Price inside the levels triggers nothing
	assert.Empty(t, m.EvaluateExits(100))
}

func TestEvaluateExits_LongTakeProfit(t *testing.T) {
	m := NewManager(testConfig())

	_, err := m.Open(models.SignalBuy, 100, time.Now())
	require.NoError(t, err)

	exits := m.EvaluateExits(104.5)
	require.Len(t, exits, 1)
	assert.Equal(t, models.CloseReasonTakeProfit, exits[0].Reason)
}

func TestEvaluateExits_ShortSideIsFixedAtOpen(t *testing.T) {
	m := NewManager(testConfig())

	trade, err := m.Open(models.SignalSell, 100, time.Now())
	require.NoError(t, err)

	// Price above entry: the trade stays a short; no long stop-loss logic applies
	assert.Empty(t, m.EvaluateExits(101))
	assert.Equal(t, models.TradeSideShort, trade.Side)

	exits := m.EvaluateExits(102.5)
	require.Len(t, exits, 1)
	assert.Equal(t, models.CloseReasonStopLoss, exits[0].Reason)

	m2 := NewManager(testConfig())
	_, err = m2.Open(models.SignalSell, 100, time.Now())
	require.NoError(t, err)

	exits = m2.EvaluateExits(95)
	require.Len(t, exits, 1)
	assert.Equal(t, models.CloseReasonTakeProfit, exits[0].Reason)
}

func TestClose_StopLossPnL(t *testing.T) {
	m := NewManager(testConfig())
	now := time.Now()

	trade, err := m.Open(models.SignalBuy, 100, now)
	require.NoError(t, err)
	require.Equal(t, 1000.0, trade.Size)

	closed, err := m.Close(trade, 97, models.CloseReasonStopLoss, now)
	require.NoError(t, err)

	assert.InDelta(t, -30.0, closed.PnL, 1e-9, "pnl = (97-100)*1000/100")
	assert.InDelta(t, 9970.0, m.Balance(), 1e-9)
	assert.Equal(t, models.TradeStatusClosed, closed.Status)
	assert.Equal(t, models.CloseReasonStopLoss, closed.CloseReason)
	assert.Equal(t, 0, m.OpenCount())
}

func TestClose_IsTerminal(t *testing.T) {
	m := NewManager(testConfig())
	now := time.Now()

	trade, err := m.Open(models.SignalBuy, 100, now)
	require.NoError(t, err)

	_, err = m.Close(trade, 104, models.CloseReasonTakeProfit, now)
	require.NoError(t, err)
	balance := m.Balance()

	_, err = m.Close(trade, 97, models.CloseReasonStopLoss, now)
	assert.ErrorIs(t, err, ErrTradeNotOpen)
	assert.Equal(t, balance, m.Balance(), "a second close must not touch the ledger")
}

func TestClose_PnLSignConsistency(t *testing.T) {
	now := time.Now()

	m := NewManager(testConfig())
	long, err := m.Open(models.SignalBuy, 100, now)
	require.NoError(t, err)
	closed, err := m.Close(long, 103, models.CloseReasonTakeProfit, now)
	require.NoError(t, err)
	assert.Positive(t, closed.PnL, "long gains when price rises")

	m2 := NewManager(testConfig())
	short, err := m2.Open(models.SignalSell, 100, now)
	require.NoError(t, err)
	closed, err = m2.Close(short, 97, models.CloseReasonTakeProfit, now)
	require.NoError(t, err)
	assert.Positive(t, closed.PnL, "short gains when price falls")
}

func TestOpenTrades_ReturnsSnapshotCopy(t *testing.T) {
	m := NewManager(testConfig())

	_, err := m.Open(models.SignalBuy, 100, time.Now())
	require.NoError(t, err)

	snapshot := m.OpenTrades()
	require.Len(t, snapshot, 1)

	snapshot[0].EntryPrice = 1
	assert.Equal(t, 100.0, m.OpenTrades()[0].EntryPrice, "mutating the snapshot must not touch manager state")
}
