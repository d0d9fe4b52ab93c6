package position

import (
	"errors"
	"sync"
	"time"

	"CryptoTradeAgent/config"
	"CryptoTradeAgent/internal/models"
)

var (
	// ErrMaxOpenTrades rejects an open when the concurrency cap is reached.
	// It is a rejected operation, not a failure.
	ErrMaxOpenTrades = errors.New("maximum number of open trades reached")

	// ErrTradeNotOpen rejects a close for a trade that is not in the open
	// set. Closure is terminal; a closed trade cannot be closed again.
	ErrTradeNotOpen = errors.New("trade is not open")
)

// Exit pairs an open trade with the reason it should be closed.
type Exit struct {
	Trade  *models.Trade
	Reason string
}

// Manager owns the open trades and balance for one agent. The agent loop is
// the only writer; the lock keeps balance and open-trade reads consistent
// for concurrent reporting consumers.
type Manager struct {
	mu sync.RWMutex

	agentID        string
	pair           string
	balance        float64
	initialBalance float64

	positionSize float64
	stopLoss     float64
	takeProfit   float64

	maxOpenTrades int
	openTrades    []*models.Trade
}

func NewManager(cfg config.AgentConfig) *Manager {
	return &Manager{
		agentID:        cfg.ID,
		pair:           cfg.Pair,
		balance:        cfg.InitialBalance,
		initialBalance: cfg.InitialBalance,
		positionSize:   cfg.PositionSize,
		stopLoss:       cfg.StopLoss,
		takeProfit:     cfg.TakeProfit,
		maxOpenTrades:  cfg.MaxOpenTrades,
	}
}

// Open creates a new trade from a filled entry price. The side is fixed
// here, at open time, and never re-derived from price comparisons later.
func (m *Manager) Open(sig models.Signal, filledPrice float64, now time.Time) (*models.Trade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.openTrades) >= m.maxOpenTrades {
		return nil, ErrMaxOpenTrades
	}

	trade := &models.Trade{
		AgentID:    m.agentID,
		Pair:       m.pair,
		Size:       m.balance * m.positionSize,
		EntryPrice: filledPrice,
		OpenTime:   now,
		Status:     models.TradeStatusOpen,
	}

	if sig == models.SignalBuy {
		trade.Side = models.TradeSideLong
		trade.StopLossPrice = filledPrice * (1 - m.stopLoss)
		trade.TakeProfitPrice = filledPrice * (1 + m.takeProfit)
	} else {
		trade.Side = models.TradeSideShort
		trade.StopLossPrice = filledPrice * (1 + m.stopLoss)
		trade.TakeProfitPrice = filledPrice * (1 - m.takeProfit)
	}

	m.openTrades = append(m.openTrades, trade)
	return trade, nil
}

// EvaluateExits checks every open trade against the current price. Each
// trade is evaluated independently. When a gapped move would trip both
// levels at once, the stop loss wins.
func (m *Manager) EvaluateExits(currentPrice float64) []Exit {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var exits []Exit
	for _, trade := range m.openTrades {
		if trade.Side == models.TradeSideLong {
			if currentPrice <= trade.StopLossPrice {
				exits = append(exits, Exit{Trade: trade, Reason: models.CloseReasonStopLoss})
			} else if currentPrice >= trade.TakeProfitPrice {
				exits = append(exits, Exit{Trade: trade, Reason: models.CloseReasonTakeProfit})
			}
		} else {
			if currentPrice >= trade.StopLossPrice {
				exits = append(exits, Exit{Trade: trade, Reason: models.CloseReasonStopLoss})
			} else if currentPrice <= trade.TakeProfitPrice {
				exits = append(exits, Exit{Trade: trade, Reason: models.CloseReasonTakeProfit})
			}
		}
	}
	return exits
}

// Close realizes a trade's PnL into the balance and removes it from the
// open set. The update is atomic with respect to concurrent balance and
// open-trade reads.
func (m *Manager) Close(trade *models.Trade, currentPrice float64, reason string, now time.Time) (*models.Trade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i, t := range m.openTrades {
		if t == trade {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrTradeNotOpen
	}

	var pnl float64
	if trade.Side == models.TradeSideLong {
		pnl = (currentPrice - trade.EntryPrice) * trade.Size / trade.EntryPrice
	} else {
		pnl = (trade.EntryPrice - currentPrice) * trade.Size / trade.EntryPrice
	}

	trade.ClosePrice = currentPrice
	trade.PnL = pnl
	trade.CloseReason = reason
	trade.CloseTime = now
	trade.Status = models.TradeStatusClosed

	m.balance += pnl
	m.openTrades = append(m.openTrades[:idx], m.openTrades[idx+1:]...)

	return trade, nil
}

func (m *Manager) Balance() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.balance
}

func (m *Manager) InitialBalance() float64 {
	return m.initialBalance
}

func (m *Manager) OpenCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.openTrades)
}

// OpenTrades returns a snapshot copy of the open set for reporting.
func (m *Manager) OpenTrades() []models.Trade {
	m.mu.RLock()
	defer m.mu.RUnlock()

	trades := make([]models.Trade, 0, len(m.openTrades))
	for _, t := range m.openTrades {
		trades = append(trades, *t)
	}
	return trades
}
