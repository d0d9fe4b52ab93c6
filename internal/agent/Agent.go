package agent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"CryptoTradeAgent/config"
	"CryptoTradeAgent/internal/models"
	"CryptoTradeAgent/internal/operations/marketdata"
	"CryptoTradeAgent/internal/operations/persistence"
	"CryptoTradeAgent/internal/services/execution"
	"CryptoTradeAgent/internal/services/indicators"
	"CryptoTradeAgent/internal/services/position"
	"CryptoTradeAgent/internal/services/risk"
	"CryptoTradeAgent/internal/services/signal"
)

// candleWindow is the number of candles fetched per tick
const candleWindow = 100

// Agent runs the trading loop for one pair: fetch candles, compute
// indicators, evaluate the signal, execute, manage exits, update risk,
// persist, sleep. All state is private to the agent's goroutine.
type Agent struct {
	cfg config.AgentConfig

	source    marketdata.Source
	indicator *indicators.IndicatorService
	signals   *signal.Generator
	exec      execution.Adapter
	positions *position.Manager
	risk      *risk.Controller
	store     persistence.Store

	now func() time.Time
}

func New(
	cfg config.AgentConfig,
	source marketdata.Source,
	exec execution.Adapter,
	store persistence.Store,
) (*Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid agent config: %w", err)
	}

	generator, err := signal.NewGenerator(cfg.RSIOversold, cfg.RSIOverbought)
	if err != nil {
		return nil, err
	}

	return &Agent{
		cfg:       cfg,
		source:    source,
		indicator: indicators.NewIndicatorService(),
		signals:   generator,
		exec:      exec,
		positions: position.NewManager(cfg),
		risk:      risk.NewController(cfg.InitialBalance, cfg.MaxDailyLoss, cfg.MaxDrawdown),
		store:     store,
		now:       time.Now,
	}, nil
}

func (a *Agent) ID() string {
	return a.cfg.ID
}

// Run executes the poll loop until the context is cancelled or the risk
// controller halts the agent. Halting is a deliberate business-rule stop,
// not a crash.
func (a *Agent) Run(ctx context.Context) {
	log.Printf("[%s] Starting agent (%s, %s mode)", a.cfg.ID, a.cfg.Pair, a.cfg.Mode)

	for {
		if !a.tick(ctx) {
			a.flush()
			log.Printf("[%s] Risk limits exceeded. Halting agent (daily loss: %.4f, max drawdown: %.4f)",
				a.cfg.ID, a.risk.DailyLoss(), a.risk.MaxDrawdownSeen())
			return
		}

		select {
		case <-ctx.Done():
			a.flush()
			log.Printf("[%s] Agent stopped", a.cfg.ID)
			return
		case <-time.After(a.cfg.Poll):
		}
	}
}

// tick runs one pass of the loop. It returns false once the agent is
// halted. A failed fetch skips the rest of the tick; every tick is an
// independent attempt with no backoff.
func (a *Agent) tick(ctx context.Context) bool {
	candles, err := a.source.Fetch(ctx, a.cfg.Pair, a.cfg.Timeframe, candleWindow)
	if err != nil {
		log.Printf("[%s] Error fetching market data: %v", a.cfg.ID, err)
		return true
	}
	if len(candles) == 0 {
		log.Printf("[%s] No market data returned", a.cfg.ID)
		return true
	}

	latest := candles[len(candles)-1]
	a.store.RecordMarketData(a.cfg.ID, []models.Candle{latest})

	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}

	snapshot := a.indicator.Compute(closes, a.cfg.RSIPeriod, a.cfg.MAFast, a.cfg.MASlow)
	sig := a.signals.Evaluate(snapshot)
	currentPrice := latest.Close

	if sig != models.SignalNone {
		a.execute(ctx, sig, currentPrice)
	}

	a.manageExits(currentPrice)

	status := a.risk.Tick(a.positions.Balance(), a.now())
	a.store.RecordPerformance(a.cfg.ID, a.performanceSnapshot())

	return status != risk.StatusHalt
}

func (a *Agent) execute(ctx context.Context, sig models.Signal, referencePrice float64) {
	if a.positions.OpenCount() >= a.cfg.MaxOpenTrades {
		log.Printf("[%s] Maximum number of open trades reached", a.cfg.ID)
		return
	}

	size := a.positions.Balance() * a.cfg.PositionSize
	filledPrice, err := a.exec.Fill(ctx, sig, referencePrice, size)
	if err != nil {
		log.Printf("[%s] Error executing trade: %v", a.cfg.ID, err)
		return
	}

	trade, err := a.positions.Open(sig, filledPrice, a.now())
	if errors.Is(err, position.ErrMaxOpenTrades) {
		log.Printf("[%s] Maximum number of open trades reached", a.cfg.ID)
		return
	}
	if err != nil {
		log.Printf("[%s] Error opening trade: %v", a.cfg.ID, err)
		return
	}

	a.store.RecordTrade(a.cfg.ID, trade)
	log.Printf("[%s] %s order executed at %.8f (%s)", a.cfg.ID, sig, filledPrice, trade.Side)
}

func (a *Agent) manageExits(currentPrice float64) {
	for _, exit := range a.positions.EvaluateExits(currentPrice) {
		closed, err := a.positions.Close(exit.Trade, currentPrice, exit.Reason, a.now())
		if err != nil {
			log.Printf("[%s] Error closing trade: %v", a.cfg.ID, err)
			continue
		}

		a.risk.RecordLoss(closed.PnL)
		a.store.RecordTrade(a.cfg.ID, closed)
		log.Printf("[%s] Trade closed: %s, PnL: %.2f", a.cfg.ID, closed.CloseReason, closed.PnL)
	}
}

func (a *Agent) performanceSnapshot() models.Performance {
	return models.Performance{
		Balance:        a.positions.Balance(),
		DailyLoss:      a.risk.DailyLoss(),
		MaxDrawdown:    a.risk.MaxDrawdownSeen(),
		OpenTradeCount: a.positions.OpenCount(),
	}
}

// flush records a final performance snapshot before the loop exits.
func (a *Agent) flush() {
	a.store.RecordPerformance(a.cfg.ID, a.performanceSnapshot())
}
