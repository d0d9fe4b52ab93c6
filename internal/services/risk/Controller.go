package risk

import (
	"time"
)

type Status int

const (
	StatusOk Status = iota
	StatusHalt
)

// Controller tracks the daily-loss and drawdown accumulators for one agent
// and latches into a terminal halt when either limit is breached.
type Controller struct {
	initialBalance float64
	maxDailyLoss   float64
	maxDrawdown    float64

	dailyLoss       float64
	maxDrawdownSeen float64
	lastTick        time.Time
	halted          bool
}

func NewController(initialBalance, maxDailyLoss, maxDrawdown float64) *Controller {
	return &Controller{
		initialBalance: initialBalance,
		maxDailyLoss:   maxDailyLoss,
		maxDrawdown:    maxDrawdown,
	}
}

// RecordLoss feeds a realized trade result into the daily-loss accumulator.
// Profitable closes do not reduce it.
func (c *Controller) RecordLoss(pnl float64) {
	if pnl < 0 {
		c.dailyLoss += -pnl / c.initialBalance
	}
}

// Tick updates the risk accumulators for the current balance. The daily
// loss resets when the tick's calendar day differs from the previous
// tick's day, so the reset fires exactly once per boundary crossing
// regardless of tick granularity.
func (c *Controller) Tick(currentBalance float64, now time.Time) Status {
	if c.halted {
		return StatusHalt
	}

	if !c.lastTick.IsZero() && !sameDay(c.lastTick, now) {
		c.dailyLoss = 0
	}
	c.lastTick = now

	drawdown := (c.initialBalance - currentBalance) / c.initialBalance
	if drawdown < 0 {
		drawdown = 0
	}
	if drawdown > c.maxDrawdownSeen {
		c.maxDrawdownSeen = drawdown
	}

	if c.dailyLoss >= c.maxDailyLoss || c.maxDrawdownSeen >= c.maxDrawdown {
		c.halted = true
		return StatusHalt
	}

	return StatusOk
}

func (c *Controller) DailyLoss() float64 {
	return c.dailyLoss
}

// MaxDrawdownSeen is monotonically non-decreasing over the agent's lifetime.
func (c *Controller) MaxDrawdownSeen() float64 {
	return c.maxDrawdownSeen
}

func (c *Controller) Halted() bool {
	return c.halted
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
