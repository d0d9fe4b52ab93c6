package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTick_DrawdownIsMonotonic(t *testing.T) {
	c := NewController(1000, 0.05, 0.5)
	now := ts("2024-03-01T10:00:00Z")

	c.Tick(900, now)
	assert.InDelta(t, 0.1, c.MaxDrawdownSeen(), 1e-9)

	// Recovery does not lower the running maximum
	c.Tick(990, now.Add(time.Minute))
	assert.InDelta(t, 0.1, c.MaxDrawdownSeen(), 1e-9)

	c.Tick(800, now.Add(2*time.Minute))
	assert.InDelta(t, 0.2, c.MaxDrawdownSeen(), 1e-9)
}

func TestTick_NoNegativeDrawdown(t *testing.T) {
	c := NewController(1000, 0.05, 0.5)

	c.Tick(1200, ts("2024-03-01T10:00:00Z"))
	assert.Equal(t, 0.0, c.MaxDrawdownSeen())
}

func TestTick_HaltOnDrawdown(t *testing.T) {
	c := NewController(1000, 0.05, 0.15)
	now := ts("2024-03-01T10:00:00Z")

	assert.Equal(t, StatusOk, c.Tick(900, now))
	assert.Equal(t, StatusHalt, c.Tick(840, now.Add(time.Minute)))
	assert.True(t, c.Halted())

	// Halt latches even if the balance recovers
	assert.Equal(t, StatusHalt, c.Tick(1000, now.Add(2*time.Minute)))
}

func TestTick_HaltOnDailyLoss(t *testing.T) {
	c := NewController(1000, 0.05, 0.5)
	now := ts("2024-03-01T10:00:00Z")

	c.RecordLoss(-30)
	assert.Equal(t, StatusOk, c.Tick(970, now))

	c.RecordLoss(-25)
	assert.Equal(t, StatusHalt, c.Tick(945, now.Add(time.Minute)))
}

func TestRecordLoss_IgnoresProfits(t *testing.T) {
	c := NewController(1000, 0.05, 0.5)

	c.RecordLoss(40)
	assert.Equal(t, 0.0, c.DailyLoss())

	c.RecordLoss(-20)
	assert.InDelta(t, 0.02, c.DailyLoss(), 1e-9)
}

func TestTick_DailyResetAtDayBoundary(t *testing.T) {
	c := NewController(1000, 0.05, 0.5)

	// 90-second ticks approaching midnight; none lands exactly on minute zero
	c.Tick(1000, ts("2024-03-01T23:57:30Z"))
	c.RecordLoss(-30)
	c.Tick(970, ts("2024-03-01T23:59:00Z"))
	assert.InDelta(t, 0.03, c.DailyLoss(), 1e-9)

	// First tick of the next day resets the accumulator
	c.Tick(970, ts("2024-03-02T00:00:30Z"))
	assert.Equal(t, 0.0, c.DailyLoss())

	// Later ticks on the same day do not reset again
	c.RecordLoss(-10)
	c.Tick(960, ts("2024-03-02T00:02:00Z"))
	assert.InDelta(t, 0.01, c.DailyLoss(), 1e-9)

	// The next boundary resets once more
	c.Tick(960, ts("2024-03-03T07:15:00Z"))
	assert.Equal(t, 0.0, c.DailyLoss())
}

func TestTick_ResetSkipsNoBoundaryWhenTicksAreSparse(t *testing.T) {
	c := NewController(1000, 0.05, 0.5)

	// A tick cadence that never hits 00:00 exactly must still reset
	c.Tick(1000, ts("2024-03-01T22:58:45Z"))
	c.RecordLoss(-20)
	c.Tick(980, ts("2024-03-02T01:28:45Z"))
	assert.Equal(t, 0.0, c.DailyLoss())
}
