package signal

import (
	"fmt"

	"CryptoTradeAgent/internal/models"
	"CryptoTradeAgent/internal/services/indicators"
)

// Generator derives a trading signal from an indicator snapshot.
//
// Buy:  RSI below the oversold threshold while the fast SMA is above the slow.
// Sell: RSI above the overbought threshold while the fast SMA is below the slow.
// The two conditions cannot both hold for a well-formed threshold pair.
type Generator struct {
	oversold   float64
	overbought float64
}

func NewGenerator(oversold, overbought float64) (*Generator, error) {
	if oversold >= overbought {
		return nil, fmt.Errorf("rsi oversold threshold (%.2f) must be below overbought (%.2f)",
			oversold, overbought)
	}
	return &Generator{
		oversold:   oversold,
		overbought: overbought,
	}, nil
}

// Evaluate is pure and deterministic. An invalid (warming-up) snapshot
// always yields SignalNone.
func (g *Generator) Evaluate(snap indicators.Snapshot) models.Signal {
	if !snap.Valid {
		return models.SignalNone
	}

	if snap.RSI < g.oversold && snap.SMAFast > snap.SMASlow {
		return models.SignalBuy
	}

	if snap.RSI > g.overbought && snap.SMAFast < snap.SMASlow {
		return models.SignalSell
	}

	return models.SignalNone
}
