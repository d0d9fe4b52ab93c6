package indicators

import "math"

type RSIService struct {
	ema *EMAService
}

func NewRSIService() *RSIService {
	return &RSIService{
		ema: NewEMAService(),
	}
}

// Calculate computes the RSI series for the given prices. Values before
// index period are zero (not yet defined); period+1 prices are required
// for the first defined value.
func (s *RSIService) Calculate(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period+1 {
		return nil
	}

	rsi := make([]float64, len(prices))
	gains := make([]float64, len(prices))
	losses := make([]float64, len(prices))

	for i := 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = math.Abs(change)
		}
	}

	// Smooth gains and losses with an EMA
	avgGain := s.ema.Calculate(gains, period)
	avgLoss := s.ema.Calculate(losses, period)

	for i := period; i < len(prices); i++ {
		if avgLoss[i] == 0 {
			rsi[i] = 100
		} else {
			rs := avgGain[i] / avgLoss[i]
			rsi[i] = 100 - (100 / (1 + rs))
		}
	}

	return rsi
}
