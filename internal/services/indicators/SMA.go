package indicators

// SMAService provides Simple Moving Average calculations
type SMAService struct{}

// NewSMAService creates a new SMA service instance
func NewSMAService() *SMAService {
	return &SMAService{}
}

// Calculate computes SMA for the entire price series. Values before index
// period-1 are zero (not yet defined).
func (s *SMAService) Calculate(prices []float64, period int) []float64 {
	if len(prices) == 0 || period <= 0 || len(prices) < period {
		return nil
	}

	sma := make([]float64, len(prices))

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += prices[i]
	}
	sma[period-1] = sum / float64(period)

	// Rolling window for the rest
	for i := period; i < len(prices); i++ {
		sum += prices[i] - prices[i-period]
		sma[i] = sum / float64(period)
	}

	return sma
}
