package indicators

// Snapshot holds the indicator values aligned to the most recent candle.
// Valid is false while the window is still warming up; no signal may be
// derived from an invalid snapshot.
type Snapshot struct {
	RSI     float64
	SMAFast float64
	SMASlow float64
	Valid   bool
}

type IndicatorService struct {
	rsi *RSIService
	sma *SMAService
}

func NewIndicatorService() *IndicatorService {
	return &IndicatorService{
		rsi: NewRSIService(),
		sma: NewSMAService(),
	}
}

// Compute evaluates RSI and both SMAs over the close series and returns the
// values for the last element. The snapshot is invalid until the series is
// long enough for every indicator: period+1 closes for RSI, maSlow closes
// for the slow SMA.
func (s *IndicatorService) Compute(closes []float64, rsiPeriod, maFast, maSlow int) Snapshot {
	rsi := s.rsi.Calculate(closes, rsiPeriod)
	smaFast := s.sma.Calculate(closes, maFast)
	smaSlow := s.sma.Calculate(closes, maSlow)

	if rsi == nil || smaFast == nil || smaSlow == nil {
		return Snapshot{}
	}

	last := len(closes) - 1
	return Snapshot{
		RSI:     rsi[last],
		SMAFast: smaFast[last],
		SMASlow: smaSlow[last],
		Valid:   true,
	}
}
