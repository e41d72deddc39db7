package indicators

type RSIService struct{}

func NewRSIService() *RSIService {
	return &RSIService{}
}

// Calculate computes RSI for the latest close using simple rolling means of
// gains and losses over the trailing period (not Wilder's exponential
// smoothing). Needs period+1 closes; ok is false with fewer.
func (s *RSIService) Calculate(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period+1 {
		return 0, false
	}

	var gainSum, lossSum float64
	for i := len(closes) - period; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gainSum += change
		} else {
			lossSum -= change
		}
	}

	avgGain := gainSum / float64(period)
	avgLoss := lossSum / float64(period)

	if avgLoss == 0 {
		if avgGain == 0 {
			// Flat window, relative strength is undefined.
			return 0, false
		}
		// Gains with no losses saturate the oscillator.
		return 100, true
	}

	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs)), true
}
