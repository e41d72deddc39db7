package indicators

type ReturnService struct{}

func NewReturnService() *ReturnService {
	return &ReturnService{}
}

// Calculate computes the percentage change between the two most recent closes.
// ok is false with fewer than 2 closes, or when the prior close is zero.
func (s *ReturnService) Calculate(closes []float64) (float64, bool) {
	n := len(closes)
	if n < 2 || closes[n-2] == 0 {
		return 0, false
	}
	return (closes[n-1] - closes[n-2]) / closes[n-2] * 100, true
}
