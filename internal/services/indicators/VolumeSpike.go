package indicators

type VolumeSpikeService struct{}

func NewVolumeSpikeService() *VolumeSpikeService {
	return &VolumeSpikeService{}
}

// Calculate computes the ratio of the latest volume to the mean of the
// `period` volumes immediately preceding it (latest excluded). Needs
// period+1 volumes. A zero historical mean yields 0, not a division error.
func (s *VolumeSpikeService) Calculate(volumes []float64, period int) (float64, bool) {
	n := len(volumes)
	if period <= 0 || n < period+1 {
		return 0, false
	}

	var sum float64
	for i := n - 1 - period; i < n-1; i++ {
		sum += volumes[i]
	}
	mean := sum / float64(period)

	if mean <= 0 {
		return 0, true
	}
	return volumes[n-1] / mean, true
}
