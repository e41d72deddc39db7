package strategy

// Thresholds are the short-surge detection levels. They are configuration,
// not constants: config.Load reads overrides from the environment.
type Thresholds struct {
	MinReturnPct   float64 // 1h return, %
	MinRSI         float64
	MinVolumeSpike float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		MinReturnPct:   80.0,
		MinRSI:         85.0,
		MinVolumeSpike: 3.0,
	}
}
