package strategy

import (
	"SurgeAlertBot/internal/services/indicators"
)

// ShortSurgeStrategy flags symbols whose latest 1h candle shows an abrupt
// surge: price up hard, RSI deep in overbought, volume well above its
// trailing mean. Such moves tend to mean-revert, hence a short candidate.
type ShortSurgeStrategy struct {
	thresholds Thresholds
}

func NewShortSurgeStrategy(thresholds Thresholds) *ShortSurgeStrategy {
	return &ShortSurgeStrategy{thresholds: thresholds}
}

// Evaluate applies the detection rule to one symbol's indicator result.
// Any undefined indicator means no signal, never an error.
func (s *ShortSurgeStrategy) Evaluate(result indicators.Result) bool {
	if !result.Defined() {
		return false
	}
	return result.ReturnPct >= s.thresholds.MinReturnPct &&
		result.RSI > s.thresholds.MinRSI &&
		result.VolumeSpike >= s.thresholds.MinVolumeSpike
}

func (s *ShortSurgeStrategy) Thresholds() Thresholds {
	return s.thresholds
}
