package indicators

import (
	"SurgeAlertBot/internal/models"
)

// DefaultPeriod is the trailing window shared by RSI and the volume-spike
// ratio.
const DefaultPeriod = 14

// Result holds the per-symbol indicator values for one cycle. Each value has
// its own validity flag; an invalid value means the candle history was too
// short (or degenerate) for that indicator.
type Result struct {
	ReturnPct   float64
	RSI         float64
	VolumeSpike float64

	ReturnOK      bool
	RSIOK         bool
	VolumeSpikeOK bool
}

// Defined reports whether every indicator produced a value.
func (r Result) Defined() bool {
	return r.ReturnOK && r.RSIOK && r.VolumeSpikeOK
}

// Engine derives all indicators from an ordered (oldest first) candle
// sequence. It is stateless and deterministic: the same candles always give
// the same Result.
type Engine struct {
	period      int
	returns     *ReturnService
	rsi         *RSIService
	volumeSpike *VolumeSpikeService
}

func NewEngine(period int) *Engine {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Engine{
		period:      period,
		returns:     NewReturnService(),
		rsi:         NewRSIService(),
		volumeSpike: NewVolumeSpikeService(),
	}
}

func (e *Engine) Period() int {
	return e.period
}

func (e *Engine) Compute(candles []models.Candle) Result {
	closes := models.Closes(candles)
	volumes := models.Volumes(candles)

	var r Result
	r.ReturnPct, r.ReturnOK = e.returns.Calculate(closes)
	r.RSI, r.RSIOK = e.rsi.Calculate(closes, e.period)
	r.VolumeSpike, r.VolumeSpikeOK = e.volumeSpike.Calculate(volumes, e.period)
	return r
}
