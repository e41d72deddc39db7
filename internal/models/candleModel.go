package models

import (
	"time"
)

type Candle struct {
	OpenTime time.Time
	Open     float64
	Close    float64
	High     float64
	Low      float64
	Volume   float64
}

const (
	CandleInterval1h = "1hour"

	// CandleHistorySize is how many trailing candles are requested per symbol
	// each cycle. 20 bars cover the 14-period indicators with room to spare.
	CandleHistorySize = 20
)

// Closes extracts the close prices from an ordered candle sequence.
func Closes(candles []Candle) []float64 {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	return closes
}

// Volumes extracts the volumes from an ordered candle sequence.
func Volumes(candles []Candle) []float64 {
	volumes := make([]float64, len(candles))
	for i, c := range candles {
		volumes[i] = c.Volume
	}
	return volumes
}
