package models

// Ticker is one symbol's entry in the 24h futures market snapshot.
// A fresh snapshot is fetched every scan cycle and discarded afterwards.
type Ticker struct {
	Symbol string
	Last   float64
	Volume float64
	Change float64 // 24h change in %
	High   float64
	Low    float64
	Open   float64
}
