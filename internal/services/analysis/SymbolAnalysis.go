package analysis

import (
	"context"
	"fmt"
	"math"
	"time"

	"SurgeAlertBot/internal/models"
	"SurgeAlertBot/internal/operations/market"
	"SurgeAlertBot/internal/services/indicators"
	"SurgeAlertBot/internal/services/strategy"

	"github.com/google/uuid"
)

// SymbolAnalyzer runs the per-symbol half of a scan cycle: fetch trailing
// candle history, derive indicators, apply the surge rule.
type SymbolAnalyzer struct {
	source   market.Source
	engine   *indicators.Engine
	strategy *strategy.ShortSurgeStrategy
}

func NewSymbolAnalyzer(source market.Source, engine *indicators.Engine, strat *strategy.ShortSurgeStrategy) *SymbolAnalyzer {
	return &SymbolAnalyzer{
		source:   source,
		engine:   engine,
		strategy: strat,
	}
}

// Analyze evaluates one snapshot entry. A nil alert with nil error means no
// signal — including short or degenerate candle history, which is a skip,
// not a failure. A non-nil error means the candle fetch failed and the
// symbol should be skipped for this cycle.
func (a *SymbolAnalyzer) Analyze(ctx context.Context, ticker models.Ticker) (*models.Alert, error) {
	candles, err := a.source.Candles(ctx, ticker.Symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch candles for %s: %w", ticker.Symbol, err)
	}

	result := a.engine.Compute(candles)
	if !a.strategy.Evaluate(result) {
		return nil, nil
	}

	return &models.Alert{
		ID:          uuid.NewString(),
		Symbol:      ticker.Symbol,
		LastPrice:   ticker.Last,
		ReturnPct:   round2(result.ReturnPct),
		RSI:         round2(result.RSI),
		VolumeSpike: round2(result.VolumeSpike),
		ChartURL:    a.source.ChartURL(ticker.Symbol),
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
