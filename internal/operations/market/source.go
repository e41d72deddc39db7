package market

import (
	"context"

	"SurgeAlertBot/internal/models"
)

// Source is a perpetual-futures market-data provider. Implementations must
// apply their own bounded request timeouts; callers treat any error as a
// transient, per-cycle (snapshot) or per-symbol (candles) failure.
type Source interface {
	// Snapshot returns the current 24h ticker for every tradable symbol.
	Snapshot(ctx context.Context) ([]models.Ticker, error)

	// Candles returns the trailing 1h candle history for one symbol,
	// oldest first.
	Candles(ctx context.Context, symbol string) ([]models.Candle, error)

	// ChartURL builds the exchange's chart page link for a symbol, used in
	// alert messages.
	ChartURL(symbol string) string
}
