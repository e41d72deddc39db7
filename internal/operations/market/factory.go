package market

import (
	"fmt"
	"strings"
	"time"
)

// NewSource builds the market-data source for the configured exchange.
func NewSource(exchange, baseURL string, timeout time.Duration) (Source, error) {
	switch strings.ToLower(exchange) {
	case "", "lbank":
		return NewLBankClient(baseURL, timeout), nil
	case "binance":
		return NewBinanceSource(timeout), nil
	default:
		return nil, fmt.Errorf("unsupported exchange %q", exchange)
	}
}
