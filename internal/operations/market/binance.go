package market

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"SurgeAlertBot/internal/models"

	"github.com/adshao/go-binance/v2/futures"
	"golang.org/x/time/rate"
)

const binanceChartURL = "https://www.binance.com/en/futures/%s"

// BinanceSource serves the same contract as LBankClient from the Binance
// USDⓈ-M futures API. Public market data only, so no API keys are required.
type BinanceSource struct {
	client      *futures.Client
	rateLimiter *rate.Limiter
}

func NewBinanceSource(timeout time.Duration) *BinanceSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	client := futures.NewClient("", "")
	client.HTTPClient = httpClient

	return &BinanceSource{
		client: client,
		// 10 requests per second with burst of 20, matching Binance's
		// public rate limits with headroom.
		rateLimiter: rate.NewLimiter(rate.Limit(10), 20),
	}
}

func (s *BinanceSource) Snapshot(ctx context.Context) ([]models.Ticker, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	stats, err := s.client.NewListPriceChangeStatsService().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("binance snapshot: %w", err)
	}

	tickers := make([]models.Ticker, 0, len(stats))
	for _, st := range stats {
		tickers = append(tickers, models.Ticker{
			Symbol: st.Symbol,
			Last:   parseFloat(st.LastPrice),
			Volume: parseFloat(st.Volume),
			Change: parseFloat(st.PriceChangePercent),
			High:   parseFloat(st.HighPrice),
			Low:    parseFloat(st.LowPrice),
			Open:   parseFloat(st.OpenPrice),
		})
	}
	return tickers, nil
}

func (s *BinanceSource) Candles(ctx context.Context, symbol string) ([]models.Candle, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	klines, err := s.client.NewKlinesService().
		Symbol(symbol).
		Interval("1h").
		Limit(models.CandleHistorySize).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("binance klines for %s: %w", symbol, err)
	}

	candles := make([]models.Candle, 0, len(klines))
	for _, k := range klines {
		candles = append(candles, models.Candle{
			OpenTime: time.UnixMilli(k.OpenTime),
			Open:     parseFloat(k.Open),
			Close:    parseFloat(k.Close),
			High:     parseFloat(k.High),
			Low:      parseFloat(k.Low),
			Volume:   parseFloat(k.Volume),
		})
	}
	return candles, nil
}

func (s *BinanceSource) ChartURL(symbol string) string {
	return fmt.Sprintf(binanceChartURL, symbol)
}

func parseFloat(v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
