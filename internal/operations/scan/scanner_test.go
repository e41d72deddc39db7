package scan

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"SurgeAlertBot/internal/models"
	"SurgeAlertBot/internal/services/analysis"
	"SurgeAlertBot/internal/services/indicators"
	"SurgeAlertBot/internal/services/strategy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	tickers     []models.Ticker
	snapshotErr error
	candles     map[string][]models.Candle
	candleErrs  map[string]error
}

func (f *fakeSource) Snapshot(ctx context.Context) ([]models.Ticker, error) {
	if f.snapshotErr != nil {
		return nil, f.snapshotErr
	}
	return f.tickers, nil
}

func (f *fakeSource) Candles(ctx context.Context, symbol string) ([]models.Candle, error) {
	if err := f.candleErrs[symbol]; err != nil {
		return nil, err
	}
	return f.candles[symbol], nil
}

func (f *fakeSource) ChartURL(symbol string) string {
	return "https://charts.test/" + symbol
}

type fakeSender struct {
	mu       sync.Mutex
	messages []string
	failFor  string // substring that makes Send fail
}

func (f *fakeSender) Send(ctx context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor != "" && strings.Contains(text, f.failFor) {
		return errors.New("delivery refused")
	}
	f.messages = append(f.messages, text)
	return nil
}

func surgeCandles() []models.Candle {
	candles := make([]models.Candle, 20)
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 19; i++ {
		close := 100 + float64(i)
		candles[i] = models.Candle{OpenTime: start.Add(time.Duration(i) * time.Hour), Close: close, Volume: 1000}
	}
	candles[19] = models.Candle{OpenTime: start.Add(19 * time.Hour), Close: 118 * 1.9, Volume: 4000}
	return candles
}

func flatCandles() []models.Candle {
	candles := make([]models.Candle, 20)
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := range candles {
		candles[i] = models.Candle{OpenTime: start.Add(time.Duration(i) * time.Hour), Close: 100, Volume: 1000}
	}
	return candles
}

func newScanner(source *fakeSource, sender *fakeSender, workers int) *Scanner {
	analyzer := analysis.NewSymbolAnalyzer(
		source,
		indicators.NewEngine(14),
		strategy.NewShortSurgeStrategy(strategy.DefaultThresholds()),
	)
	return NewScanner(source, analyzer, sender, nil, workers)
}

func TestRunCycleSendsAlertForSurgingSymbol(t *testing.T) {
	source := &fakeSource{
		tickers: []models.Ticker{
			{Symbol: "BTC_USDT", Last: 224.2},
			{Symbol: "ETH_USDT", Last: 100},
		},
		candles: map[string][]models.Candle{
			"BTC_USDT": surgeCandles(),
			"ETH_USDT": flatCandles(),
		},
	}
	sender := &fakeSender{}

	err := newScanner(source, sender, 4).RunCycle(context.Background())
	require.NoError(t, err)

	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]
	assert.Contains(t, msg, "SHORT ALERT")
	assert.Contains(t, msg, "<b>BTC_USDT</b>")
	assert.Contains(t, msg, "90.00%")
	assert.Contains(t, msg, "4.00x")
	assert.Contains(t, msg, "https://charts.test/BTC_USDT")
}

func TestRunCycleSymbolFailureDoesNotBlockOthers(t *testing.T) {
	source := &fakeSource{
		tickers: []models.Ticker{
			{Symbol: "AAA_USDT"},
			{Symbol: "BBB_USDT"},
		},
		candles: map[string][]models.Candle{
			"BBB_USDT": surgeCandles(),
		},
		candleErrs: map[string]error{
			"AAA_USDT": errors.New("rate limited"),
		},
	}
	sender := &fakeSender{}

	err := newScanner(source, sender, 2).RunCycle(context.Background())
	require.NoError(t, err)

	require.Len(t, sender.messages, 1)
	assert.Contains(t, sender.messages[0], "BBB_USDT")
}

func TestRunCycleSnapshotFailureAbortsCycle(t *testing.T) {
	source := &fakeSource{snapshotErr: errors.New("gateway down")}
	sender := &fakeSender{}

	err := newScanner(source, sender, 2).RunCycle(context.Background())
	require.Error(t, err)
	assert.Empty(t, sender.messages)
}

func TestRunCycleDeliveryFailureDoesNotSuppressOthers(t *testing.T) {
	source := &fakeSource{
		tickers: []models.Ticker{
			{Symbol: "AAA_USDT"},
			{Symbol: "BBB_USDT"},
		},
		candles: map[string][]models.Candle{
			"AAA_USDT": surgeCandles(),
			"BBB_USDT": surgeCandles(),
		},
	}
	sender := &fakeSender{failFor: "AAA_USDT"}

	err := newScanner(source, sender, 2).RunCycle(context.Background())
	require.NoError(t, err)

	require.Len(t, sender.messages, 1)
	assert.Contains(t, sender.messages[0], "BBB_USDT")
}

func TestRunCycleEmptySnapshot(t *testing.T) {
	source := &fakeSource{}
	sender := &fakeSender{}

	err := newScanner(source, sender, 2).RunCycle(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sender.messages)
}

func TestRunCycleManySymbolsBoundedWorkers(t *testing.T) {
	// A wide snapshot on a single worker must still finish and alert on
	// every surging symbol.
	var tickers []models.Ticker
	candles := make(map[string][]models.Candle)
	for _, sym := range []string{"A_USDT", "B_USDT", "C_USDT", "D_USDT", "E_USDT"} {
		tickers = append(tickers, models.Ticker{Symbol: sym})
		candles[sym] = surgeCandles()
	}
	source := &fakeSource{tickers: tickers, candles: candles}
	sender := &fakeSender{}

	err := newScanner(source, sender, 1).RunCycle(context.Background())
	require.NoError(t, err)
	assert.Len(t, sender.messages, 5)
}
