package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"SurgeAlertBot/internal/models"
)

const lbankChartURL = "https://www.lbank.info/futures/exchange/%s"

// LBankClient reads public futures market data from the LBank REST API.
type LBankClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewLBankClient(baseURL string, timeout time.Duration) *LBankClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &LBankClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// apiNumber parses LBank numeric fields, which arrive as JSON numbers or
// quoted strings depending on the endpoint.
type apiNumber float64

func (n *apiNumber) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", s, err)
	}
	*n = apiNumber(f)
	return nil
}

type tickerEntry struct {
	Symbol string    `json:"symbol"`
	Last   apiNumber `json:"last"`
	Vol    apiNumber `json:"vol"`
	Change apiNumber `json:"change"`
	High   apiNumber `json:"high"`
	Low    apiNumber `json:"low"`
	Open   apiNumber `json:"open"`
}

// Snapshot fetches the full futures ticker list.
func (c *LBankClient) Snapshot(ctx context.Context) ([]models.Ticker, error) {
	var resp struct {
		Data []tickerEntry `json:"data"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/v1/future_ticker_all", &resp); err != nil {
		return nil, fmt.Errorf("lbank snapshot: %w", err)
	}

	tickers := make([]models.Ticker, 0, len(resp.Data))
	for _, e := range resp.Data {
		if e.Symbol == "" {
			continue
		}
		tickers = append(tickers, models.Ticker{
			Symbol: e.Symbol,
			Last:   float64(e.Last),
			Volume: float64(e.Vol),
			Change: float64(e.Change),
			High:   float64(e.High),
			Low:    float64(e.Low),
			Open:   float64(e.Open),
		})
	}
	return tickers, nil
}

// Candles fetches the trailing 1h kline history for one symbol. LBank rows
// are positional arrays: [timestamp-ms, open, close, high, low, volume],
// oldest first.
func (c *LBankClient) Candles(ctx context.Context, symbol string) ([]models.Candle, error) {
	url := fmt.Sprintf("%s/v1/future_kline?symbol=%s&type=%s&size=%d",
		c.baseURL, symbol, models.CandleInterval1h, models.CandleHistorySize)

	var resp struct {
		Data [][]apiNumber `json:"data"`
	}
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("lbank klines for %s: %w", symbol, err)
	}

	candles := make([]models.Candle, 0, len(resp.Data))
	for _, row := range resp.Data {
		if len(row) < 6 {
			return nil, fmt.Errorf("lbank klines for %s: malformed row with %d fields", symbol, len(row))
		}
		candles = append(candles, models.Candle{
			OpenTime: time.UnixMilli(int64(row[0])),
			Open:     float64(row[1]),
			Close:    float64(row[2]),
			High:     float64(row[3]),
			Low:      float64(row[4]),
			Volume:   float64(row[5]),
		})
	}
	return candles, nil
}

func (c *LBankClient) ChartURL(symbol string) string {
	return fmt.Sprintf(lbankChartURL, symbol)
}

func (c *LBankClient) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
