package scan

import (
	"context"
	"fmt"
	"sync"

	"SurgeAlertBot/internal/models"
	"SurgeAlertBot/internal/operations/alert"
	"SurgeAlertBot/internal/operations/market"
	"SurgeAlertBot/internal/repositories"
	"SurgeAlertBot/internal/services/analysis"
	"SurgeAlertBot/internal/services/logging"

	"go.uber.org/zap"
)

const defaultMaxConcurrency = 8

// Scanner runs one complete scan cycle: snapshot fetch, bounded fan-out of
// the symbol analyzer, and alert dispatch. It keeps no state between cycles.
type Scanner struct {
	source         market.Source
	analyzer       *analysis.SymbolAnalyzer
	sender         alert.Sender
	alertRepo      *repositories.AlertRepository // nil disables the journal
	maxConcurrency int
}

func NewScanner(source market.Source, analyzer *analysis.SymbolAnalyzer, sender alert.Sender, alertRepo *repositories.AlertRepository, maxConcurrency int) *Scanner {
	if maxConcurrency <= 0 {
		maxConcurrency = defaultMaxConcurrency
	}
	return &Scanner{
		source:         source,
		analyzer:       analyzer,
		sender:         sender,
		alertRepo:      alertRepo,
		maxConcurrency: maxConcurrency,
	}
}

// RunCycle executes one scan over every symbol in the current snapshot. A
// failed snapshot fetch aborts the whole cycle; everything downstream fails
// per symbol or per alert only.
func (s *Scanner) RunCycle(ctx context.Context) error {
	tickers, err := s.source.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("fetch snapshot: %w", err)
	}

	alerts := s.analyzeAll(ctx, tickers)

	logging.Logger.Info("scan cycle complete",
		zap.Int("symbols", len(tickers)),
		zap.Int("alerts", len(alerts)))

	s.dispatch(ctx, alerts)
	return nil
}

// analyzeAll fans the analyzer out over the snapshot on a bounded worker
// pool. Workers share nothing but the results channel, so no further
// synchronization is needed.
func (s *Scanner) analyzeAll(ctx context.Context, tickers []models.Ticker) []*models.Alert {
	sem := make(chan struct{}, s.maxConcurrency)
	results := make(chan *models.Alert, len(tickers))

	var wg sync.WaitGroup
	for _, ticker := range tickers {
		wg.Add(1)
		sem <- struct{}{}
		go func(t models.Ticker) {
			defer wg.Done()
			defer func() { <-sem }()

			a, err := s.analyzer.Analyze(ctx, t)
			if err != nil {
				logging.Logger.Warn("symbol skipped",
					zap.String("symbol", t.Symbol),
					zap.Error(err))
				return
			}
			if a != nil {
				results <- a
			}
		}(ticker)
	}
	wg.Wait()
	close(results)

	var alerts []*models.Alert
	for a := range results {
		alerts = append(alerts, a)
	}
	return alerts
}

// dispatch sends and journals each alert. One failed delivery must not
// suppress the rest.
func (s *Scanner) dispatch(ctx context.Context, alerts []*models.Alert) {
	for _, a := range alerts {
		a.Message = alert.FormatMessage(*a)

		logging.Logger.Info("sending alert",
			zap.String("symbol", a.Symbol),
			zap.Float64("return_pct", a.ReturnPct),
			zap.Float64("rsi", a.RSI),
			zap.Float64("volume_spike", a.VolumeSpike))

		if err := s.sender.Send(ctx, a.Message); err != nil {
			logging.Logger.Error("alert delivery failed",
				zap.String("symbol", a.Symbol),
				zap.Error(err))
		}

		if s.alertRepo != nil {
			if err := s.alertRepo.Create(a); err != nil {
				logging.Logger.Error("alert journal write failed",
					zap.String("symbol", a.Symbol),
					zap.Error(err))
			}
		}
	}
}
