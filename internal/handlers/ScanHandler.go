package handlers

import (
	"context"
	"time"

	"SurgeAlertBot/internal/services/logging"

	"go.uber.org/zap"
)

// CycleRunner is one scan cycle; satisfied by scan.Scanner.
type CycleRunner interface {
	RunCycle(ctx context.Context) error
}

// ScanHandler drives the scanner on a fixed interval, indefinitely. A failed
// cycle is logged and retried on the next tick; nothing short of context
// cancellation stops the loop.
type ScanHandler struct {
	scanner  CycleRunner
	interval time.Duration
}

func NewScanHandler(scanner CycleRunner, interval time.Duration) *ScanHandler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ScanHandler{
		scanner:  scanner,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled. The first cycle starts immediately;
// each wait begins only after the previous cycle has fully completed, so
// cycles never overlap.
func (h *ScanHandler) Run(ctx context.Context) {
	logging.Logger.Info("scan loop started", zap.Duration("interval", h.interval))

	for {
		if err := h.scanner.RunCycle(ctx); err != nil {
			if ctx.Err() != nil {
				logging.Logger.Info("scan loop stopped")
				return
			}
			logging.Logger.Error("scan cycle failed", zap.Error(err))
		}

		timer := time.NewTimer(h.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			logging.Logger.Info("scan loop stopped")
			return
		case <-timer.C:
		}
	}
}
