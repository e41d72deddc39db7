package handlers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	cycles atomic.Int64
	err    error
}

func (r *countingRunner) RunCycle(ctx context.Context) error {
	r.cycles.Add(1)
	return r.err
}

func TestRunFirstCycleIsImmediate(t *testing.T) {
	runner := &countingRunner{}
	h := NewScanHandler(runner, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	// Well before the first hour-long wait elapses, one cycle must have run.
	require.Eventually(t, func() bool {
		return runner.cycles.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
	assert.Equal(t, int64(1), runner.cycles.Load())
}

func TestRunRepeatsOnInterval(t *testing.T) {
	runner := &countingRunner{}
	h := NewScanHandler(runner, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)

	require.Eventually(t, func() bool {
		return runner.cycles.Load() >= 3
	}, time.Second, 5*time.Millisecond)
	cancel()
}

func TestRunSurvivesCycleFailures(t *testing.T) {
	runner := &countingRunner{err: errors.New("exchange unreachable")}
	h := NewScanHandler(runner, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)

	// The loop must keep scheduling cycles despite every one failing.
	require.Eventually(t, func() bool {
		return runner.cycles.Load() >= 3
	}, time.Second, 5*time.Millisecond)
	cancel()
}

func TestRunStopsOnCancel(t *testing.T) {
	runner := &countingRunner{}
	h := NewScanHandler(runner, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return runner.cycles.Load() >= 1
	}, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

func TestNewScanHandlerDefaultsInterval(t *testing.T) {
	h := NewScanHandler(&countingRunner{}, 0)
	assert.Equal(t, time.Minute, h.interval)
}
