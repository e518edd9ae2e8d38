package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/IdleHero_Go/internal/logger"
	"github.com/osse101/IdleHero_Go/internal/quest"
)

// DailyResetWorker returns daily quests to IN_PROGRESS at 00:00 UTC, the
// same boundary that keys the daily boss. Unclaimed quest rewards are
// forfeited at the reset.
type DailyResetWorker struct {
	questService quest.Service
	timer        *time.Timer
	shutdown     chan struct{}
	wg           sync.WaitGroup
	mu           sync.Mutex
}

// NewDailyResetWorker creates a new DailyResetWorker
func NewDailyResetWorker(questService quest.Service) *DailyResetWorker {
	return &DailyResetWorker{
		questService: questService,
		shutdown:     make(chan struct{}),
	}
}

// Start initializes the worker and schedules the first reset
func (w *DailyResetWorker) Start() {
	w.scheduleNext()
}

// scheduleNext calculates the time until next reset (00:00 UTC) and schedules it
func (w *DailyResetWorker) scheduleNext() {
	duration := timeUntilNextReset()
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}

	// Two-stage scheduling to prevent "tight loop" rescheduling caused by early triggers
	if duration > 1*time.Hour {
		// Stage 1: Long-range (Standby). Wake up 45 minutes before reset.
		waitDuration := duration - 45*time.Minute
		w.timer = time.AfterFunc(waitDuration, func() {
			w.scheduleNext()
		})
		w.mu.Unlock()

		nextCheck := time.Now().UTC().Add(waitDuration)
		log.Info(LogMsgDailyResetStandby, "next_check_at", nextCheck)
		return
	}

	// Stage 2: Final approach. Schedule the actual reset.
	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Jitter protection: if the timer triggered early (jitter > 10s),
		// simply reschedule for the remaining time.
		// If duration is > 23h, it means we are actually on time or slightly LATE.
		rem := timeUntilNextReset()
		if rem > 10*time.Second && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.executeReset()
		w.scheduleNext() // This will now calculate ~24h and jump back to Stage 1
	})
	w.mu.Unlock()

	nextReset := time.Now().UTC().Add(duration)
	log.Info(LogMsgDailyResetApproach, "next_reset_at", nextReset)
}

// executeReset performs the daily quest reset in a tracked goroutine
func (w *DailyResetWorker) executeReset() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgDailyResetStarting)

		questsReset, err := w.questService.ResetDaily(ctx)
		if err != nil {
			log.Error(LogMsgDailyResetFailed, "error", err)
			return
		}

		log.Info(LogMsgDailyResetCompleted, "quests_reset", questsReset)
	}()
}

// Shutdown gracefully shuts down the daily reset worker.
// Cancels the pending timer and waits for any in-flight resets to complete.
func (w *DailyResetWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down daily reset worker")

	// Signal shutdown to timer callback (safe to close once)
	select {
	case <-w.shutdown:
		// Already closed, nothing to do
	default:
		close(w.shutdown)
	}

	// Cancel pending timer
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		log.Info("Cancelled pending daily reset")
	}
	w.mu.Unlock()

	// Wait for any in-flight resets to complete
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Daily reset worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Daily reset worker shutdown timeout, some resets may still be running")
		return ctx.Err()
	}
}

// timeUntilNextReset calculates the duration until the next 00:00 UTC
func timeUntilNextReset() time.Duration {
	now := time.Now().UTC()
	nextReset := time.Date(
		now.Year(), now.Month(), now.Day(),
		0, 0, 0, 0, time.UTC,
	)
	if !nextReset.After(now) {
		nextReset = nextReset.AddDate(0, 0, 1)
	}
	return nextReset.Sub(now)
}
