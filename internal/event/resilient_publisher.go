package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/IdleHero_Go/internal/logger"
)

// retryEntry is one event waiting to be republished
type retryEntry struct {
	event       Event
	attempt     int
	nextAttempt time.Time
	lastError   error
}

// ResilientPublisher wraps an event bus with async retries and a dead-letter
// file for events that exhaust them. The caller never blocks on a failing
// subscriber.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a publisher with a background retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// Publish satisfies Bus by delegating to PublishWithRetry
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// PublishWithRetry publishes an event, queuing it for retry on failure.
// Returns immediately; retries happen on the background worker.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err)

	p.enqueue(retryEntry{
		event:       event,
		attempt:     1,
		nextAttempt: time.Now().Add(CalculateRetryDelay(p.retryDelay, 1)),
		lastError:   err,
	})
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

// Shutdown stops the retry worker, draining any queued retries first
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	close(p.shutdown)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

func (p *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case p.retryQueue <- entry:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		if err := p.deadLetter.Write(entry.event, entry.attempt, entry.lastError); err != nil {
			logger.Error(LogMsgDeadLetterWriteFailed, "error", err)
		}
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case entry := <-p.retryQueue:
			p.processRetry(entry)
		case <-p.shutdown:
			p.drainQueue()
			return
		}
	}
}

// drainQueue processes whatever is still queued at shutdown time
func (p *ResilientPublisher) drainQueue() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			p.processRetry(entry)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) processRetry(entry retryEntry) {
	if wait := time.Until(entry.nextAttempt); wait > 0 {
		time.Sleep(wait)
	}

	ctx := context.Background()
	err := p.bus.Publish(ctx, entry.event)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded,
			"event_type", entry.event.Type,
			"attempt", entry.attempt)
		return
	}

	entry.attempt++
	entry.lastError = err

	if entry.attempt > p.maxRetries {
		logger.Warn(LogMsgEventRetryExhausted,
			"event_type", entry.event.Type,
			"attempts", entry.attempt-1)
		if werr := p.deadLetter.Write(entry.event, entry.attempt-1, err); werr != nil {
			logger.Error(LogMsgDeadLetterWriteFailed, "error", werr)
		}
		return
	}

	logger.Warn(LogMsgEventRetryFailed,
		"event_type", entry.event.Type,
		"attempt", entry.attempt-1,
		"error", err)

	entry.nextAttempt = time.Now().Add(CalculateRetryDelay(p.retryDelay, entry.attempt))
	p.enqueue(entry)
}
