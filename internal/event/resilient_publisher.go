package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/MinesocBot_Go/internal/logger"
)

type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps a Bus with a background retry queue. Events that
// keep failing after maxRetries attempts are appended to the dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	rp.wg.Add(1)
	go rp.retryWorker()

	return rp, nil
}

// PublishWithRetry publishes once synchronously and hands failures to the retry worker.
// It never blocks the caller on retries.
func (rp *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := rp.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)

	select {
	case rp.retryQueue <- retryEntry{event: event, attempts: 1, lastErr: err}:
	default:
		logger.FromContext(ctx).Error(LogMsgRetryQueueFull, "event_type", event.Type)
		if dlErr := rp.deadLetter.Write(event, 1, err); dlErr != nil {
			logger.FromContext(ctx).Error(LogMsgDeadLetterWriteFailed, "error", dlErr)
		}
	}
}

// Publish satisfies Bus so the publisher can stand in wherever a bus is accepted
func (rp *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	rp.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (rp *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	rp.bus.Subscribe(eventType, handler)
}

func (rp *ResilientPublisher) retryWorker() {
	defer rp.wg.Done()

	for {
		select {
		case entry := <-rp.retryQueue:
			rp.retry(entry)
		case <-rp.shutdown:
			rp.drain()
			return
		}
	}
}

// retry re-publishes one entry with exponential backoff until it succeeds,
// exhausts its attempts or the publisher shuts down.
func (rp *ResilientPublisher) retry(entry retryEntry) {
	log := logger.FromContext(context.Background())

	for entry.attempts <= rp.maxRetries {
		timer := time.NewTimer(CalculateRetryDelay(rp.retryDelay, entry.attempts))
		select {
		case <-timer.C:
		case <-rp.shutdown:
			timer.Stop()
			rp.publishOnceOrDeadLetter(entry)
			return
		}

		err := rp.bus.Publish(context.Background(), entry.event)
		entry.attempts++
		if err == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempts", entry.attempts)
			return
		}
		entry.lastErr = err
		log.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempts, "error", err)
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempts)
	if err := rp.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
		log.Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

func (rp *ResilientPublisher) publishOnceOrDeadLetter(entry retryEntry) {
	err := rp.bus.Publish(context.Background(), entry.event)
	if err == nil {
		return
	}
	if dlErr := rp.deadLetter.Write(entry.event, entry.attempts+1, err); dlErr != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterWriteFailed, "error", dlErr)
	}
}

func (rp *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-rp.retryQueue:
			rp.publishOnceOrDeadLetter(entry)
			drained++
		default:
			if drained > 0 {
				logger.FromContext(context.Background()).Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

// Shutdown stops the retry worker after one final attempt per queued event
func (rp *ResilientPublisher) Shutdown(ctx context.Context) error {
	rp.closeOnce.Do(func() { close(rp.shutdown) })

	done := make(chan struct{})
	go func() {
		rp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return rp.deadLetter.Close()
	case <-ctx.Done():
		logger.FromContext(ctx).Error(LogMsgShutdownTimeout)
		return errors.Join(fmt.Errorf("resilient publisher shutdown: %w", ctx.Err()), rp.deadLetter.Close())
	}
}
