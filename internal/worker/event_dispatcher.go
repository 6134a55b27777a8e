package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/careerpath/internal/adapter/events"
	"github.com/polkiloo/careerpath/internal/domain/model"
)

const (
	publishAttempts = 3
	publishTimeout  = 5 * time.Second
)

// EventDispatcher publishes domain events asynchronously through a bounded queue and a pool of workers.
type EventDispatcher struct {
	publisher events.Publisher
	workers   int
	backoff   time.Duration
	logger    *slog.Logger

	jobs   chan model.UserRegistered
	wg     sync.WaitGroup
	cancel context.CancelFunc
	abort  context.CancelFunc
	mu     sync.Mutex
}

// NewEventDispatcher constructs the dispatcher worker pool.
func NewEventDispatcher(publisher events.Publisher, workers, buffer int, logger *slog.Logger) *EventDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if buffer <= 0 {
		buffer = 1
	}
	return &EventDispatcher{
		publisher: publisher,
		workers:   workers,
		backoff:   100 * time.Millisecond,
		logger:    logger,
		jobs:      make(chan model.UserRegistered, buffer),
	}
}

// Enqueue schedules event for publishing. It never blocks; a full queue drops the event.
func (d *EventDispatcher) Enqueue(event model.UserRegistered) bool {
	select {
	case d.jobs <- event:
		return true
	default:
		d.logger.Warn("event queue full, dropping event",
			slog.String("type", event.Type),
			slog.String("user_id", event.UserID),
		)
		return false
	}
}

// Start launches background workers.
func (d *EventDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		return
	}

	// abort cancels in-flight publishes; cancel only stops workers taking new events.
	publishCtx, abort := context.WithCancel(ctx)
	runCtx, cancel := context.WithCancel(publishCtx)
	d.cancel = cancel
	d.abort = abort

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx, publishCtx)
	}
}

// Stop halts the workers and publishes what is still queued. It returns once ctx
// is done at the latest: in-flight publishes are aborted and remaining events dropped.
func (d *EventDispatcher) Stop(ctx context.Context) {
	d.mu.Lock()
	cancel, abort := d.cancel, d.abort
	d.cancel, d.abort = nil, nil
	d.mu.Unlock()

	if cancel == nil {
		return
	}
	defer abort()
	cancel()

	stopped := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-ctx.Done():
		abort()
		<-stopped
	}

	d.drain(ctx)
}

func (d *EventDispatcher) worker(runCtx, publishCtx context.Context) {
	defer d.wg.Done()
	for runCtx.Err() == nil {
		select {
		case <-runCtx.Done():
			return
		case event := <-d.jobs:
			if !d.handle(publishCtx, runCtx.Done(), event) {
				d.requeue(event)
			}
		}
	}
}

// drain publishes queued events until the queue is empty or ctx is done.
func (d *EventDispatcher) drain(ctx context.Context) {
	dropped := 0
	for {
		select {
		case event := <-d.jobs:
			if ctx.Err() != nil || !d.handle(ctx, ctx.Done(), event) {
				dropped++
			}
		default:
			if dropped > 0 {
				d.logger.Warn("shutdown deadline reached, dropping queued events", slog.Int("count", dropped))
			}
			return
		}
	}
}

func (d *EventDispatcher) requeue(event model.UserRegistered) {
	select {
	case d.jobs <- event:
	default:
		d.logger.Warn("event queue full, dropping event on shutdown",
			slog.String("type", event.Type),
			slog.String("user_id", event.UserID),
		)
	}
}

// handle publishes event with retries. It returns false when stop closes before
// the attempts are exhausted, leaving the event unpublished.
func (d *EventDispatcher) handle(ctx context.Context, stop <-chan struct{}, event model.UserRegistered) bool {
	for attempt := 1; attempt <= publishAttempts; attempt++ {
		pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		err := d.publisher.Publish(pubCtx, event)
		cancel()
		if err == nil {
			return true
		}

		d.logger.Error("publish event failed",
			slog.String("type", event.Type),
			slog.String("user_id", event.UserID),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)

		if attempt == publishAttempts {
			return true
		}

		timer := time.NewTimer(d.backoff * time.Duration(attempt))
		select {
		case <-timer.C:
		case <-stop:
			timer.Stop()
			return false
		}
	}
	return true
}
