package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/polkiloo/careerpath/internal/domain/model"
	testhelpers "github.com/polkiloo/careerpath/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func event(id string) model.UserRegistered {
	return model.UserRegistered{Type: model.EventUserRegistered, UserID: id, Email: id + "@example.com"}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(time.Second)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for condition")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestNewEventDispatcherDefaults(t *testing.T) {
	d := NewEventDispatcher(&testhelpers.PublisherStub{}, 0, 0, discardLogger())
	if d.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", d.workers)
	}
	if cap(d.jobs) != 1 {
		t.Fatalf("expected buffer default to 1, got %d", cap(d.jobs))
	}
}

func TestEventDispatcherPublishesEvents(t *testing.T) {
	pub := &testhelpers.PublisherStub{}
	d := NewEventDispatcher(pub, 2, 8, discardLogger())
	d.Start(context.Background())
	defer d.Stop(context.Background())

	for _, id := range []string{"a", "b", "c"} {
		if !d.Enqueue(event(id)) {
			t.Fatalf("expected event %q to be accepted", id)
		}
	}

	waitFor(t, func() bool { return len(pub.Published()) == 3 })
}

func TestEventDispatcherDropsWhenFull(t *testing.T) {
	d := NewEventDispatcher(&testhelpers.PublisherStub{}, 1, 1, discardLogger())

	if !d.Enqueue(event("a")) {
		t.Fatal("expected first event to be queued")
	}
	if d.Enqueue(event("b")) {
		t.Fatal("expected second event to be dropped")
	}
}

func TestEventDispatcherRetriesFailedPublish(t *testing.T) {
	failures := 2
	pub := &testhelpers.PublisherStub{}
	pub.PublishFn = func(context.Context, model.UserRegistered) error {
		if failures > 0 {
			failures--
			return errors.New("broker unavailable")
		}
		return nil
	}
	d := NewEventDispatcher(pub, 1, 1, discardLogger())
	d.backoff = time.Millisecond
	d.Start(context.Background())
	defer d.Stop(context.Background())

	d.Enqueue(event("a"))

	waitFor(t, func() bool { return len(pub.Published()) == 1 })
	if calls := pub.Calls(); calls != 3 {
		t.Fatalf("expected 3 publish attempts, got %d", calls)
	}
}

func TestEventDispatcherGivesUpAfterAttempts(t *testing.T) {
	pub := &testhelpers.PublisherStub{PublishFn: func(context.Context, model.UserRegistered) error {
		return errors.New("broker unavailable")
	}}
	d := NewEventDispatcher(pub, 1, 1, discardLogger())
	d.backoff = time.Millisecond
	d.Start(context.Background())

	d.Enqueue(event("a"))
	waitFor(t, func() bool { return pub.Calls() == publishAttempts })
	d.Stop(context.Background())

	if calls := pub.Calls(); calls != publishAttempts {
		t.Fatalf("expected %d attempts, got %d", publishAttempts, calls)
	}
}

func TestEventDispatcherStopDrainsQueue(t *testing.T) {
	pub := &testhelpers.PublisherStub{}
	d := NewEventDispatcher(pub, 1, 4, discardLogger())

	for _, id := range []string{"a", "b", "c"} {
		d.Enqueue(event(id))
	}
	d.Start(context.Background())
	d.Stop(context.Background())

	if got := len(pub.Published()); got != 3 {
		t.Fatalf("expected queued events to be published on stop, got %d", got)
	}
}

func TestEventDispatcherStartIsIdempotent(t *testing.T) {
	d := NewEventDispatcher(&testhelpers.PublisherStub{}, 2, 1, discardLogger())
	d.Start(context.Background())
	d.Start(context.Background())

	done := make(chan struct{})
	go func() {
		d.Stop(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected stop to finish")
	}
}

func TestEventDispatcherStopAbortsHungPublish(t *testing.T) {
	pub := &testhelpers.PublisherStub{PublishFn: func(ctx context.Context, _ model.UserRegistered) error {
		<-ctx.Done()
		return ctx.Err()
	}}
	d := NewEventDispatcher(pub, 1, 4, discardLogger())
	d.Start(context.Background())
	for _, id := range []string{"a", "b", "c"} {
		d.Enqueue(event(id))
	}
	waitFor(t, func() bool { return pub.Calls() >= 1 })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	d.Stop(ctx)
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("expected stop to honour its deadline, took %v", elapsed)
	}
	if got := len(pub.Published()); got != 0 {
		t.Fatalf("expected nothing published, got %d", got)
	}
}

func TestEventDispatcherStopInterruptsBackoff(t *testing.T) {
	pub := &testhelpers.PublisherStub{PublishFn: func(context.Context, model.UserRegistered) error {
		return errors.New("broker unavailable")
	}}
	d := NewEventDispatcher(pub, 1, 1, discardLogger())
	d.backoff = time.Hour
	d.Start(context.Background())
	d.Enqueue(event("a"))
	waitFor(t, func() bool { return pub.Calls() == 1 })

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Stop(ctx)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected stop to return without waiting for backoff")
	}
}
