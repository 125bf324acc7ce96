package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hearth/config"
	"hearth/pkg/logger"
)

// recordingPublisher fails a fixed number of deliveries, then succeeds.
type recordingPublisher struct {
	mu       sync.Mutex
	failures int
	calls    []string
	done     chan struct{}
}

func newRecordingPublisher(failures int) *recordingPublisher {
	return &recordingPublisher{failures: failures, done: make(chan struct{})}
}

func (p *recordingPublisher) Publish(_ context.Context, channel string, _ Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, channel)
	if p.failures > 0 {
		p.failures--
		return errors.New("broker unavailable")
	}
	select {
	case <-p.done:
	default:
		close(p.done)
	}
	return nil
}

func (p *recordingPublisher) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

func waitDelivered(t *testing.T, p *recordingPublisher) {
	t.Helper()
	select {
	case <-p.done:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered in time")
	}
}

func testEvent() Event {
	return Event{
		Type:      TypePropertyStatusChanged,
		EntityID:  uuid.New(),
		Status:    "sold",
		ActorID:   uuid.New(),
		Timestamp: time.Now(),
	}
}

func TestDispatcher_Delivers(t *testing.T) {
	out := newRecordingPublisher(0)
	d := NewDispatcher(out, config.NotifyConfig{}, logger.Logger{})

	ctx, cancel := context.WithCancel(context.Background())
	d.Run(ctx)

	err := d.Publish(context.Background(), "user.test.property", testEvent())
	require.NoError(t, err)

	waitDelivered(t, out)
	cancel()
	d.Wait()

	assert.Equal(t, []string{"user.test.property"}, out.calls)
}

func TestDispatcher_RetriesUntilSuccess(t *testing.T) {
	out := newRecordingPublisher(2)
	d := NewDispatcher(out, config.NotifyConfig{MaxRetries: 3, RetryDelay: time.Millisecond}, logger.Logger{})

	ctx, cancel := context.WithCancel(context.Background())
	d.Run(ctx)

	require.NoError(t, d.Publish(context.Background(), "maintenance.updates", testEvent()))

	waitDelivered(t, out)
	cancel()
	d.Wait()

	assert.Equal(t, 3, out.callCount())
}

func TestDispatcher_GivesUpAfterRetries(t *testing.T) {
	out := newRecordingPublisher(10)
	d := NewDispatcher(out, config.NotifyConfig{MaxRetries: 2, RetryDelay: time.Millisecond}, logger.Logger{})

	ctx, cancel := context.WithCancel(context.Background())
	d.Run(ctx)

	// Publish never surfaces the delivery failure.
	require.NoError(t, d.Publish(context.Background(), "user.test.presence", testEvent()))

	assert.Eventually(t, func() bool {
		return out.callCount() == 3
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	d.Wait()
	assert.Equal(t, 3, out.callCount())
}

func TestDispatcher_DrainsOnShutdown(t *testing.T) {
	out := newRecordingPublisher(0)
	d := NewDispatcher(out, config.NotifyConfig{}, logger.Logger{})

	// Enqueue before the worker starts, then cancel immediately; the queued
	// event must still go out during drain.
	require.NoError(t, d.Publish(context.Background(), "user.test.property", testEvent()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Run(ctx)
	d.Wait()

	assert.Equal(t, 1, out.callCount())
}

func TestDispatcher_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	out := newRecordingPublisher(0)
	d := NewDispatcher(out, config.NotifyConfig{QueueSize: 1}, logger.Logger{})

	// No worker running, so the second publish finds the queue full. It must
	// return immediately and without error.
	require.NoError(t, d.Publish(context.Background(), "a", testEvent()))

	delivered := make(chan error, 1)
	go func() {
		delivered <- d.Publish(context.Background(), "b", testEvent())
	}()

	select {
	case err := <-delivered:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full queue")
	}
}
