package notify

import (
	"context"
	"sync"
	"time"

	"hearth/config"
	"hearth/pkg/logger"
)

type envelope struct {
	channel string
	event   Event
}

// Dispatcher is the message-passing boundary between mutating operations and
// delivery. Publish enqueues and returns immediately; a worker goroutine
// drains the queue and pushes each event through the wrapped Publisher with
// bounded retry. Delivery failure is logged and never reaches the caller.
type Dispatcher struct {
	out     Publisher
	queue   chan envelope
	retries int
	backoff time.Duration
	logger  *logger.Logger
	wg      sync.WaitGroup
}

func NewDispatcher(out Publisher, cfg config.NotifyConfig, logger logger.Logger) *Dispatcher {
	size := cfg.QueueSize
	if size <= 0 {
		size = 1024
	}
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = 3
	}
	backoff := cfg.RetryDelay
	if backoff <= 0 {
		backoff = 100 * time.Millisecond
	}
	return &Dispatcher{
		out:     out,
		queue:   make(chan envelope, size),
		retries: retries,
		backoff: backoff,
		logger:  &logger,
	}
}

// Publish never blocks the mutating call path. A full queue drops the event
// with a loud log line rather than stalling a commit.
func (d *Dispatcher) Publish(ctx context.Context, channel string, event Event) error {
	select {
	case d.queue <- envelope{channel: channel, event: event}:
	default:
		d.logger.Error("notification queue full, dropping event",
			"channel", channel, "type", event.Type, "entity_id", event.EntityID)
	}
	return nil
}

// Run starts the delivery worker. It drains remaining queued events after
// ctx is cancelled so committed mutations still get their notifications out.
func (d *Dispatcher) Run(ctx context.Context) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for {
			select {
			case <-ctx.Done():
				d.drain()
				return
			case env := <-d.queue:
				d.deliver(env)
			}
		}
	}()
}

// Wait blocks until the worker has stopped.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) drain() {
	for {
		select {
		case env := <-d.queue:
			d.deliver(env)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(env envelope) {
	var lastErr error
	delay := d.backoff
	for attempt := 0; attempt <= d.retries; attempt++ {
		if attempt > 0 {
			time.Sleep(delay)
			delay *= 2
		}
		if err := d.out.Publish(context.Background(), env.channel, env.event); err != nil {
			lastErr = err
			continue
		}
		return
	}
	d.logger.Error("notification delivery failed, giving up",
		"channel", env.channel, "type", env.event.Type, "err", lastErr)
}
