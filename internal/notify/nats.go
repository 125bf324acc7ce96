package notify

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"hearth/pkg/logger"
)

// NATSPublisher publishes events as JSON on the channel name as subject.
type NATSPublisher struct {
	nc     *nats.Conn
	logger *logger.Logger
}

func NewNATSPublisher(nc *nats.Conn, logger logger.Logger) *NATSPublisher {
	return &NATSPublisher{
		nc:     nc,
		logger: &logger,
	}
}

func (p *NATSPublisher) Publish(ctx context.Context, channel string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "natsPublisher.Publish.Marshal: ")
	}
	if err := p.nc.Publish(channel, data); err != nil {
		return errors.Wrap(err, "natsPublisher.Publish: ")
	}
	return nil
}
