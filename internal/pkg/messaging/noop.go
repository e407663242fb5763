package messaging

import (
	"context"
	"time"
)

// Noop is a publisher that discards every message. It is the default
// when no broker is configured, so event emission never blocks the
// request path in small deployments.
type Noop struct{}

// NewNoop returns a publisher that drops messages.
func NewNoop() *Noop {
	return &Noop{}
}

// Close is a no-op.
func (*Noop) Close() error { return nil }

// Publish discards the message.
func (*Noop) Publish(ctx context.Context, destination string, _ OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}

	return PublishResult{
		Topic:     destination,
		Timestamp: time.Now(),
	}, nil
}
