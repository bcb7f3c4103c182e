package grpc

import (
	"context"

	"mealmatch/domain/event"
)

// Sink buffers fanned-out events for one live connection. Consume is
// called by the notifier; the stream writer goroutine drains the channel
// and pushes each event to the client.
type Sink struct {
	Events chan event.DomainEvent
}

func NewSink(bufferSize int) *Sink {
	return &Sink{Events: make(chan event.DomainEvent, bufferSize)}
}

// Consume hands the event to the connection's writer. A full buffer
// drops the event: a client too slow to drain its own channel loses
// notifications, not everyone else's.
func (s *Sink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
