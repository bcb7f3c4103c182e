package workers

import (
	"context"
	"log/slog"
	"time"

	"mealmatch/contract"
	"mealmatch/domain/event"
)

// Notifier broadcasts negotiation events to the rooms they name, plus a
// fixed set of permanent sinks (projections, telemetry).
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// durability, or retries: persistence happens before an event is ever
// published, so a lost notification never loses state. Events for a
// single negotiation are delivered in publish order because one worker
// goroutine drains the channel.
//
// Notifier is safe for concurrent use by multiple publishers.
type Notifier struct {
	log             *slog.Logger
	registry        contract.IRegistry
	events          chan event.DomainEvent
	permanentSinks  []contract.EventSink
	deliveryTimeout time.Duration
}

func NewNotifier(log *slog.Logger, registry contract.IRegistry,
	bufferSize int, deliveryTimeout time.Duration) *Notifier {
	return &Notifier{
		log:             log,
		registry:        registry,
		events:          make(chan event.DomainEvent, bufferSize),
		deliveryTimeout: deliveryTimeout,
	}
}

func (w *Notifier) Add(sinks ...contract.EventSink) *Notifier {
	w.permanentSinks = append(w.permanentSinks, sinks...)
	return w
}

// Publish enqueues an event without blocking the caller. When the buffer
// is full the event is dropped and logged: the stored record remains the
// source of truth and polling clients still observe the end state.
func (w *Notifier) Publish(e event.DomainEvent) {
	select {
	case w.events <- e:
	default:
		w.log.Warn("Notification buffer full, dropping event", "rooms", e.Rooms())
	}
}

func (w *Notifier) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping notifier")
			return nil
		case e := <-w.events:
			w.Fanout(ctx, e)
		}
	}
}

// Fanout resolves the event's rooms into live sinks and delivers to each
// at most once, even when a connection sits in several of the targeted
// rooms. Each delivery is bounded by the configured timeout; a slow or
// dead sink only loses its own notification.
func (w *Notifier) Fanout(ctx context.Context, e event.DomainEvent) {
	seen := make(map[contract.EventSink]struct{})
	targets := append([]contract.EventSink{}, w.permanentSinks...)
	for _, sink := range w.permanentSinks {
		seen[sink] = struct{}{}
	}
	for _, room := range e.Rooms() {
		for _, sink := range w.registry.SinksForRoom(room) {
			if _, dup := seen[sink]; dup {
				continue
			}
			seen[sink] = struct{}{}
			targets = append(targets, sink)
		}
	}

	for _, sink := range targets {
		deliveryCtx, cancel := context.WithTimeout(ctx, w.deliveryTimeout)
		if err := sink.Consume(deliveryCtx, e); err != nil {
			w.log.Debug("Sink delivery failed", "error", err)
		}
		cancel()
	}
}
