//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"mealmatch/domain"
	"mealmatch/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself; supervision handles panics and restarts.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision, avoiding manual naming in the
// Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives fanned-out domain events. Implementations must be
// safe for concurrent use and must honor ctx: the notifier bounds each
// delivery with a timeout.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRegistry maps live connections to the rooms they joined. Membership is
// connection-scoped and vanishes on disconnect; reconnecting clients must
// re-emit their join events.
type IRegistry interface {
	SinksForRoom(roomID domain.RoomID) []EventSink
	Join(connectionID string, roomID domain.RoomID, sink EventSink)
	Leave(connectionID string, roomID domain.RoomID)
	DropConnection(connectionID string)
}

// EventPublisher hands a domain event to the fan-out pipeline without
// blocking the caller. Delivery is at most once, fire and forget.
type EventPublisher interface {
	Publish(e event.DomainEvent)
}
