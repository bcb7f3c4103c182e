package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mealmatch/contract"
	"mealmatch/domain"
	"mealmatch/domain/event"
	"mealmatch/mocks"
)

func TestNotifier_Fanout_Delivers_To_Every_Room_Member(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)

	restaurantSink := mocks.NewMockEventSink(ctrl)
	adminSink := mocks.NewMockEventSink(ctrl)

	notifier := NewNotifier(log, mockRegistry, 10, time.Second)

	evt := event.BargainProposed{Bargain: domain.Negotiation{RestaurantID: "rest-1"}}

	// Given one member per targeted room
	mockRegistry.EXPECT().SinksForRoom(domain.RestaurantRoom("rest-1")).
		Return([]contract.EventSink{restaurantSink}).Times(1)
	mockRegistry.EXPECT().SinksForRoom(domain.AdminRoom).
		Return([]contract.EventSink{adminSink}).Times(1)

	delivered := 0
	restaurantSink.EXPECT().Consume(gomock.Any(), evt).
		Do(func(ctx context.Context, e event.DomainEvent) { delivered++ }).
		Return(nil).Times(1)
	adminSink.EXPECT().Consume(gomock.Any(), evt).
		Do(func(ctx context.Context, e event.DomainEvent) { delivered++ }).
		Return(nil).Times(1)

	// When the event is fanned out
	notifier.Fanout(context.Background(), evt)

	// Then each sink got it exactly once
	req.Equal(2, delivered)
}

func TestNotifier_Fanout_Deduplicates_Shared_Connections(t *testing.T) {
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)

	// Given one connection sitting in both targeted rooms
	sharedSink := mocks.NewMockEventSink(ctrl)
	mockRegistry.EXPECT().SinksForRoom(gomock.Any()).
		Return([]contract.EventSink{sharedSink}).Times(2)

	notifier := NewNotifier(log, mockRegistry, 10, time.Second)

	evt := event.BargainProposed{Bargain: domain.Negotiation{RestaurantID: "rest-1"}}

	// Then the shared sink is consumed once, not twice
	sharedSink.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)

	notifier.Fanout(context.Background(), evt)
}

func TestNotifier_Fanout_Includes_Permanent_Sinks(t *testing.T) {
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)

	// Given empty rooms but a registered permanent sink
	mockRegistry.EXPECT().SinksForRoom(gomock.Any()).Return(nil).Times(2)
	permanentSink := mocks.NewMockEventSink(ctrl)
	permanentSink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	notifier := NewNotifier(log, mockRegistry, 10, time.Second).Add(permanentSink)

	notifier.Fanout(context.Background(), event.BargainProposed{
		Bargain: domain.Negotiation{RestaurantID: "rest-1"},
	})
}

func TestNotifier_Fanout_SinkTimeout_Loses_Only_That_Delivery(t *testing.T) {
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)

	stuckSink := mocks.NewMockEventSink(ctrl)
	liveSink := mocks.NewMockEventSink(ctrl)
	mockRegistry.EXPECT().SinksForRoom(domain.RestaurantRoom("rest-1")).
		Return([]contract.EventSink{stuckSink, liveSink}).Times(1)
	mockRegistry.EXPECT().SinksForRoom(domain.AdminRoom).Return(nil).Times(1)

	sinkTimeout := 20 * time.Millisecond
	notifier := NewNotifier(log, mockRegistry, 10, sinkTimeout)

	// Given one sink that never drains
	stuckSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e event.DomainEvent) error {
			<-ctx.Done()     // Waiting for timeout to trigger cancellation
			return ctx.Err() // Sending back "context deadline exceeded"
		}).Times(1)
	// Then the other member still receives the event
	liveSink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	notifier.Fanout(context.Background(), event.BargainProposed{
		Bargain: domain.Negotiation{RestaurantID: "rest-1"},
	})
}

func TestNotifier_Publish_Full_Buffer_Drops(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)

	// Given a notifier whose buffer holds a single event and no running worker
	notifier := NewNotifier(log, mockRegistry, 1, time.Second)
	evt := event.BargainProposed{Bargain: domain.Negotiation{RestaurantID: "rest-1"}}

	// When publishing past capacity
	notifier.Publish(evt)
	notifier.Publish(evt)

	// Then the caller never blocked and exactly one event is queued
	req.Len(notifier.events, 1)
}

func TestNotifier_Run_Drains_In_Publish_Order(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockRegistry.EXPECT().SinksForRoom(gomock.Any()).Return(nil).AnyTimes()

	var observed []domain.Status
	done := make(chan struct{})
	permanentSink := mocks.NewMockEventSink(ctrl)
	permanentSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e event.DomainEvent) error {
			observed = append(observed, e.(event.BargainResponded).Bargain.Status)
			if len(observed) == 2 {
				close(done)
			}
			return nil
		}).Times(2)

	notifier := NewNotifier(log, mockRegistry, 10, time.Second).Add(permanentSink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = notifier.Run(ctx) }()

	// When two transitions of the same negotiation are published in order
	notifier.Publish(event.BargainResponded{Bargain: domain.Negotiation{Status: domain.StatusCountered}})
	notifier.Publish(event.BargainResponded{Bargain: domain.Negotiation{Status: domain.StatusCounterAccepted}})

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Notifier did not drain in time")
	}

	// Then delivery preserved publish order
	req.Equal([]domain.Status{domain.StatusCountered, domain.StatusCounterAccepted}, observed)
}
