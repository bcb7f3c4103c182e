package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mealmatch/domain"
	"mealmatch/domain/event"
)

func TestSink_Consume_Buffers_Until_Full(t *testing.T) {
	req := require.New(t)
	sink := NewSink(2)
	evt := event.BargainProposed{Bargain: domain.Negotiation{RestaurantID: "rest-1"}}

	// When more events arrive than the connection buffer holds
	req.NoError(sink.Consume(context.Background(), evt))
	req.NoError(sink.Consume(context.Background(), evt))
	req.NoError(sink.Consume(context.Background(), evt))

	// Then the overflow was dropped without blocking the notifier
	req.Len(sink.Events, 2)
}

func TestSink_Consume_Preserves_Order(t *testing.T) {
	req := require.New(t)
	sink := NewSink(4)

	first := event.BargainResponded{Bargain: domain.Negotiation{Status: domain.StatusCountered}}
	second := event.BargainResponded{Bargain: domain.Negotiation{Status: domain.StatusCounterAccepted}}
	req.NoError(sink.Consume(context.Background(), first))
	req.NoError(sink.Consume(context.Background(), second))

	req.Equal(first, <-sink.Events)
	req.Equal(second, <-sink.Events)
}
