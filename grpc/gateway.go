package grpc

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"mealmatch/contract"
	"mealmatch/domain"
	"mealmatch/domain/event"
	pb "mealmatch/proto/bargain"
	"mealmatch/services"
)

// Gateway runs the live negotiation channel. Each connection gets a
// dedicated sink registered in the room registry; inbound events invoke
// the engine and, on success, publish a domain event for room fan-out.
// Direct acknowledgements and errors go only to the originating
// connection, through the same single writer goroutine that drains the
// sink, because a gRPC stream tolerates only one concurrent sender.
type Gateway struct {
	log                  *slog.Logger
	service              services.IBargainService
	registry             contract.IRegistry
	publisher            contract.EventPublisher
	connectionBufferSize int
}

func NewGateway(log *slog.Logger, service services.IBargainService,
	registry contract.IRegistry, publisher contract.EventPublisher,
	connectionBufferSize int) *Gateway {
	return &Gateway{
		log:                  log,
		service:              service,
		registry:             registry,
		publisher:            publisher,
		connectionBufferSize: connectionBufferSize,
	}
}

// Serve blocks until the client disconnects or a network error occurs.
// Room membership is torn down on return; a reconnecting client must
// re-emit its join events.
func (g *Gateway) Serve(stream pb.BargainService_NegotiateServer) error {
	connectionID := uuid.NewString()
	sink := NewSink(g.connectionBufferSize)
	replies := make(chan *pb.ServerEvent, g.connectionBufferSize)
	defer g.registry.DropConnection(connectionID)

	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()

	// Single writer: merges room fan-out with direct replies.
	writeErr := make(chan error, 1)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case evt := <-sink.Events:
				if out := toServerEvent(evt); out != nil {
					if err := stream.Send(out); err != nil {
						writeErr <- err
						return
					}
				}
			case reply := <-replies:
				if err := stream.Send(reply); err != nil {
					writeErr <- err
					return
				}
			}
		}
	}()

	for {
		select {
		case err := <-writeErr:
			g.log.Error("Failed to push event to stream",
				"connection_id", connectionID, "error", err)
			return err
		default:
		}

		in, err := stream.Recv()
		if err == io.EOF {
			g.log.Warn(fmt.Sprintf("Client %s disconnected", connectionID))
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		g.handle(ctx, connectionID, sink, replies, in)
	}
}

func (g *Gateway) handle(ctx context.Context, connectionID string,
	sink *Sink, replies chan<- *pb.ServerEvent, in *pb.ClientEvent) {
	switch ev := in.Event.(type) {
	case *pb.ClientEvent_JoinUserRoom:
		g.registry.Join(connectionID, domain.UserRoom(ev.JoinUserRoom.UserId), sink)
		g.log.Info("Connection joined user room",
			"connection_id", connectionID, "user_id", ev.JoinUserRoom.UserId)

	case *pb.ClientEvent_JoinRestaurantRoom:
		g.registry.Join(connectionID, domain.RestaurantRoom(ev.JoinRestaurantRoom.RestaurantId), sink)
		g.log.Info("Connection joined restaurant room",
			"connection_id", connectionID, "restaurant_id", ev.JoinRestaurantRoom.RestaurantId)

	case *pb.ClientEvent_JoinAdminRoom:
		g.registry.Join(connectionID, domain.AdminRoom, sink)
		g.log.Info("Connection joined admin room", "connection_id", connectionID)

	case *pb.ClientEvent_NewBargain:
		g.handleNewBargain(ctx, replies, ev.NewBargain)

	case *pb.ClientEvent_BargainResponse:
		g.handleBargainResponse(ctx, replies, ev.BargainResponse)

	case *pb.ClientEvent_AcceptCounter:
		g.handleAcceptCounter(ctx, replies, ev.AcceptCounter)

	default:
		g.log.Debug("Ignoring unknown client event", "connection_id", connectionID)
	}
}

func (g *Gateway) handleNewBargain(ctx context.Context, replies chan<- *pb.ServerEvent, req *pb.NewBargain) {
	negotiation, err := g.service.Propose(ctx, domain.ProposeCommand{
		UserID:        req.UserId,
		MealID:        req.MealId,
		ProposedPrice: req.ProposedPrice,
		Message:       req.Message,
	})
	if err != nil {
		g.sendReply(ctx, replies, errorEvent("Failed to create bargain offer", err))
		return
	}

	g.sendReply(ctx, replies, &pb.ServerEvent{Event: &pb.ServerEvent_BargainCreated{
		BargainCreated: &pb.BargainCreated{
			Bargain: toBargainView(negotiation),
			Message: "Bargain offer sent successfully!",
		},
	}})
	g.publisher.Publish(event.BargainProposed{Bargain: negotiation})
}

func (g *Gateway) handleBargainResponse(ctx context.Context, replies chan<- *pb.ServerEvent, req *pb.BargainResponse) {
	decision, err := decisionFromStatus(req.Status)
	if err != nil {
		g.sendReply(ctx, replies, errorEvent("Failed to send response", err))
		return
	}
	negotiation, err := g.service.Respond(ctx, domain.RespondCommand{
		BargainID:    req.BargainId,
		Decision:     decision,
		CounterPrice: req.CounterPrice,
		Message:      req.Message,
	})
	if err != nil {
		g.sendReply(ctx, replies, errorEvent("Failed to send response", err))
		return
	}

	g.sendReply(ctx, replies, &pb.ServerEvent{Event: &pb.ServerEvent_ResponseSent{
		ResponseSent: &pb.ResponseSent{
			Bargain: toBargainView(negotiation),
			Message: "Response sent successfully!",
		},
	}})
	g.publisher.Publish(event.BargainResponded{
		Bargain: negotiation,
		Note:    fmt.Sprintf("Your bargain was %s!", negotiation.Status),
	})
}

func (g *Gateway) handleAcceptCounter(ctx context.Context, replies chan<- *pb.ServerEvent, req *pb.AcceptCounter) {
	negotiation, err := g.service.ResolveCounter(ctx, domain.CounterDecisionCommand{
		BargainID: req.BargainId,
		Decision:  domain.DecisionAccept,
	})
	if err != nil {
		g.sendReply(ctx, replies, errorEvent("Failed to accept counter offer", err))
		return
	}

	g.sendReply(ctx, replies, &pb.ServerEvent{Event: &pb.ServerEvent_CounterAccepted{
		CounterAccepted: &pb.CounterAccepted{
			Bargain: toBargainView(negotiation),
			Message: "Counter offer accepted! You can now add to cart.",
		},
	}})
	g.publisher.Publish(event.CounterResolved{Bargain: negotiation})
}

// sendReply enqueues a direct acknowledgement for the writer goroutine.
// Dropping is acceptable only when the connection is already going away.
func (g *Gateway) sendReply(ctx context.Context, replies chan<- *pb.ServerEvent, reply *pb.ServerEvent) {
	select {
	case replies <- reply:
	case <-ctx.Done():
	}
}

func errorEvent(message string, err error) *pb.ServerEvent {
	return &pb.ServerEvent{Event: &pb.ServerEvent_BargainError{
		BargainError: &pb.BargainError{
			Message: fmt.Sprintf("%s: %v", message, err),
		},
	}}
}

// toServerEvent translates a fanned-out domain event into the wire event
// a room member expects. The originator's acknowledgement never travels
// this path; it is sent directly from the handler.
func toServerEvent(e event.DomainEvent) *pb.ServerEvent {
	switch evt := e.(type) {
	case event.BargainProposed:
		return &pb.ServerEvent{Event: &pb.ServerEvent_BargainReceived{
			BargainReceived: &pb.BargainReceived{
				Bargain: toBargainView(evt.Bargain),
				Message: "New bargain offer received!",
			},
		}}
	case event.BargainResponded:
		return &pb.ServerEvent{Event: &pb.ServerEvent_BargainUpdate{
			BargainUpdate: &pb.BargainUpdate{
				Bargain: toBargainView(evt.Bargain),
				Message: evt.Note,
			},
		}}
	case event.CounterResolved:
		return &pb.ServerEvent{Event: &pb.ServerEvent_BargainAccepted{
			BargainAccepted: &pb.BargainAccepted{
				Bargain: toBargainView(evt.Bargain),
				Message: "Counter offer accepted!",
			},
		}}
	default:
		return nil
	}
}
