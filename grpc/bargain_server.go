// Package grpc terminates client connections: the unary polling surface
// and the Negotiate stream both live here. Handlers translate wire
// payloads into engine commands and map domain errors back to status
// codes; no negotiation rules are implemented at this layer.
package grpc

import (
	"context"
	"fmt"

	"mealmatch/domain"
	"mealmatch/errors"
	pb "mealmatch/proto/bargain"
	"mealmatch/services"
)

// BargainServer serves the polling path. It runs the identical
// state-machine calls and persistence as the stream gateway, without the
// fan-out side effect, so a polling client and a connected client
// observe a consistent end state.
type BargainServer struct {
	pb.UnimplementedBargainServiceServer
	gateway *Gateway
	service services.IBargainService
}

func NewBargainServer(service services.IBargainService, gateway *Gateway) *BargainServer {
	return &BargainServer{service: service, gateway: gateway}
}

func (s *BargainServer) CreateBargain(ctx context.Context, req *pb.CreateBargainRequest) (*pb.BargainReply, error) {
	negotiation, err := s.service.Propose(ctx, domain.ProposeCommand{
		UserID:        req.UserId,
		MealID:        req.MealId,
		ProposedPrice: req.ProposedPrice,
		Message:       req.Message,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.BargainReply{
		Bargain: toBargainView(negotiation),
		Message: "Bargain offer created",
	}, nil
}

func (s *BargainServer) GetUserBargains(ctx context.Context, req *pb.UserBargainsRequest) (*pb.BargainList, error) {
	negotiations, err := s.service.ListByUser(ctx, req.UserId)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toBargainList(negotiations), nil
}

func (s *BargainServer) GetRestaurantBargains(ctx context.Context, req *pb.RestaurantBargainsRequest) (*pb.BargainList, error) {
	negotiations, err := s.service.ListByRestaurant(ctx, req.RestaurantId)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toBargainList(negotiations), nil
}

func (s *BargainServer) GetAllBargains(ctx context.Context, _ *pb.AllBargainsRequest) (*pb.BargainList, error) {
	negotiations, err := s.service.ListAll(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toBargainList(negotiations), nil
}

func (s *BargainServer) RespondToBargain(ctx context.Context, req *pb.RespondRequest) (*pb.BargainReply, error) {
	decision, err := decisionFromStatus(req.Status)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	negotiation, err := s.service.Respond(ctx, domain.RespondCommand{
		BargainID:    req.BargainId,
		Decision:     decision,
		CounterPrice: req.CounterPrice,
		Message:      req.Message,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.BargainReply{
		Bargain: toBargainView(negotiation),
		Message: "Bargain response sent",
	}, nil
}

func (s *BargainServer) RespondToCounter(ctx context.Context, req *pb.CounterDecisionRequest) (*pb.BargainReply, error) {
	decision, err := counterDecisionFromResponse(req.Response)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	negotiation, err := s.service.ResolveCounter(ctx, domain.CounterDecisionCommand{
		BargainID: req.BargainId,
		Decision:  decision,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.BargainReply{
		Bargain: toBargainView(negotiation),
		Message: fmt.Sprintf("Counter offer %s", req.Response),
	}, nil
}

// Negotiate is the live connection path; the handler lives with the rest
// of the stream logic in gateway.go.
func (s *BargainServer) Negotiate(stream pb.BargainService_NegotiateServer) error {
	return s.gateway.Serve(stream)
}

// decisionFromStatus maps the wire-level status words
// (accepted/rejected/countered) onto engine decisions.
func decisionFromStatus(status string) (domain.Decision, error) {
	switch status {
	case "accepted":
		return domain.DecisionAccept, nil
	case "rejected":
		return domain.DecisionReject, nil
	case "countered":
		return domain.DecisionCounter, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", errors.ErrValidation, status)
	}
}

func counterDecisionFromResponse(response string) (domain.Decision, error) {
	switch response {
	case "accepted":
		return domain.DecisionAccept, nil
	case "rejected":
		return domain.DecisionReject, nil
	default:
		return "", fmt.Errorf("%w: unknown response %q", errors.ErrValidation, response)
	}
}
