package grpc

import (
	"context"

	"mealmatch/errors"
	pbaccount "mealmatch/proto/account"
	"mealmatch/services"
)

type AuthServer struct {
	pbaccount.UnimplementedAuthServiceServer
	service services.IAuthService
}

func NewAuthServer(service services.IAuthService) *AuthServer {
	return &AuthServer{service: service}
}

func (s *AuthServer) Register(_ context.Context, req *pbaccount.RegisterRequest) (*pbaccount.AuthResponse, error) {
	token, userID, err := s.service.Register(req.Email, req.Password)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pbaccount.AuthResponse{Token: string(token), UserId: userID}, nil
}

func (s *AuthServer) Login(_ context.Context, req *pbaccount.LoginRequest) (*pbaccount.AuthResponse, error) {
	token, userID, err := s.service.Login(req.Email, req.Password)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pbaccount.AuthResponse{Token: string(token), UserId: userID}, nil
}
