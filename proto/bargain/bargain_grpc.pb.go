// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: proto/bargain/bargain.proto

package bargain

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	BargainService_CreateBargain_FullMethodName         = "/mealmatch.bargain.BargainService/CreateBargain"
	BargainService_GetUserBargains_FullMethodName       = "/mealmatch.bargain.BargainService/GetUserBargains"
	BargainService_GetRestaurantBargains_FullMethodName = "/mealmatch.bargain.BargainService/GetRestaurantBargains"
	BargainService_GetAllBargains_FullMethodName        = "/mealmatch.bargain.BargainService/GetAllBargains"
	BargainService_RespondToBargain_FullMethodName      = "/mealmatch.bargain.BargainService/RespondToBargain"
	BargainService_RespondToCounter_FullMethodName      = "/mealmatch.bargain.BargainService/RespondToCounter"
	BargainService_Negotiate_FullMethodName             = "/mealmatch.bargain.BargainService/Negotiate"
)

// BargainServiceClient is the client API for BargainService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// BargainService carries the price-negotiation flow twice: a unary
// request/response surface for polling clients, and the Negotiate stream
// for clients holding a live connection. Both paths run the same state
// machine against the same store; only the stream side fans out.
type BargainServiceClient interface {
	CreateBargain(ctx context.Context, in *CreateBargainRequest, opts ...grpc.CallOption) (*BargainReply, error)
	GetUserBargains(ctx context.Context, in *UserBargainsRequest, opts ...grpc.CallOption) (*BargainList, error)
	GetRestaurantBargains(ctx context.Context, in *RestaurantBargainsRequest, opts ...grpc.CallOption) (*BargainList, error)
	GetAllBargains(ctx context.Context, in *AllBargainsRequest, opts ...grpc.CallOption) (*BargainList, error)
	RespondToBargain(ctx context.Context, in *RespondRequest, opts ...grpc.CallOption) (*BargainReply, error)
	RespondToCounter(ctx context.Context, in *CounterDecisionRequest, opts ...grpc.CallOption) (*BargainReply, error)
	Negotiate(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[ClientEvent, ServerEvent], error)
}

type bargainServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBargainServiceClient(cc grpc.ClientConnInterface) BargainServiceClient {
	return &bargainServiceClient{cc}
}

func (c *bargainServiceClient) CreateBargain(ctx context.Context, in *CreateBargainRequest, opts ...grpc.CallOption) (*BargainReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BargainReply)
	err := c.cc.Invoke(ctx, BargainService_CreateBargain_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bargainServiceClient) GetUserBargains(ctx context.Context, in *UserBargainsRequest, opts ...grpc.CallOption) (*BargainList, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BargainList)
	err := c.cc.Invoke(ctx, BargainService_GetUserBargains_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bargainServiceClient) GetRestaurantBargains(ctx context.Context, in *RestaurantBargainsRequest, opts ...grpc.CallOption) (*BargainList, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BargainList)
	err := c.cc.Invoke(ctx, BargainService_GetRestaurantBargains_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bargainServiceClient) GetAllBargains(ctx context.Context, in *AllBargainsRequest, opts ...grpc.CallOption) (*BargainList, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BargainList)
	err := c.cc.Invoke(ctx, BargainService_GetAllBargains_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bargainServiceClient) RespondToBargain(ctx context.Context, in *RespondRequest, opts ...grpc.CallOption) (*BargainReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BargainReply)
	err := c.cc.Invoke(ctx, BargainService_RespondToBargain_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bargainServiceClient) RespondToCounter(ctx context.Context, in *CounterDecisionRequest, opts ...grpc.CallOption) (*BargainReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BargainReply)
	err := c.cc.Invoke(ctx, BargainService_RespondToCounter_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bargainServiceClient) Negotiate(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[ClientEvent, ServerEvent], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &BargainService_ServiceDesc.Streams[0], BargainService_Negotiate_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[ClientEvent, ServerEvent]{ClientStream: stream}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type BargainService_NegotiateClient = grpc.BidiStreamingClient[ClientEvent, ServerEvent]

// BargainServiceServer is the server API for BargainService service.
// All implementations must embed UnimplementedBargainServiceServer
// for forward compatibility.
//
// BargainService carries the price-negotiation flow twice: a unary
// request/response surface for polling clients, and the Negotiate stream
// for clients holding a live connection. Both paths run the same state
// machine against the same store; only the stream side fans out.
type BargainServiceServer interface {
	CreateBargain(context.Context, *CreateBargainRequest) (*BargainReply, error)
	GetUserBargains(context.Context, *UserBargainsRequest) (*BargainList, error)
	GetRestaurantBargains(context.Context, *RestaurantBargainsRequest) (*BargainList, error)
	GetAllBargains(context.Context, *AllBargainsRequest) (*BargainList, error)
	RespondToBargain(context.Context, *RespondRequest) (*BargainReply, error)
	RespondToCounter(context.Context, *CounterDecisionRequest) (*BargainReply, error)
	Negotiate(grpc.BidiStreamingServer[ClientEvent, ServerEvent]) error
	mustEmbedUnimplementedBargainServiceServer()
}

// UnimplementedBargainServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBargainServiceServer struct{}

func (UnimplementedBargainServiceServer) CreateBargain(context.Context, *CreateBargainRequest) (*BargainReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateBargain not implemented")
}
func (UnimplementedBargainServiceServer) GetUserBargains(context.Context, *UserBargainsRequest) (*BargainList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUserBargains not implemented")
}
func (UnimplementedBargainServiceServer) GetRestaurantBargains(context.Context, *RestaurantBargainsRequest) (*BargainList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRestaurantBargains not implemented")
}
func (UnimplementedBargainServiceServer) GetAllBargains(context.Context, *AllBargainsRequest) (*BargainList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAllBargains not implemented")
}
func (UnimplementedBargainServiceServer) RespondToBargain(context.Context, *RespondRequest) (*BargainReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RespondToBargain not implemented")
}
func (UnimplementedBargainServiceServer) RespondToCounter(context.Context, *CounterDecisionRequest) (*BargainReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RespondToCounter not implemented")
}
func (UnimplementedBargainServiceServer) Negotiate(grpc.BidiStreamingServer[ClientEvent, ServerEvent]) error {
	return status.Errorf(codes.Unimplemented, "method Negotiate not implemented")
}
func (UnimplementedBargainServiceServer) mustEmbedUnimplementedBargainServiceServer() {}
func (UnimplementedBargainServiceServer) testEmbeddedByValue()                        {}

// UnsafeBargainServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BargainServiceServer will
// result in compilation errors.
type UnsafeBargainServiceServer interface {
	mustEmbedUnimplementedBargainServiceServer()
}

func RegisterBargainServiceServer(s grpc.ServiceRegistrar, srv BargainServiceServer) {
	// If the following call pancis, it indicates UnimplementedBargainServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BargainService_ServiceDesc, srv)
}

func _BargainService_CreateBargain_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateBargainRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BargainServiceServer).CreateBargain(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BargainService_CreateBargain_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BargainServiceServer).CreateBargain(ctx, req.(*CreateBargainRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BargainService_GetUserBargains_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UserBargainsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BargainServiceServer).GetUserBargains(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BargainService_GetUserBargains_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BargainServiceServer).GetUserBargains(ctx, req.(*UserBargainsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BargainService_GetRestaurantBargains_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RestaurantBargainsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BargainServiceServer).GetRestaurantBargains(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BargainService_GetRestaurantBargains_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BargainServiceServer).GetRestaurantBargains(ctx, req.(*RestaurantBargainsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BargainService_GetAllBargains_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AllBargainsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BargainServiceServer).GetAllBargains(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BargainService_GetAllBargains_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BargainServiceServer).GetAllBargains(ctx, req.(*AllBargainsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BargainService_RespondToBargain_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RespondRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BargainServiceServer).RespondToBargain(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BargainService_RespondToBargain_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BargainServiceServer).RespondToBargain(ctx, req.(*RespondRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BargainService_RespondToCounter_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CounterDecisionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BargainServiceServer).RespondToCounter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BargainService_RespondToCounter_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BargainServiceServer).RespondToCounter(ctx, req.(*CounterDecisionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BargainService_Negotiate_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(BargainServiceServer).Negotiate(&grpc.GenericServerStream[ClientEvent, ServerEvent]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type BargainService_NegotiateServer = grpc.BidiStreamingServer[ClientEvent, ServerEvent]

// BargainService_ServiceDesc is the grpc.ServiceDesc for BargainService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BargainService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "mealmatch.bargain.BargainService",
	HandlerType: (*BargainServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateBargain",
			Handler:    _BargainService_CreateBargain_Handler,
		},
		{
			MethodName: "GetUserBargains",
			Handler:    _BargainService_GetUserBargains_Handler,
		},
		{
			MethodName: "GetRestaurantBargains",
			Handler:    _BargainService_GetRestaurantBargains_Handler,
		},
		{
			MethodName: "GetAllBargains",
			Handler:    _BargainService_GetAllBargains_Handler,
		},
		{
			MethodName: "RespondToBargain",
			Handler:    _BargainService_RespondToBargain_Handler,
		},
		{
			MethodName: "RespondToCounter",
			Handler:    _BargainService_RespondToCounter_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Negotiate",
			Handler:       _BargainService_Negotiate_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "proto/bargain/bargain.proto",
}

const (
	OrderService_GetUserOrders_FullMethodName = "/mealmatch.bargain.OrderService/GetUserOrders"
	OrderService_GetAllOrders_FullMethodName  = "/mealmatch.bargain.OrderService/GetAllOrders"
)

// OrderServiceClient is the client API for OrderService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type OrderServiceClient interface {
	GetUserOrders(ctx context.Context, in *UserOrdersRequest, opts ...grpc.CallOption) (*OrderList, error)
	GetAllOrders(ctx context.Context, in *AllOrdersRequest, opts ...grpc.CallOption) (*OrderList, error)
}

type orderServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOrderServiceClient(cc grpc.ClientConnInterface) OrderServiceClient {
	return &orderServiceClient{cc}
}

func (c *orderServiceClient) GetUserOrders(ctx context.Context, in *UserOrdersRequest, opts ...grpc.CallOption) (*OrderList, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(OrderList)
	err := c.cc.Invoke(ctx, OrderService_GetUserOrders_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderServiceClient) GetAllOrders(ctx context.Context, in *AllOrdersRequest, opts ...grpc.CallOption) (*OrderList, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(OrderList)
	err := c.cc.Invoke(ctx, OrderService_GetAllOrders_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OrderServiceServer is the server API for OrderService service.
// All implementations must embed UnimplementedOrderServiceServer
// for forward compatibility.
type OrderServiceServer interface {
	GetUserOrders(context.Context, *UserOrdersRequest) (*OrderList, error)
	GetAllOrders(context.Context, *AllOrdersRequest) (*OrderList, error)
	mustEmbedUnimplementedOrderServiceServer()
}

// UnimplementedOrderServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedOrderServiceServer struct{}

func (UnimplementedOrderServiceServer) GetUserOrders(context.Context, *UserOrdersRequest) (*OrderList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUserOrders not implemented")
}
func (UnimplementedOrderServiceServer) GetAllOrders(context.Context, *AllOrdersRequest) (*OrderList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAllOrders not implemented")
}
func (UnimplementedOrderServiceServer) mustEmbedUnimplementedOrderServiceServer() {}
func (UnimplementedOrderServiceServer) testEmbeddedByValue()                      {}

// UnsafeOrderServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to OrderServiceServer will
// result in compilation errors.
type UnsafeOrderServiceServer interface {
	mustEmbedUnimplementedOrderServiceServer()
}

func RegisterOrderServiceServer(s grpc.ServiceRegistrar, srv OrderServiceServer) {
	// If the following call pancis, it indicates UnimplementedOrderServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&OrderService_ServiceDesc, srv)
}

func _OrderService_GetUserOrders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UserOrdersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderServiceServer).GetUserOrders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OrderService_GetUserOrders_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderServiceServer).GetUserOrders(ctx, req.(*UserOrdersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderService_GetAllOrders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AllOrdersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderServiceServer).GetAllOrders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OrderService_GetAllOrders_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderServiceServer).GetAllOrders(ctx, req.(*AllOrdersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// OrderService_ServiceDesc is the grpc.ServiceDesc for OrderService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var OrderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "mealmatch.bargain.OrderService",
	HandlerType: (*OrderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetUserOrders",
			Handler:    _OrderService_GetUserOrders_Handler,
		},
		{
			MethodName: "GetAllOrders",
			Handler:    _OrderService_GetAllOrders_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/bargain/bargain.proto",
}

const (
	MealService_SearchMeals_FullMethodName = "/mealmatch.bargain.MealService/SearchMeals"
)

// MealServiceClient is the client API for MealService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type MealServiceClient interface {
	SearchMeals(ctx context.Context, in *SearchMealsRequest, opts ...grpc.CallOption) (*MealList, error)
}

type mealServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMealServiceClient(cc grpc.ClientConnInterface) MealServiceClient {
	return &mealServiceClient{cc}
}

func (c *mealServiceClient) SearchMeals(ctx context.Context, in *SearchMealsRequest, opts ...grpc.CallOption) (*MealList, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MealList)
	err := c.cc.Invoke(ctx, MealService_SearchMeals_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MealServiceServer is the server API for MealService service.
// All implementations must embed UnimplementedMealServiceServer
// for forward compatibility.
type MealServiceServer interface {
	SearchMeals(context.Context, *SearchMealsRequest) (*MealList, error)
	mustEmbedUnimplementedMealServiceServer()
}

// UnimplementedMealServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMealServiceServer struct{}

func (UnimplementedMealServiceServer) SearchMeals(context.Context, *SearchMealsRequest) (*MealList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchMeals not implemented")
}
func (UnimplementedMealServiceServer) mustEmbedUnimplementedMealServiceServer() {}
func (UnimplementedMealServiceServer) testEmbeddedByValue()                     {}

// UnsafeMealServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MealServiceServer will
// result in compilation errors.
type UnsafeMealServiceServer interface {
	mustEmbedUnimplementedMealServiceServer()
}

func RegisterMealServiceServer(s grpc.ServiceRegistrar, srv MealServiceServer) {
	// If the following call pancis, it indicates UnimplementedMealServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MealService_ServiceDesc, srv)
}

func _MealService_SearchMeals_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchMealsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MealServiceServer).SearchMeals(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MealService_SearchMeals_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MealServiceServer).SearchMeals(ctx, req.(*SearchMealsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MealService_ServiceDesc is the grpc.ServiceDesc for MealService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MealService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "mealmatch.bargain.MealService",
	HandlerType: (*MealServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SearchMeals",
			Handler:    _MealService_SearchMeals_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/bargain/bargain.proto",
}
