// Hand-maintained gRPC bindings for linkapp.proto, following the
// protoc-gen-go-grpc layout so the service desc, client, and server
// interfaces stay in the shapes the grpc runtime expects.
package linkapp

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const (
	Matchmaker_GetSwipeDeck_FullMethodName  = "/linkapp.v1.Matchmaker/GetSwipeDeck"
	Matchmaker_PutLike_FullMethodName       = "/linkapp.v1.Matchmaker/PutLike"
	Matchmaker_CountLikedYou_FullMethodName = "/linkapp.v1.Matchmaker/CountLikedYou"
	Matchmaker_GetChatList_FullMethodName   = "/linkapp.v1.Matchmaker/GetChatList"
	Matchmaker_GetThread_FullMethodName     = "/linkapp.v1.Matchmaker/GetThread"
	Matchmaker_SendMessage_FullMethodName   = "/linkapp.v1.Matchmaker/SendMessage"
	Matchmaker_MarkRead_FullMethodName      = "/linkapp.v1.Matchmaker/MarkRead"
	Matchmaker_Unmatch_FullMethodName       = "/linkapp.v1.Matchmaker/Unmatch"
	Matchmaker_WatchThread_FullMethodName   = "/linkapp.v1.Matchmaker/WatchThread"
	Matchmaker_WatchChatList_FullMethodName = "/linkapp.v1.Matchmaker/WatchChatList"
)

// MatchmakerClient is the client API for Matchmaker service.
type MatchmakerClient interface {
	GetSwipeDeck(ctx context.Context, in *GetSwipeDeckRequest, opts ...grpc.CallOption) (*GetSwipeDeckResponse, error)
	PutLike(ctx context.Context, in *PutLikeRequest, opts ...grpc.CallOption) (*PutLikeResponse, error)
	CountLikedYou(ctx context.Context, in *CountLikedYouRequest, opts ...grpc.CallOption) (*CountLikedYouResponse, error)
	GetChatList(ctx context.Context, in *GetChatListRequest, opts ...grpc.CallOption) (*GetChatListResponse, error)
	GetThread(ctx context.Context, in *GetThreadRequest, opts ...grpc.CallOption) (*GetThreadResponse, error)
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error)
	MarkRead(ctx context.Context, in *MarkReadRequest, opts ...grpc.CallOption) (*MarkReadResponse, error)
	Unmatch(ctx context.Context, in *UnmatchRequest, opts ...grpc.CallOption) (*UnmatchResponse, error)
	WatchThread(ctx context.Context, in *WatchThreadRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[GetThreadResponse], error)
	WatchChatList(ctx context.Context, in *WatchChatListRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[GetChatListResponse], error)
}

type matchmakerClient struct {
	cc grpc.ClientConnInterface
}

func NewMatchmakerClient(cc grpc.ClientConnInterface) MatchmakerClient {
	return &matchmakerClient{cc}
}

func (c *matchmakerClient) GetSwipeDeck(ctx context.Context, in *GetSwipeDeckRequest, opts ...grpc.CallOption) (*GetSwipeDeckResponse, error) {
	out := new(GetSwipeDeckResponse)
	err := c.cc.Invoke(ctx, Matchmaker_GetSwipeDeck_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchmakerClient) PutLike(ctx context.Context, in *PutLikeRequest, opts ...grpc.CallOption) (*PutLikeResponse, error) {
	out := new(PutLikeResponse)
	err := c.cc.Invoke(ctx, Matchmaker_PutLike_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchmakerClient) CountLikedYou(ctx context.Context, in *CountLikedYouRequest, opts ...grpc.CallOption) (*CountLikedYouResponse, error) {
	out := new(CountLikedYouResponse)
	err := c.cc.Invoke(ctx, Matchmaker_CountLikedYou_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchmakerClient) GetChatList(ctx context.Context, in *GetChatListRequest, opts ...grpc.CallOption) (*GetChatListResponse, error) {
	out := new(GetChatListResponse)
	err := c.cc.Invoke(ctx, Matchmaker_GetChatList_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchmakerClient) GetThread(ctx context.Context, in *GetThreadRequest, opts ...grpc.CallOption) (*GetThreadResponse, error) {
	out := new(GetThreadResponse)
	err := c.cc.Invoke(ctx, Matchmaker_GetThread_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchmakerClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error) {
	out := new(SendMessageResponse)
	err := c.cc.Invoke(ctx, Matchmaker_SendMessage_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchmakerClient) MarkRead(ctx context.Context, in *MarkReadRequest, opts ...grpc.CallOption) (*MarkReadResponse, error) {
	out := new(MarkReadResponse)
	err := c.cc.Invoke(ctx, Matchmaker_MarkRead_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchmakerClient) Unmatch(ctx context.Context, in *UnmatchRequest, opts ...grpc.CallOption) (*UnmatchResponse, error) {
	out := new(UnmatchResponse)
	err := c.cc.Invoke(ctx, Matchmaker_Unmatch_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchmakerClient) WatchThread(ctx context.Context, in *WatchThreadRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[GetThreadResponse], error) {
	stream, err := c.cc.NewStream(ctx, &Matchmaker_ServiceDesc.Streams[0], Matchmaker_WatchThread_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WatchThreadRequest, GetThreadResponse]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// Matchmaker_WatchThreadClient is kept for readability at call sites.
type Matchmaker_WatchThreadClient = grpc.ServerStreamingClient[GetThreadResponse]

func (c *matchmakerClient) WatchChatList(ctx context.Context, in *WatchChatListRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[GetChatListResponse], error) {
	stream, err := c.cc.NewStream(ctx, &Matchmaker_ServiceDesc.Streams[1], Matchmaker_WatchChatList_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WatchChatListRequest, GetChatListResponse]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// Matchmaker_WatchChatListClient is kept for readability at call sites.
type Matchmaker_WatchChatListClient = grpc.ServerStreamingClient[GetChatListResponse]

// MatchmakerServer is the server API for Matchmaker service.
// All implementations must embed UnimplementedMatchmakerServer
// for forward compatibility.
type MatchmakerServer interface {
	GetSwipeDeck(context.Context, *GetSwipeDeckRequest) (*GetSwipeDeckResponse, error)
	PutLike(context.Context, *PutLikeRequest) (*PutLikeResponse, error)
	CountLikedYou(context.Context, *CountLikedYouRequest) (*CountLikedYouResponse, error)
	GetChatList(context.Context, *GetChatListRequest) (*GetChatListResponse, error)
	GetThread(context.Context, *GetThreadRequest) (*GetThreadResponse, error)
	SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error)
	MarkRead(context.Context, *MarkReadRequest) (*MarkReadResponse, error)
	Unmatch(context.Context, *UnmatchRequest) (*UnmatchResponse, error)
	WatchThread(*WatchThreadRequest, grpc.ServerStreamingServer[GetThreadResponse]) error
	WatchChatList(*WatchChatListRequest, grpc.ServerStreamingServer[GetChatListResponse]) error
	mustEmbedUnimplementedMatchmakerServer()
}

// UnimplementedMatchmakerServer must be embedded to have forward compatible
// implementations.
type UnimplementedMatchmakerServer struct{}

func (UnimplementedMatchmakerServer) GetSwipeDeck(context.Context, *GetSwipeDeckRequest) (*GetSwipeDeckResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSwipeDeck not implemented")
}
func (UnimplementedMatchmakerServer) PutLike(context.Context, *PutLikeRequest) (*PutLikeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PutLike not implemented")
}
func (UnimplementedMatchmakerServer) CountLikedYou(context.Context, *CountLikedYouRequest) (*CountLikedYouResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CountLikedYou not implemented")
}
func (UnimplementedMatchmakerServer) GetChatList(context.Context, *GetChatListRequest) (*GetChatListResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetChatList not implemented")
}
func (UnimplementedMatchmakerServer) GetThread(context.Context, *GetThreadRequest) (*GetThreadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetThread not implemented")
}
func (UnimplementedMatchmakerServer) SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendMessage not implemented")
}
func (UnimplementedMatchmakerServer) MarkRead(context.Context, *MarkReadRequest) (*MarkReadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MarkRead not implemented")
}
func (UnimplementedMatchmakerServer) Unmatch(context.Context, *UnmatchRequest) (*UnmatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Unmatch not implemented")
}
func (UnimplementedMatchmakerServer) WatchThread(*WatchThreadRequest, grpc.ServerStreamingServer[GetThreadResponse]) error {
	return status.Errorf(codes.Unimplemented, "method WatchThread not implemented")
}
func (UnimplementedMatchmakerServer) WatchChatList(*WatchChatListRequest, grpc.ServerStreamingServer[GetChatListResponse]) error {
	return status.Errorf(codes.Unimplemented, "method WatchChatList not implemented")
}
func (UnimplementedMatchmakerServer) mustEmbedUnimplementedMatchmakerServer() {}

func RegisterMatchmakerServer(s grpc.ServiceRegistrar, srv MatchmakerServer) {
	s.RegisterService(&Matchmaker_ServiceDesc, srv)
}

func _Matchmaker_GetSwipeDeck_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSwipeDeckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchmakerServer).GetSwipeDeck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Matchmaker_GetSwipeDeck_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchmakerServer).GetSwipeDeck(ctx, req.(*GetSwipeDeckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Matchmaker_PutLike_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PutLikeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchmakerServer).PutLike(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Matchmaker_PutLike_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchmakerServer).PutLike(ctx, req.(*PutLikeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Matchmaker_CountLikedYou_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CountLikedYouRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchmakerServer).CountLikedYou(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Matchmaker_CountLikedYou_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchmakerServer).CountLikedYou(ctx, req.(*CountLikedYouRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Matchmaker_GetChatList_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetChatListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchmakerServer).GetChatList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Matchmaker_GetChatList_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchmakerServer).GetChatList(ctx, req.(*GetChatListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Matchmaker_GetThread_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetThreadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchmakerServer).GetThread(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Matchmaker_GetThread_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchmakerServer).GetThread(ctx, req.(*GetThreadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Matchmaker_SendMessage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchmakerServer).SendMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Matchmaker_SendMessage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchmakerServer).SendMessage(ctx, req.(*SendMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Matchmaker_MarkRead_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MarkReadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchmakerServer).MarkRead(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Matchmaker_MarkRead_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchmakerServer).MarkRead(ctx, req.(*MarkReadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Matchmaker_Unmatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UnmatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchmakerServer).Unmatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Matchmaker_Unmatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchmakerServer).Unmatch(ctx, req.(*UnmatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Matchmaker_WatchThread_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(WatchThreadRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(MatchmakerServer).WatchThread(m, &grpc.GenericServerStream[WatchThreadRequest, GetThreadResponse]{ServerStream: stream})
}

// Matchmaker_WatchThreadServer is kept for readability at call sites.
type Matchmaker_WatchThreadServer = grpc.ServerStreamingServer[GetThreadResponse]

func _Matchmaker_WatchChatList_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(WatchChatListRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(MatchmakerServer).WatchChatList(m, &grpc.GenericServerStream[WatchChatListRequest, GetChatListResponse]{ServerStream: stream})
}

// Matchmaker_WatchChatListServer is kept for readability at call sites.
type Matchmaker_WatchChatListServer = grpc.ServerStreamingServer[GetChatListResponse]

// Matchmaker_ServiceDesc is the grpc.ServiceDesc for Matchmaker service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var Matchmaker_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "linkapp.v1.Matchmaker",
	HandlerType: (*MatchmakerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetSwipeDeck",
			Handler:    _Matchmaker_GetSwipeDeck_Handler,
		},
		{
			MethodName: "PutLike",
			Handler:    _Matchmaker_PutLike_Handler,
		},
		{
			MethodName: "CountLikedYou",
			Handler:    _Matchmaker_CountLikedYou_Handler,
		},
		{
			MethodName: "GetChatList",
			Handler:    _Matchmaker_GetChatList_Handler,
		},
		{
			MethodName: "GetThread",
			Handler:    _Matchmaker_GetThread_Handler,
		},
		{
			MethodName: "SendMessage",
			Handler:    _Matchmaker_SendMessage_Handler,
		},
		{
			MethodName: "MarkRead",
			Handler:    _Matchmaker_MarkRead_Handler,
		},
		{
			MethodName: "Unmatch",
			Handler:    _Matchmaker_Unmatch_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchThread",
			Handler:       _Matchmaker_WatchThread_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "WatchChatList",
			Handler:       _Matchmaker_WatchChatList_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "internal/proto/linkapp/linkapp.proto",
}
