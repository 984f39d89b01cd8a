package battlev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "battle.v1.BattleService"

// Full method names
const (
	BattleService_CreateMove_FullMethodName             = "/" + ServiceName + "/CreateMove"
	BattleService_ListMoves_FullMethodName              = "/" + ServiceName + "/ListMoves"
	BattleService_CreateCombatant_FullMethodName        = "/" + ServiceName + "/CreateCombatant"
	BattleService_ListCombatants_FullMethodName         = "/" + ServiceName + "/ListCombatants"
	BattleService_LearnMove_FullMethodName              = "/" + ServiceName + "/LearnMove"
	BattleService_HealCombatant_FullMethodName          = "/" + ServiceName + "/HealCombatant"
	BattleService_CreateTrainer_FullMethodName          = "/" + ServiceName + "/CreateTrainer"
	BattleService_ListTrainers_FullMethodName           = "/" + ServiceName + "/ListTrainers"
	BattleService_AddToRoster_FullMethodName            = "/" + ServiceName + "/AddToRoster"
	BattleService_HealRoster_FullMethodName             = "/" + ServiceName + "/HealRoster"
	BattleService_RandomChallenge_FullMethodName        = "/" + ServiceName + "/RandomChallenge"
	BattleService_DeterministicChallenge_FullMethodName = "/" + ServiceName + "/DeterministicChallenge"
	BattleService_RandomArena_FullMethodName            = "/" + ServiceName + "/RandomArena"
	BattleService_DeterministicArena_FullMethodName     = "/" + ServiceName + "/DeterministicArena"
)

// BattleServiceClient is the client API for BattleService
type BattleServiceClient interface {
	CreateMove(ctx context.Context, in *CreateMoveRequest, opts ...grpc.CallOption) (*CreateMoveResponse, error)
	ListMoves(ctx context.Context, in *ListMovesRequest, opts ...grpc.CallOption) (*ListMovesResponse, error)
	CreateCombatant(ctx context.Context, in *CreateCombatantRequest, opts ...grpc.CallOption) (*CreateCombatantResponse, error)
	ListCombatants(ctx context.Context, in *ListCombatantsRequest, opts ...grpc.CallOption) (*ListCombatantsResponse, error)
	LearnMove(ctx context.Context, in *LearnMoveRequest, opts ...grpc.CallOption) (*LearnMoveResponse, error)
	HealCombatant(ctx context.Context, in *HealCombatantRequest, opts ...grpc.CallOption) (*HealCombatantResponse, error)
	CreateTrainer(ctx context.Context, in *CreateTrainerRequest, opts ...grpc.CallOption) (*CreateTrainerResponse, error)
	ListTrainers(ctx context.Context, in *ListTrainersRequest, opts ...grpc.CallOption) (*ListTrainersResponse, error)
	AddToRoster(ctx context.Context, in *AddToRosterRequest, opts ...grpc.CallOption) (*AddToRosterResponse, error)
	HealRoster(ctx context.Context, in *HealRosterRequest, opts ...grpc.CallOption) (*HealRosterResponse, error)
	RandomChallenge(ctx context.Context, in *MatchRequest, opts ...grpc.CallOption) (*MatchResponse, error)
	DeterministicChallenge(ctx context.Context, in *MatchRequest, opts ...grpc.CallOption) (*MatchResponse, error)
	RandomArena(ctx context.Context, in *MatchRequest, opts ...grpc.CallOption) (*MatchResponse, error)
	DeterministicArena(ctx context.Context, in *MatchRequest, opts ...grpc.CallOption) (*MatchResponse, error)
}

type battleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBattleServiceClient creates a client that sends every call with the JSON codec
func NewBattleServiceClient(cc grpc.ClientConnInterface) BattleServiceClient {
	return &battleServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *battleServiceClient) CreateMove(ctx context.Context, in *CreateMoveRequest, opts ...grpc.CallOption) (*CreateMoveResponse, error) {
	return invoke[CreateMoveResponse](ctx, c.cc, BattleService_CreateMove_FullMethodName, in, opts)
}

func (c *battleServiceClient) ListMoves(ctx context.Context, in *ListMovesRequest, opts ...grpc.CallOption) (*ListMovesResponse, error) {
	return invoke[ListMovesResponse](ctx, c.cc, BattleService_ListMoves_FullMethodName, in, opts)
}

func (c *battleServiceClient) CreateCombatant(ctx context.Context, in *CreateCombatantRequest, opts ...grpc.CallOption) (*CreateCombatantResponse, error) {
	return invoke[CreateCombatantResponse](ctx, c.cc, BattleService_CreateCombatant_FullMethodName, in, opts)
}

func (c *battleServiceClient) ListCombatants(ctx context.Context, in *ListCombatantsRequest, opts ...grpc.CallOption) (*ListCombatantsResponse, error) {
	return invoke[ListCombatantsResponse](ctx, c.cc, BattleService_ListCombatants_FullMethodName, in, opts)
}

func (c *battleServiceClient) LearnMove(ctx context.Context, in *LearnMoveRequest, opts ...grpc.CallOption) (*LearnMoveResponse, error) {
	return invoke[LearnMoveResponse](ctx, c.cc, BattleService_LearnMove_FullMethodName, in, opts)
}

func (c *battleServiceClient) HealCombatant(ctx context.Context, in *HealCombatantRequest, opts ...grpc.CallOption) (*HealCombatantResponse, error) {
	return invoke[HealCombatantResponse](ctx, c.cc, BattleService_HealCombatant_FullMethodName, in, opts)
}

func (c *battleServiceClient) CreateTrainer(ctx context.Context, in *CreateTrainerRequest, opts ...grpc.CallOption) (*CreateTrainerResponse, error) {
	return invoke[CreateTrainerResponse](ctx, c.cc, BattleService_CreateTrainer_FullMethodName, in, opts)
}

func (c *battleServiceClient) ListTrainers(ctx context.Context, in *ListTrainersRequest, opts ...grpc.CallOption) (*ListTrainersResponse, error) {
	return invoke[ListTrainersResponse](ctx, c.cc, BattleService_ListTrainers_FullMethodName, in, opts)
}

func (c *battleServiceClient) AddToRoster(ctx context.Context, in *AddToRosterRequest, opts ...grpc.CallOption) (*AddToRosterResponse, error) {
	return invoke[AddToRosterResponse](ctx, c.cc, BattleService_AddToRoster_FullMethodName, in, opts)
}

func (c *battleServiceClient) HealRoster(ctx context.Context, in *HealRosterRequest, opts ...grpc.CallOption) (*HealRosterResponse, error) {
	return invoke[HealRosterResponse](ctx, c.cc, BattleService_HealRoster_FullMethodName, in, opts)
}

func (c *battleServiceClient) RandomChallenge(ctx context.Context, in *MatchRequest, opts ...grpc.CallOption) (*MatchResponse, error) {
	return invoke[MatchResponse](ctx, c.cc, BattleService_RandomChallenge_FullMethodName, in, opts)
}

func (c *battleServiceClient) DeterministicChallenge(ctx context.Context, in *MatchRequest, opts ...grpc.CallOption) (*MatchResponse, error) {
	return invoke[MatchResponse](ctx, c.cc, BattleService_DeterministicChallenge_FullMethodName, in, opts)
}

func (c *battleServiceClient) RandomArena(ctx context.Context, in *MatchRequest, opts ...grpc.CallOption) (*MatchResponse, error) {
	return invoke[MatchResponse](ctx, c.cc, BattleService_RandomArena_FullMethodName, in, opts)
}

func (c *battleServiceClient) DeterministicArena(ctx context.Context, in *MatchRequest, opts ...grpc.CallOption) (*MatchResponse, error) {
	return invoke[MatchResponse](ctx, c.cc, BattleService_DeterministicArena_FullMethodName, in, opts)
}

// BattleServiceServer is the server API for BattleService
type BattleServiceServer interface {
	CreateMove(context.Context, *CreateMoveRequest) (*CreateMoveResponse, error)
	ListMoves(context.Context, *ListMovesRequest) (*ListMovesResponse, error)
	CreateCombatant(context.Context, *CreateCombatantRequest) (*CreateCombatantResponse, error)
	ListCombatants(context.Context, *ListCombatantsRequest) (*ListCombatantsResponse, error)
	LearnMove(context.Context, *LearnMoveRequest) (*LearnMoveResponse, error)
	HealCombatant(context.Context, *HealCombatantRequest) (*HealCombatantResponse, error)
	CreateTrainer(context.Context, *CreateTrainerRequest) (*CreateTrainerResponse, error)
	ListTrainers(context.Context, *ListTrainersRequest) (*ListTrainersResponse, error)
	AddToRoster(context.Context, *AddToRosterRequest) (*AddToRosterResponse, error)
	HealRoster(context.Context, *HealRosterRequest) (*HealRosterResponse, error)
	RandomChallenge(context.Context, *MatchRequest) (*MatchResponse, error)
	DeterministicChallenge(context.Context, *MatchRequest) (*MatchResponse, error)
	RandomArena(context.Context, *MatchRequest) (*MatchResponse, error)
	DeterministicArena(context.Context, *MatchRequest) (*MatchResponse, error)
}

// UnimplementedBattleServiceServer can be embedded to keep servers compiling as methods
// are added
type UnimplementedBattleServiceServer struct{}

// CreateMove returns codes.Unimplemented
func (UnimplementedBattleServiceServer) CreateMove(context.Context, *CreateMoveRequest) (*CreateMoveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateMove not implemented")
}

// ListMoves returns codes.Unimplemented
func (UnimplementedBattleServiceServer) ListMoves(context.Context, *ListMovesRequest) (*ListMovesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMoves not implemented")
}

// CreateCombatant returns codes.Unimplemented
func (UnimplementedBattleServiceServer) CreateCombatant(context.Context, *CreateCombatantRequest) (*CreateCombatantResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCombatant not implemented")
}

// ListCombatants returns codes.Unimplemented
func (UnimplementedBattleServiceServer) ListCombatants(context.Context, *ListCombatantsRequest) (*ListCombatantsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCombatants not implemented")
}

// LearnMove returns codes.Unimplemented
func (UnimplementedBattleServiceServer) LearnMove(context.Context, *LearnMoveRequest) (*LearnMoveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method LearnMove not implemented")
}

// HealCombatant returns codes.Unimplemented
func (UnimplementedBattleServiceServer) HealCombatant(context.Context, *HealCombatantRequest) (*HealCombatantResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method HealCombatant not implemented")
}

// CreateTrainer returns codes.Unimplemented
func (UnimplementedBattleServiceServer) CreateTrainer(context.Context, *CreateTrainerRequest) (*CreateTrainerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateTrainer not implemented")
}

// ListTrainers returns codes.Unimplemented
func (UnimplementedBattleServiceServer) ListTrainers(context.Context, *ListTrainersRequest) (*ListTrainersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTrainers not implemented")
}

// AddToRoster returns codes.Unimplemented
func (UnimplementedBattleServiceServer) AddToRoster(context.Context, *AddToRosterRequest) (*AddToRosterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddToRoster not implemented")
}

// HealRoster returns codes.Unimplemented
func (UnimplementedBattleServiceServer) HealRoster(context.Context, *HealRosterRequest) (*HealRosterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method HealRoster not implemented")
}

// RandomChallenge returns codes.Unimplemented
func (UnimplementedBattleServiceServer) RandomChallenge(context.Context, *MatchRequest) (*MatchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RandomChallenge not implemented")
}

// DeterministicChallenge returns codes.Unimplemented
func (UnimplementedBattleServiceServer) DeterministicChallenge(context.Context, *MatchRequest) (*MatchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeterministicChallenge not implemented")
}

// RandomArena returns codes.Unimplemented
func (UnimplementedBattleServiceServer) RandomArena(context.Context, *MatchRequest) (*MatchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RandomArena not implemented")
}

// DeterministicArena returns codes.Unimplemented
func (UnimplementedBattleServiceServer) DeterministicArena(context.Context, *MatchRequest) (*MatchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeterministicArena not implemented")
}

// RegisterBattleServiceServer registers srv on s
func RegisterBattleServiceServer(s grpc.ServiceRegistrar, srv BattleServiceServer) {
	s.RegisterService(&BattleService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to a grpc.MethodHandler
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(BattleServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BattleServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(BattleServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// BattleService_ServiceDesc is the grpc.ServiceDesc for BattleService
var BattleService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BattleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateMove",
			Handler:    unaryHandler(BattleService_CreateMove_FullMethodName, BattleServiceServer.CreateMove),
		},
		{
			MethodName: "ListMoves",
			Handler:    unaryHandler(BattleService_ListMoves_FullMethodName, BattleServiceServer.ListMoves),
		},
		{
			MethodName: "CreateCombatant",
			Handler:    unaryHandler(BattleService_CreateCombatant_FullMethodName, BattleServiceServer.CreateCombatant),
		},
		{
			MethodName: "ListCombatants",
			Handler:    unaryHandler(BattleService_ListCombatants_FullMethodName, BattleServiceServer.ListCombatants),
		},
		{
			MethodName: "LearnMove",
			Handler:    unaryHandler(BattleService_LearnMove_FullMethodName, BattleServiceServer.LearnMove),
		},
		{
			MethodName: "HealCombatant",
			Handler:    unaryHandler(BattleService_HealCombatant_FullMethodName, BattleServiceServer.HealCombatant),
		},
		{
			MethodName: "CreateTrainer",
			Handler:    unaryHandler(BattleService_CreateTrainer_FullMethodName, BattleServiceServer.CreateTrainer),
		},
		{
			MethodName: "ListTrainers",
			Handler:    unaryHandler(BattleService_ListTrainers_FullMethodName, BattleServiceServer.ListTrainers),
		},
		{
			MethodName: "AddToRoster",
			Handler:    unaryHandler(BattleService_AddToRoster_FullMethodName, BattleServiceServer.AddToRoster),
		},
		{
			MethodName: "HealRoster",
			Handler:    unaryHandler(BattleService_HealRoster_FullMethodName, BattleServiceServer.HealRoster),
		},
		{
			MethodName: "RandomChallenge",
			Handler:    unaryHandler(BattleService_RandomChallenge_FullMethodName, BattleServiceServer.RandomChallenge),
		},
		{
			MethodName: "DeterministicChallenge",
			Handler:    unaryHandler(BattleService_DeterministicChallenge_FullMethodName, BattleServiceServer.DeterministicChallenge),
		},
		{
			MethodName: "RandomArena",
			Handler:    unaryHandler(BattleService_RandomArena_FullMethodName, BattleServiceServer.RandomArena),
		},
		{
			MethodName: "DeterministicArena",
			Handler:    unaryHandler(BattleService_DeterministicArena_FullMethodName, BattleServiceServer.DeterministicArena),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "battle/v1/battle.proto",
}
