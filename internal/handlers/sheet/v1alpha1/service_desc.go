package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpgsheet.v1alpha1.SheetService"

// Method names
const (
	MethodGetSheet            = "GetSheet"
	MethodSetLevel            = "SetLevel"
	MethodAdjustHitPoints     = "AdjustHitPoints"
	MethodAddGear             = "AddGear"
	MethodUpdateGear          = "UpdateGear"
	MethodRemoveGear          = "RemoveGear"
	MethodPrepareSpell        = "PrepareSpell"
	MethodUnprepareSpell      = "UnprepareSpell"
	MethodCastSpell           = "CastSpell"
	MethodCastDivineFont      = "CastDivineFont"
	MethodSetDivineFontChoice = "SetDivineFontChoice"
	MethodRest                = "Rest"
	MethodSelectFeat          = "SelectFeat"
	MethodRemoveFeat          = "RemoveFeat"
	MethodSetSkill            = "SetSkillProficiency"
	MethodUpdateProfile       = "UpdateProfile"
	MethodSetNotes            = "SetNotes"
	MethodListStoryLogs       = "ListStoryLogs"
	MethodClearStoryLogs      = "ClearStoryLogs"
	MethodGeneratePortrait    = "GeneratePortrait"
	MethodResetCharacter      = "ResetCharacter"
	MethodImportPathbuilder   = "ImportPathbuilder"
	MethodExportPathbuilder   = "ExportPathbuilder"
	MethodRollCheck           = "RollCheck"
	MethodRollDamage          = "RollDamage"
	MethodListRolls           = "ListRolls"
	MethodClearRolls          = "ClearRolls"
)

// FullMethod returns the path gRPC routes a method on
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

type unaryMethod func(srv SheetServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

// SheetServiceServer is the server API for the sheet service. Payloads are
// JSON-shaped Structs; see the request and response types in this package.
type SheetServiceServer interface {
	GetSheet(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetLevel(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AdjustHitPoints(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddGear(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateGear(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveGear(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PrepareSpell(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UnprepareSpell(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CastSpell(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CastDivineFont(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetDivineFontChoice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Rest(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectFeat(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveFeat(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetSkillProficiency(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateProfile(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetNotes(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListStoryLogs(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearStoryLogs(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GeneratePortrait(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResetCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ImportPathbuilder(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ExportPathbuilder(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollCheck(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollDamage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListRolls(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearRolls(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var methods = map[string]unaryMethod{
	MethodGetSheet:            SheetServiceServer.GetSheet,
	MethodSetLevel:            SheetServiceServer.SetLevel,
	MethodAdjustHitPoints:     SheetServiceServer.AdjustHitPoints,
	MethodAddGear:             SheetServiceServer.AddGear,
	MethodUpdateGear:          SheetServiceServer.UpdateGear,
	MethodRemoveGear:          SheetServiceServer.RemoveGear,
	MethodPrepareSpell:        SheetServiceServer.PrepareSpell,
	MethodUnprepareSpell:      SheetServiceServer.UnprepareSpell,
	MethodCastSpell:           SheetServiceServer.CastSpell,
	MethodCastDivineFont:      SheetServiceServer.CastDivineFont,
	MethodSetDivineFontChoice: SheetServiceServer.SetDivineFontChoice,
	MethodRest:                SheetServiceServer.Rest,
	MethodSelectFeat:          SheetServiceServer.SelectFeat,
	MethodRemoveFeat:          SheetServiceServer.RemoveFeat,
	MethodSetSkill:            SheetServiceServer.SetSkillProficiency,
	MethodUpdateProfile:       SheetServiceServer.UpdateProfile,
	MethodSetNotes:            SheetServiceServer.SetNotes,
	MethodListStoryLogs:       SheetServiceServer.ListStoryLogs,
	MethodClearStoryLogs:      SheetServiceServer.ClearStoryLogs,
	MethodGeneratePortrait:    SheetServiceServer.GeneratePortrait,
	MethodResetCharacter:      SheetServiceServer.ResetCharacter,
	MethodImportPathbuilder:   SheetServiceServer.ImportPathbuilder,
	MethodExportPathbuilder:   SheetServiceServer.ExportPathbuilder,
	MethodRollCheck:           SheetServiceServer.RollCheck,
	MethodRollDamage:          SheetServiceServer.RollDamage,
	MethodListRolls:           SheetServiceServer.ListRolls,
	MethodClearRolls:          SheetServiceServer.ClearRolls,
}

func methodHandler(name string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		server := srv.(SheetServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(name),
		}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*structpb.Struct))
		})
	}
}

// ServiceDesc describes the sheet service for grpc.ServiceRegistrar
var ServiceDesc = buildServiceDesc()

func buildServiceDesc() grpc.ServiceDesc {
	desc := grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*SheetServiceServer)(nil),
		Streams:     []grpc.StreamDesc{},
	}
	for name, call := range methods {
		desc.Methods = append(desc.Methods, grpc.MethodDesc{
			MethodName: name,
			Handler:    methodHandler(name, call),
		})
	}
	return desc
}

// RegisterSheetServiceServer registers the sheet service on s
func RegisterSheetServiceServer(s grpc.ServiceRegistrar, srv SheetServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}
