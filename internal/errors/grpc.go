package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	detailCode   = "code"
	detailReason = "reason"
	detailMeta   = "meta"
)

// ToGRPCError converts an error to a gRPC status error. Code, reason and meta travel as a
// structpb.Struct detail so clients can recover the domain error kind.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if details, detailErr := toDetails(customErr); detailErr == nil {
		if withDetails, wdErr := st.WithDetails(details); wdErr == nil {
			st = withDetails
		}
	}

	return st.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		details, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		fields := details.GetFields()
		if v, ok := fields[detailCode]; ok {
			customErr.Code = Code(v.GetStringValue())
		}
		if v, ok := fields[detailReason]; ok {
			customErr.Reason = v.GetStringValue()
		}
		if v, ok := fields[detailMeta]; ok && v.GetStructValue() != nil {
			customErr.Meta = v.GetStructValue().AsMap()
		}
		break
	}

	return customErr
}

func toDetails(e *Error) (*structpb.Struct, error) {
	meta := make(map[string]*structpb.Value, len(e.Meta))
	for k, v := range e.Meta {
		value, err := structpb.NewValue(v)
		if err != nil {
			value = structpb.NewStringValue(fmt.Sprint(v))
		}
		meta[k] = value
	}

	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			detailCode:   structpb.NewStringValue(string(e.Code)),
			detailReason: structpb.NewStringValue(e.Reason),
			detailMeta:   structpb.NewStructValue(&structpb.Struct{Fields: meta}),
		},
	}, nil
}
