package keeper

import (
	"errors"

	errorsmod "cosmossdk.io/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rocketcandle/x/rocketfuel/types"
)

// grpcCodes maps registered module errors onto gRPC codes.
var grpcCodes = []struct {
	err  *errorsmod.Error
	code codes.Code
}{
	{types.ErrInvalidRequest, codes.InvalidArgument},
	{types.ErrValidation, codes.InvalidArgument},
	{types.ErrNotFound, codes.NotFound},
	{types.ErrUnauthorized, codes.PermissionDenied},
	{types.ErrPaused, codes.FailedPrecondition},
	{types.ErrNotPaused, codes.FailedPrecondition},
	{types.ErrInsufficientBalance, codes.FailedPrecondition},
	{types.ErrSupplyExceeded, codes.ResourceExhausted},
}

// ToStatus converts a keeper error into a gRPC status error. Unknown errors
// become codes.Internal.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range grpcCodes {
		if errors.Is(err, m.err) {
			return status.Error(m.code, err.Error())
		}
	}
	if s, ok := status.FromError(err); ok && s.Code() != codes.Unknown {
		return err
	}
	return status.Error(codes.Internal, err.Error())
}
