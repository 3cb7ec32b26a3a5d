package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rocketcandle/x/rocketfuel/types"
)

// Pause stops every mutating operation until Unpause.
func (k msgServer) Pause(ctx context.Context, msg *types.MsgPause) (*types.MsgPauseResponse, error) {
	admin, err := k.canonicalAddress(msg.Admin, "admin")
	if err != nil {
		return nil, err
	}
	_, err = k.atomically(ctx, func(ctx sdk.Context) error {
		state, err := k.GetOperationalState(ctx)
		if err != nil {
			return err
		}
		if state, err = state.Pause(admin); err != nil {
			return err
		}
		if err := k.OperationalState.Set(ctx, state); err != nil {
			return err
		}
		ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventPaused, sdk.NewAttribute(types.AttrAdmin, admin)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	k.Logger(ctx).Info("rocketfuel paused", "admin", admin)
	return &types.MsgPauseResponse{}, nil
}

// Unpause resumes a paused module.
func (k msgServer) Unpause(ctx context.Context, msg *types.MsgUnpause) (*types.MsgUnpauseResponse, error) {
	admin, err := k.canonicalAddress(msg.Admin, "admin")
	if err != nil {
		return nil, err
	}
	_, err = k.atomically(ctx, func(ctx sdk.Context) error {
		state, err := k.GetOperationalState(ctx)
		if err != nil {
			return err
		}
		if state, err = state.Unpause(admin); err != nil {
			return err
		}
		if err := k.OperationalState.Set(ctx, state); err != nil {
			return err
		}
		ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventUnpaused, sdk.NewAttribute(types.AttrAdmin, admin)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	k.Logger(ctx).Info("rocketfuel unpaused", "admin", admin)
	return &types.MsgUnpauseResponse{}, nil
}

// TransferAdmin hands the admin role to another account.
func (k msgServer) TransferAdmin(ctx context.Context, msg *types.MsgTransferAdmin) (*types.MsgTransferAdminResponse, error) {
	admin, err := k.canonicalAddress(msg.Admin, "admin")
	if err != nil {
		return nil, err
	}
	newAdmin, err := k.canonicalAddress(msg.NewAdmin, "new admin")
	if err != nil {
		return nil, err
	}
	_, err = k.atomically(ctx, func(ctx sdk.Context) error {
		state, err := k.GetOperationalState(ctx)
		if err != nil {
			return err
		}
		if state, err = state.TransferAdmin(admin, newAdmin); err != nil {
			return err
		}
		if err := k.OperationalState.Set(ctx, state); err != nil {
			return err
		}
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventAdminTransferred,
				sdk.NewAttribute(types.AttrAdmin, admin),
				sdk.NewAttribute(types.AttrNewAdmin, newAdmin),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgTransferAdminResponse{}, nil
}

// UpdateParams replaces the module params. The week partitioning is fixed.
func (k msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	admin, err := k.canonicalAddress(msg.Admin, "admin")
	if err != nil {
		return nil, err
	}
	_, err = k.atomically(ctx, func(ctx sdk.Context) error {
		state, err := k.GetOperationalState(ctx)
		if err != nil {
			return err
		}
		if err := state.Authorize(admin); err != nil {
			return err
		}
		current, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		if err := current.ValidateUpdate(msg.Params); err != nil {
			return errorsmod.Wrap(types.ErrInvalidRequest, err.Error())
		}
		if err := k.Params.Set(ctx, msg.Params); err != nil {
			return err
		}
		ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventParamsUpdated, sdk.NewAttribute(types.AttrAdmin, admin)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
