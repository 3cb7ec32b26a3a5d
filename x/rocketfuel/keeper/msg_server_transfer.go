package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"rocketcandle/x/rocketfuel/types"
)

// Transfer moves RocketFUEL from the sender to the recipient.
func (k msgServer) Transfer(ctx context.Context, msg *types.MsgTransfer) (*types.MsgTransferResponse, error) {
	_, err := k.atomically(ctx, func(ctx sdk.Context) error {
		if err := k.requireActive(ctx); err != nil {
			return err
		}
		from, err := k.parseAddress(msg.Sender, "sender")
		if err != nil {
			return err
		}
		to, err := k.parseAddress(msg.Recipient, "recipient")
		if err != nil {
			return err
		}
		if err := k.Keeper.Transfer(ctx, from, to, msg.Amount); err != nil {
			return err
		}
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTransfer,
				sdk.NewAttribute(types.AttrSender, k.formatAddress(from)),
				sdk.NewAttribute(types.AttrRecipient, k.formatAddress(to)),
				sdk.NewAttribute(types.AttrAmount, msg.Amount.String()),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgTransferResponse{}, nil
}

// Burn destroys RocketFUEL held by the sender.
func (k msgServer) Burn(ctx context.Context, msg *types.MsgBurn) (*types.MsgBurnResponse, error) {
	_, err := k.atomically(ctx, func(ctx sdk.Context) error {
		if err := k.requireActive(ctx); err != nil {
			return err
		}
		from, err := k.parseAddress(msg.Sender, "sender")
		if err != nil {
			return err
		}
		if err := k.Keeper.Burn(ctx, from, msg.Amount); err != nil {
			return err
		}
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventBurn,
				sdk.NewAttribute(types.AttrSender, k.formatAddress(from)),
				sdk.NewAttribute(types.AttrAmount, msg.Amount.String()),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgBurnResponse{}, nil
}
