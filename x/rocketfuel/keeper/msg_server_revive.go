package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"rocketcandle/x/rocketfuel/types"
)

// PurchaseRevive charges the revive price and pays it into the reserve.
func (k msgServer) PurchaseRevive(ctx context.Context, msg *types.MsgPurchaseRevive) (*types.MsgPurchaseReviveResponse, error) {
	resp := &types.MsgPurchaseReviveResponse{}
	_, err := k.atomically(ctx, func(ctx sdk.Context) error {
		if err := k.requireActive(ctx); err != nil {
			return err
		}
		player, err := k.parseAddress(msg.Player, "player")
		if err != nil {
			return err
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		if err := k.Keeper.Transfer(ctx, player, k.ReserveAddress(), params.RevivePrice); err != nil {
			return err
		}
		bal, err := k.BalanceOf(ctx, player)
		if err != nil {
			return err
		}
		resp.Cost = params.RevivePrice
		resp.Balance = bal

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventRevivePurchased,
				sdk.NewAttribute(types.AttrPlayer, k.formatAddress(player)),
				sdk.NewAttribute(types.AttrCost, params.RevivePrice.String()),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
