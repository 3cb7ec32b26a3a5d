package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rocketcandle/x/rocketfuel/types"
)

// SubmitSession validates a finished game, mints its reward, records it in the
// player's ledger and offers it to the weekly leaderboard. Either every step
// is committed or none is.
func (k msgServer) SubmitSession(ctx context.Context, msg *types.MsgSubmitSession) (*types.MsgSubmitSessionResponse, error) {
	var (
		record types.SessionRecord
		ranked bool
	)
	version, err := k.atomically(ctx, func(ctx sdk.Context) error {
		if err := k.requireActive(ctx); err != nil {
			return err
		}
		player, err := k.parseAddress(msg.Player, "player")
		if err != nil {
			return err
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return errorsmod.Wrap(err, "failed to load params")
		}
		in := msg.Session()
		if err := types.ValidateSession(params, in); err != nil {
			return err
		}

		reward := types.CalculateReward(in.Score, in.Level)
		if err := k.Mint(ctx, player, reward); err != nil {
			return err
		}

		id, err := k.SessionSequence.Next(ctx)
		if err != nil {
			return errorsmod.Wrap(err, "failed to allocate session id")
		}
		now := ctx.BlockTime().Unix()
		record = types.SessionRecord{
			ID:               id,
			Player:           k.formatAddress(player),
			Score:            in.Score,
			Level:            in.Level,
			GameTime:         in.GameTime,
			EnemiesDestroyed: in.EnemiesDestroyed,
			RocketsUsed:      in.RocketsUsed,
			Timestamp:        now,
			WeekID:           params.WeekOf(now),
			Reward:           reward,
		}
		if _, err := k.RecordSession(ctx, player, record); err != nil {
			return errorsmod.Wrap(err, "failed to record session")
		}

		ranked, err = k.InsertScore(ctx, record.WeekID, types.LeaderboardEntry{
			Player:    record.Player,
			Score:     record.Score,
			Timestamp: record.Timestamp,
			SessionID: record.ID,
		})
		if err != nil {
			return errorsmod.Wrap(err, "failed to update leaderboard")
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventGameCompleted,
				sdk.NewAttribute(types.AttrPlayer, record.Player),
				sdk.NewAttribute(types.AttrScore, strconv.FormatUint(record.Score, 10)),
				sdk.NewAttribute(types.AttrLevel, strconv.FormatUint(record.Level, 10)),
				sdk.NewAttribute(types.AttrGameTime, strconv.FormatUint(record.GameTime, 10)),
				sdk.NewAttribute(types.AttrEnemiesDestroyed, strconv.FormatUint(record.EnemiesDestroyed, 10)),
				sdk.NewAttribute(types.AttrRocketsUsed, strconv.FormatUint(record.RocketsUsed, 10)),
				sdk.NewAttribute(types.AttrReward, record.Reward.String()),
				sdk.NewAttribute(types.AttrWeekID, strconv.FormatUint(record.WeekID, 10)),
				sdk.NewAttribute(types.AttrSessionID, strconv.FormatUint(record.ID, 10)),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger(ctx).Debug("session accepted", "player", record.Player, "score", record.Score, "reward", record.Reward, "week", record.WeekID)

	return &types.MsgSubmitSessionResponse{
		Record:       record,
		Ranked:       ranked,
		StateVersion: version,
	}, nil
}
