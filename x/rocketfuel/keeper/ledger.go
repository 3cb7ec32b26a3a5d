package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rocketcandle/x/rocketfuel/types"
)

// GetPlayerStats returns the aggregates of addr, zero stats for unknown players.
func (k Keeper) GetPlayerStats(ctx context.Context, addr sdk.AccAddress) (types.PlayerStats, error) {
	stats, err := k.Players.Get(ctx, addr)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.NewPlayerStats(), nil
		}
		return types.PlayerStats{}, err
	}
	return stats, nil
}

// RecordSession appends rec to the player's history and folds it into the
// player's stats. The per-player history index equals the number of games
// recorded before rec.
func (k Keeper) RecordSession(ctx context.Context, addr sdk.AccAddress, rec types.SessionRecord) (types.PlayerStats, error) {
	stats, err := k.GetPlayerStats(ctx, addr)
	if err != nil {
		return types.PlayerStats{}, err
	}
	index := stats.TotalGames
	stats = stats.Record(rec)

	if err := k.History.Set(ctx, collections.Join(addr, index), rec); err != nil {
		return types.PlayerStats{}, err
	}
	if err := k.Players.Set(ctx, addr, stats); err != nil {
		return types.PlayerStats{}, err
	}
	return stats, nil
}

// GetPlayerHistory returns up to limit sessions of addr starting at offset,
// oldest first, together with the total number of sessions. A zero limit
// returns everything after offset.
func (k Keeper) GetPlayerHistory(ctx context.Context, addr sdk.AccAddress, offset, limit uint64) ([]types.SessionRecord, uint64, error) {
	stats, err := k.GetPlayerStats(ctx, addr)
	if err != nil {
		return nil, 0, err
	}
	total := stats.TotalGames
	if offset >= total {
		return []types.SessionRecord{}, total, nil
	}

	end := total
	if limit > 0 && limit < total-offset {
		end = offset + limit
	}
	out := make([]types.SessionRecord, 0, end-offset)
	for i := offset; i < end; i++ {
		rec, err := k.History.Get(ctx, collections.Join(addr, i))
		if err != nil {
			return nil, 0, err
		}
		out = append(out, rec)
	}
	return out, total, nil
}

// IterateHistory walks every stored session of addr in submission order.
func (k Keeper) IterateHistory(ctx context.Context, addr sdk.AccAddress, cb func(types.SessionRecord) (stop bool, err error)) error {
	rng := collections.NewPrefixedPairRange[sdk.AccAddress, uint64](addr)
	return k.History.Walk(ctx, rng, func(_ collections.Pair[sdk.AccAddress, uint64], rec types.SessionRecord) (bool, error) {
		return cb(rec)
	})
}
