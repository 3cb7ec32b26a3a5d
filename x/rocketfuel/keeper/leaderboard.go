package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rocketcandle/x/rocketfuel/types"
)

// CurrentWeek returns the week containing the block time.
func (k Keeper) CurrentWeek(ctx context.Context) (uint64, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	return params.WeekOf(sdk.UnwrapSDKContext(ctx).BlockTime().Unix()), nil
}

// GetBucket returns the bucket of week, empty if nothing was ranked yet.
func (k Keeper) GetBucket(ctx context.Context, week uint64) (types.WeeklyBucket, error) {
	bucket, err := k.Buckets.Get(ctx, week)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.WeeklyBucket{WeekID: week, Entries: []types.LeaderboardEntry{}}, nil
		}
		return types.WeeklyBucket{}, err
	}
	return bucket, nil
}

// InsertScore offers entry to the bucket of week. It reports whether the entry
// was ranked. Buckets are only written when they change.
func (k Keeper) InsertScore(ctx context.Context, week uint64, entry types.LeaderboardEntry) (bool, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return false, err
	}
	bucket, err := k.GetBucket(ctx, week)
	if err != nil {
		return false, err
	}
	if !bucket.Insert(entry, int(params.LeaderboardSize)) {
		return false, nil
	}
	return true, k.Buckets.Set(ctx, week, bucket)
}

// TopScores returns at most limit ranked entries of week. A zero limit means
// the configured leaderboard size.
func (k Keeper) TopScores(ctx context.Context, week uint64, limit uint32) ([]types.LeaderboardEntry, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	if limit == 0 || limit > params.LeaderboardSize {
		limit = params.LeaderboardSize
	}
	bucket, err := k.GetBucket(ctx, week)
	if err != nil {
		return nil, err
	}
	return bucket.Top(int(limit)), nil
}
