package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rocketcandle/x/rocketfuel/types"
)

// RegisterInvariants registers the rocketfuel module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "supply", SupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "ledger", LedgerInvariant(k))
	ir.RegisterRoute(types.ModuleName, "leaderboard", LeaderboardInvariant(k))
}

// AllInvariants runs every module invariant.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, inv := range []sdk.Invariant{SupplyInvariant(k), LedgerInvariant(k), LeaderboardInvariant(k)} {
			if msg, broken := inv(ctx); broken {
				return msg, broken
			}
		}
		return "", false
	}
}

// SupplyInvariant checks that balances sum to the minted supply and that the
// supply stays within its bound.
func SupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		total, err := k.GetTotalMinted(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "supply", err.Error()), true
		}
		sum := math.ZeroInt()
		negative := 0
		err = k.Balances.Walk(ctx, nil, func(_ sdk.AccAddress, amount math.Int) (bool, error) {
			if amount.IsNegative() {
				negative++
			}
			sum = sum.Add(amount)
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "supply", err.Error()), true
		}

		broken := negative > 0 || !sum.Equal(total) || total.GT(types.MaxTotalSupply)
		return sdk.FormatInvariant(types.ModuleName, "supply", fmt.Sprintf(
			"\tsum of balances: %s\n\ttotal minted: %s\n\tmax supply: %s\n\tnegative balances: %d\n",
			sum, total, types.MaxTotalSupply, negative,
		)), broken
	}
}

// LedgerInvariant checks that each player's stats agree with its history.
func LedgerInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var mismatched []string
		err := k.Players.Walk(ctx, nil, func(addr sdk.AccAddress, stats types.PlayerStats) (bool, error) {
			replayed := types.NewPlayerStats()
			err := k.IterateHistory(ctx, addr, func(rec types.SessionRecord) (bool, error) {
				replayed = replayed.Record(rec)
				return false, nil
			})
			if err != nil {
				return true, err
			}
			if replayed.TotalGames != stats.TotalGames ||
				replayed.BestScore != stats.BestScore ||
				!replayed.TotalTokensEarned.Equal(stats.TotalTokensEarned) {
				mismatched = append(mismatched, k.formatAddress(addr))
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "ledger", err.Error()), true
		}
		return sdk.FormatInvariant(types.ModuleName, "ledger", fmt.Sprintf(
			"\tplayers with stats not matching history: %v\n", mismatched,
		)), len(mismatched) > 0
	}
}

// LeaderboardInvariant checks every bucket is sorted and within the hard cap.
// Buckets filled before a LeaderboardSize decrease may exceed the current size.
func LeaderboardInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		err := k.Buckets.Walk(ctx, nil, func(_ uint64, bucket types.WeeklyBucket) (bool, error) {
			if verr := bucket.Validate(types.MaxLeaderboardSize); verr != nil {
				msg = verr.Error()
				return true, nil
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "leaderboard", err.Error()), true
		}
		return sdk.FormatInvariant(types.ModuleName, "leaderboard", msg), msg != ""
	}
}

