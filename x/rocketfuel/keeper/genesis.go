package keeper

import (
	"context"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rocketcandle/x/rocketfuel/types"
)

// InitGenesis loads a complete ledger. An empty admin resolves to the module
// authority.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return errorsmod.Wrap(types.ErrInvalidRequest, err.Error())
	}

	if err := k.Params.Set(ctx, gs.Params); err != nil {
		return err
	}

	state := gs.State
	if state.Admin == "" {
		state.Admin = k.formatAddress(k.authority)
	}
	admin, err := k.canonicalAddress(state.Admin, "admin")
	if err != nil {
		return err
	}
	state.Admin = admin
	if err := k.OperationalState.Set(ctx, state); err != nil {
		return err
	}

	totalMinted := gs.TotalMinted
	if totalMinted.IsNil() {
		totalMinted = math.ZeroInt()
	}
	if err := k.TotalMinted.Set(ctx, totalMinted); err != nil {
		return err
	}
	for _, b := range gs.Balances {
		addr, err := k.parseAddress(b.Address, "balance")
		if err != nil {
			return err
		}
		if err := k.Balances.Set(ctx, addr, b.Amount); err != nil {
			return err
		}
	}

	for _, p := range gs.Players {
		addr, err := k.parseAddress(p.Player, "player")
		if err != nil {
			return err
		}
		if err := k.Players.Set(ctx, addr, p.Stats); err != nil {
			return err
		}
	}

	// Sessions are listed in submission order, so the n-th session of a
	// player gets history index n.
	next := make(map[string]uint64)
	for _, rec := range gs.Sessions {
		addr, err := k.parseAddress(rec.Player, "player")
		if err != nil {
			return err
		}
		rec.Player = k.formatAddress(addr)
		idx := next[string(addr)]
		if err := k.History.Set(ctx, collections.Join(addr, idx), rec); err != nil {
			return err
		}
		next[string(addr)] = idx + 1
	}

	for _, b := range gs.Leaderboards {
		entries := make([]types.LeaderboardEntry, len(b.Entries))
		for i, e := range b.Entries {
			if e.Player, err = k.canonicalAddress(e.Player, "leaderboard player"); err != nil {
				return err
			}
			entries[i] = e
		}
		b.Entries = entries
		if err := k.Buckets.Set(ctx, b.WeekID, b); err != nil {
			return err
		}
	}

	if err := k.SessionSequence.Set(ctx, gs.NextSessionID); err != nil {
		return err
	}
	return k.StateVersion.Set(ctx, gs.StateVersion)
}

// ExportGenesis returns the complete ledger.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()

	var err error
	if gs.Params, err = k.GetParams(ctx); err != nil {
		return nil, err
	}
	if gs.State, err = k.GetOperationalState(ctx); err != nil {
		return nil, err
	}
	if gs.TotalMinted, err = k.GetTotalMinted(ctx); err != nil {
		return nil, err
	}

	err = k.Balances.Walk(ctx, nil, func(addr sdk.AccAddress, amount math.Int) (bool, error) {
		gs.Balances = append(gs.Balances, types.Balance{Address: k.formatAddress(addr), Amount: amount})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.Players.Walk(ctx, nil, func(addr sdk.AccAddress, stats types.PlayerStats) (bool, error) {
		gs.Players = append(gs.Players, types.PlayerStatsEntry{Player: k.formatAddress(addr), Stats: stats})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.History.Walk(ctx, nil, func(_ collections.Pair[sdk.AccAddress, uint64], rec types.SessionRecord) (bool, error) {
		gs.Sessions = append(gs.Sessions, rec)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.Buckets.Walk(ctx, nil, func(_ uint64, bucket types.WeeklyBucket) (bool, error) {
		gs.Leaderboards = append(gs.Leaderboards, bucket)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	if gs.NextSessionID, err = k.SessionSequence.Peek(ctx); err != nil {
		return nil, err
	}
	if gs.StateVersion, err = k.StateVersion.Peek(ctx); err != nil {
		return nil, err
	}
	return gs, nil
}
