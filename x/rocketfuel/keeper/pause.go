package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"rocketcandle/x/rocketfuel/types"
)

// GetOperationalState returns the pause switch and admin. Before genesis runs
// the module authority is the admin.
func (k Keeper) GetOperationalState(ctx context.Context) (types.OperationalState, error) {
	state, err := k.OperationalState.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.OperationalState{Admin: k.formatAddress(k.authority)}, nil
		}
		return types.OperationalState{}, err
	}
	return state, nil
}

// IsPaused reports whether mutations are currently rejected.
func (k Keeper) IsPaused(ctx context.Context) (bool, error) {
	state, err := k.GetOperationalState(ctx)
	if err != nil {
		return false, err
	}
	return state.Paused, nil
}

// requireActive fails with ErrPaused while the module is paused.
func (k Keeper) requireActive(ctx context.Context) error {
	state, err := k.GetOperationalState(ctx)
	if err != nil {
		return err
	}
	return state.RequireActive()
}
