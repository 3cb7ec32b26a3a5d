package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rocketcandle/x/rocketfuel/types"
)

// BalanceOf returns the balance of addr, zero for unknown accounts.
func (k Keeper) BalanceOf(ctx context.Context, addr sdk.AccAddress) (math.Int, error) {
	bal, err := k.Balances.Get(ctx, addr)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}
	return bal, nil
}

// GetTotalMinted returns the circulating supply.
func (k Keeper) GetTotalMinted(ctx context.Context) (math.Int, error) {
	total, err := k.TotalMinted.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}
	return total, nil
}

// Mint credits amount to addr. It fails without writing if the mint would push
// the total supply past MaxTotalSupply.
func (k Keeper) Mint(ctx context.Context, addr sdk.AccAddress, amount math.Int) error {
	if err := requirePositive(amount); err != nil {
		return err
	}
	total, err := k.GetTotalMinted(ctx)
	if err != nil {
		return err
	}
	next := total.Add(amount)
	if next.GT(types.MaxTotalSupply) {
		return errorsmod.Wrapf(types.ErrSupplyExceeded, "minting %s would bring supply to %s, max %s", amount, next, types.MaxTotalSupply)
	}
	bal, err := k.BalanceOf(ctx, addr)
	if err != nil {
		return err
	}

	if err := k.Balances.Set(ctx, addr, bal.Add(amount)); err != nil {
		return err
	}
	return k.TotalMinted.Set(ctx, next)
}

// Transfer moves amount from one account to another.
func (k Keeper) Transfer(ctx context.Context, from, to sdk.AccAddress, amount math.Int) error {
	if err := requirePositive(amount); err != nil {
		return err
	}
	fromBal, err := k.BalanceOf(ctx, from)
	if err != nil {
		return err
	}
	if fromBal.LT(amount) {
		return errorsmod.Wrapf(types.ErrInsufficientBalance, "balance %s is less than %s", fromBal, amount)
	}
	if from.Equals(to) {
		return nil
	}
	toBal, err := k.BalanceOf(ctx, to)
	if err != nil {
		return err
	}

	if err := k.Balances.Set(ctx, from, fromBal.Sub(amount)); err != nil {
		return err
	}
	return k.Balances.Set(ctx, to, toBal.Add(amount))
}

// Burn destroys amount held by addr and lowers the total supply.
func (k Keeper) Burn(ctx context.Context, addr sdk.AccAddress, amount math.Int) error {
	if err := requirePositive(amount); err != nil {
		return err
	}
	bal, err := k.BalanceOf(ctx, addr)
	if err != nil {
		return err
	}
	if bal.LT(amount) {
		return errorsmod.Wrapf(types.ErrInsufficientBalance, "balance %s is less than %s", bal, amount)
	}
	total, err := k.GetTotalMinted(ctx)
	if err != nil {
		return err
	}

	if err := k.Balances.Set(ctx, addr, bal.Sub(amount)); err != nil {
		return err
	}
	return k.TotalMinted.Set(ctx, total.Sub(amount))
}

func requirePositive(amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return errorsmod.Wrap(types.ErrInvalidRequest, "amount must be positive")
	}
	return nil
}
