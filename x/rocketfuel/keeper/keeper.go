package keeper

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"rocketcandle/x/rocketfuel/types"
)

// Keeper defines the rocketfuel module keeper.
type Keeper struct {
	storeService corestore.KVStoreService
	addressCodec address.Codec
	// Address that owns the module when genesis does not name an admin.
	authority []byte

	Schema           collections.Schema
	Params           collections.Item[types.Params]
	OperationalState collections.Item[types.OperationalState]
	StateVersion     collections.Sequence
	SessionSequence  collections.Sequence
	TotalMinted      collections.Item[math.Int]
	Balances         collections.Map[sdk.AccAddress, math.Int]
	Players          collections.Map[sdk.AccAddress, types.PlayerStats]
	// History is keyed by (player, per-player index) so a player's sessions
	// are contiguous and iterate in submission order.
	History collections.Map[collections.Pair[sdk.AccAddress, uint64], types.SessionRecord]
	Buckets collections.Map[uint64, types.WeeklyBucket]
}

// NewKeeper creates a new rocketfuel module Keeper instance
func NewKeeper(
	storeService corestore.KVStoreService,
	addressCodec address.Codec,
	authority []byte,
) Keeper {
	if len(authority) == 0 {
		panic("authority address cannot be empty")
	}
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %x: %s", authority, err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		addressCodec: addressCodec,
		authority:    authority,

		Params:           collections.NewItem(sb, types.ParamsKey, "params", types.ParamsValue),
		OperationalState: collections.NewItem(sb, types.OperationalStateKey, "operational_state", types.OperationalStateValue),
		StateVersion:     collections.NewSequence(sb, types.StateVersionKey, "state_version"),
		SessionSequence:  collections.NewSequence(sb, types.SessionSequenceKey, "session_sequence"),
		TotalMinted:      collections.NewItem(sb, types.TotalMintedKey, "total_minted", sdk.IntValue),
		Balances:         collections.NewMap(sb, types.BalancesKeyPrefix, "balances", sdk.AccAddressKey, sdk.IntValue),
		Players:          collections.NewMap(sb, types.PlayerStatsPrefix, "players", sdk.AccAddressKey, types.PlayerStatsValue),
		History: collections.NewMap(
			sb,
			types.SessionHistoryKey,
			"history",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.Uint64Key),
			types.SessionRecordValue,
		),
		Buckets: collections.NewMap(sb, types.WeeklyBucketPrefix, "weekly_buckets", collections.Uint64Key, types.WeeklyBucketValue),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() []byte {
	return k.authority
}

// AddressCodec returns the codec used for account addresses.
func (k Keeper) AddressCodec() address.Codec {
	return k.addressCodec
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// ReserveAddress is the account holding the unissued reserve.
func (k Keeper) ReserveAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ReserveAccountName)
}

// GetParams returns current params or defaults when unset.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}
	return params, nil
}

// SetParams stores validated module params.
func (k Keeper) SetParams(ctx context.Context, p types.Params) error {
	if err := p.Validate(); err != nil {
		return errorsmod.Wrap(types.ErrInvalidRequest, err.Error())
	}
	return k.Params.Set(ctx, p)
}

// GetStateVersion returns the number of committed mutations.
func (k Keeper) GetStateVersion(ctx context.Context) (uint64, error) {
	return k.StateVersion.Peek(ctx)
}

// atomically runs fn against a cached copy of the store. The cache is written
// back only when fn succeeds, so a failing step leaves no partial writes and
// no events. Each successful run bumps the state version, which is returned
// and stamped on every event fn emitted.
func (k Keeper) atomically(ctx context.Context, fn func(ctx sdk.Context) error) (uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()
	cacheCtx = cacheCtx.WithEventManager(sdk.NewEventManager())

	if err := fn(cacheCtx); err != nil {
		return 0, err
	}
	if _, err := k.StateVersion.Next(cacheCtx); err != nil {
		return 0, err
	}
	version, err := k.StateVersion.Peek(cacheCtx)
	if err != nil {
		return 0, err
	}
	write()

	versionAttr := sdk.NewAttribute(types.AttrStateVersion, strconv.FormatUint(version, 10))
	for _, ev := range cacheCtx.EventManager().Events() {
		sdkCtx.EventManager().EmitEvent(ev.AppendAttributes(versionAttr))
	}
	return version, nil
}

func (k Keeper) parseAddress(addr, field string) (sdk.AccAddress, error) {
	bz, err := k.addressCodec.StringToBytes(addr)
	if err != nil || len(bz) == 0 {
		return nil, errorsmod.Wrapf(types.ErrInvalidRequest, "invalid %s address", field)
	}
	return bz, nil
}

// canonicalAddress returns addr in the codec's canonical spelling, so that
// every spelling of one account compares equal.
func (k Keeper) canonicalAddress(addr, field string) (string, error) {
	bz, err := k.parseAddress(addr, field)
	if err != nil {
		return "", err
	}
	return k.formatAddress(bz), nil
}

func (k Keeper) formatAddress(addr sdk.AccAddress) string {
	s, err := k.addressCodec.BytesToString(addr)
	if err != nil {
		return ""
	}
	return s
}
