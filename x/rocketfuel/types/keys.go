package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "rocketfuel"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the module
	RouterKey = ModuleName

	// ReserveAccountName names the module account holding the unissued reserve
	// and collecting revive payments.
	ReserveAccountName = "rocketfuel_reserve"
)

// KVStore keys.
var (
	ParamsKey           = collections.NewPrefix(0)
	OperationalStateKey = collections.NewPrefix(1)
	StateVersionKey     = collections.NewPrefix(2)
	SessionSequenceKey  = collections.NewPrefix(3)
	TotalMintedKey      = collections.NewPrefix(4)
	BalancesKeyPrefix   = collections.NewPrefix(5)
	PlayerStatsPrefix   = collections.NewPrefix(6)
	SessionHistoryKey   = collections.NewPrefix(7)
	WeeklyBucketPrefix  = collections.NewPrefix(8)
)
