package types

import (
	"cosmossdk.io/math"
)

// Token metadata of the RocketFUEL currency. Amounts are always expressed in
// the smallest unit, 10^TokenDecimals units per whole token.
const (
	TokenName     = "Rocket Candle Fuel"
	TokenSymbol   = "RocketFUEL"
	TokenDecimals = 18
)

var (
	// OneToken is one whole RocketFUEL in the smallest unit.
	OneToken = math.NewIntWithDecimal(1, TokenDecimals)

	// MaxTotalSupply bounds the total issuance for the lifetime of the ledger.
	MaxTotalSupply = Tokens(100_000_000)

	// Genesis allocation of a fresh ledger.
	InitialAdminAllocation   = Tokens(1_000_000)
	InitialReserveAllocation = Tokens(9_000_000)
)

// Tokens converts a whole token count into the smallest unit.
func Tokens(n int64) math.Int {
	return math.NewInt(n).Mul(OneToken)
}
