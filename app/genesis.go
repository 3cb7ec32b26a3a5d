package app

import (
	"encoding/json"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"rocketcandle/x/rocketfuel/types"
)

// GenesisState of the application, keyed by module name.
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState returns a fresh ledger owned by admin with the
// initial allocation. An empty admin defers to the module authority and
// mints nothing.
func NewDefaultGenesisState(admin string) (GenesisState, error) {
	gs := types.DefaultGenesis()
	if admin != "" {
		gs = types.NewGenesisState(admin, ReserveAddress())
	}
	bz, err := json.Marshal(gs)
	if err != nil {
		return nil, err
	}
	return GenesisState{types.ModuleName: bz}, nil
}

// ReserveAddress is the bech32 address of the module reserve account.
func ReserveAddress() string {
	return authtypes.NewModuleAddress(types.ReserveAccountName).String()
}
