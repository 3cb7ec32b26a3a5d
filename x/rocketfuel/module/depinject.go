package module

import (
	"cosmossdk.io/depinject"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"rocketcandle/x/rocketfuel/keeper"
	"rocketcandle/x/rocketfuel/types"
)

type ModuleInputs struct {
	depinject.In

	Config   types.ModuleConfig
	StoreKey *storetypes.KVStoreKey
}

type ModuleOutputs struct {
	depinject.Out

	RocketfuelKeeper keeper.Keeper
	Module           AppModule
}

func ProvideModule(in ModuleInputs) (ModuleOutputs, error) {
	addressCodec := addresscodec.NewBech32Codec(in.Config.Bech32Prefix)

	authority := authtypes.NewModuleAddress(types.GovModuleName)
	if in.Config.Authority != "" {
		bz, err := addressCodec.StringToBytes(in.Config.Authority)
		if err != nil {
			return ModuleOutputs{}, err
		}
		authority = bz
	}

	k := keeper.NewKeeper(runtime.NewKVStoreService(in.StoreKey), addressCodec, authority)
	m := NewAppModule(k)
	return ModuleOutputs{RocketfuelKeeper: k, Module: m}, nil
}
