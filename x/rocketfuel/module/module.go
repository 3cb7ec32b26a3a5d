package module

import (
	"encoding/json"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"

	"rocketcandle/x/rocketfuel/keeper"
	"rocketcandle/x/rocketfuel/types"
)

var (
	_ module.HasGenesisBasics    = AppModuleBasic{}
	_ module.HasInvariants       = AppModule{}
	_ module.HasConsensusVersion = AppModule{}
)

// AppModuleBasic defines the basic application module used by the rocketfuel module.
type AppModuleBasic struct{}

func (AppModuleBasic) Name() string { return types.ModuleName }

// DefaultGenesis returns an empty ledger. Genesis is plain JSON, like the
// values in the module store.
func (AppModuleBasic) DefaultGenesis(_ codec.JSONCodec) json.RawMessage {
	bz, _ := json.Marshal(types.DefaultGenesis())
	return bz
}

func (AppModuleBasic) ValidateGenesis(_ codec.JSONCodec, _ client.TxEncodingConfig, bz json.RawMessage) error {
	gs, err := DecodeGenesis(bz)
	if err != nil {
		return err
	}
	return gs.Validate()
}

// DecodeGenesis parses genesis JSON. Empty input yields the default genesis.
func DecodeGenesis(bz json.RawMessage) (*types.GenesisState, error) {
	if len(bz) == 0 {
		return types.DefaultGenesis(), nil
	}
	var gs types.GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		return nil, err
	}
	return &gs, nil
}

// AppModule implements an application module for the rocketfuel module.
type AppModule struct {
	AppModuleBasic
	keeper keeper.Keeper
}

func NewAppModule(k keeper.Keeper) AppModule {
	return AppModule{keeper: k}
}

// Keeper returns the module keeper.
func (am AppModule) Keeper() keeper.Keeper { return am.keeper }

// MsgServer returns the write surface of the module.
func (am AppModule) MsgServer() types.MsgServer { return keeper.NewMsgServerImpl(am.keeper) }

// QueryServer returns the read surface of the module.
func (am AppModule) QueryServer() types.QueryServer { return keeper.NewQueryServerImpl(am.keeper) }

func (am AppModule) InitGenesis(ctx sdk.Context, _ codec.JSONCodec, data json.RawMessage) {
	gs, err := DecodeGenesis(data)
	if err != nil {
		panic(err)
	}
	if err := am.keeper.InitGenesis(ctx, *gs); err != nil {
		panic(err)
	}
}

func (am AppModule) ExportGenesis(ctx sdk.Context, _ codec.JSONCodec) json.RawMessage {
	gs, err := am.keeper.ExportGenesis(ctx)
	if err != nil {
		panic(err)
	}
	bz, _ := json.Marshal(gs)
	return bz
}

func (AppModule) ConsensusVersion() uint64 { return 1 }

// RegisterInvariants implements the InvariantRegistry.
func (am AppModule) RegisterInvariants(ir sdk.InvariantRegistry) {
	keeper.RegisterInvariants(ir, am.keeper)
}
