package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	clienthelpers "cosmossdk.io/client/v2/helpers"
	"cosmossdk.io/depinject"
	"cosmossdk.io/log"
	"cosmossdk.io/store/metrics"
	"cosmossdk.io/store/rootmulti"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rocketcandle/x/rocketfuel/keeper"
	rocketfuel "rocketcandle/x/rocketfuel/module"
	"rocketcandle/x/rocketfuel/types"
)

const (
	// Name is the name of the application.
	Name = "rocketfuel"
	// AccountAddressPrefix is the prefix for accounts addresses.
	AccountAddressPrefix = "rocket"
	// ChainCoinType is the coin type of the chain.
	ChainCoinType = 118
)

// DefaultNodeHome default home directories for the application daemon
var DefaultNodeHome string

func init() {
	var err error
	clienthelpers.EnvPrefix = Name
	DefaultNodeHome, err = clienthelpers.GetNodeHomeDirectory("." + Name)
	if err != nil {
		panic(err)
	}
}

// App hosts the rocketfuel module on a persistent multistore. Every Deliver
// call is one block: it runs against a cache of the committed state and the
// store is committed only when the block succeeds. Blocks are serialised.
type App struct {
	mu sync.RWMutex

	logger   log.Logger
	db       dbm.DB
	cms      storetypes.CommitMultiStore
	storeKey *storetypes.KVStoreKey
	cfg      Config

	// clock supplies block time.
	clock func() time.Time

	RocketfuelKeeper keeper.Keeper
	module           rocketfuel.AppModule
}

// New wires the module and loads the latest committed state from db.
func New(logger log.Logger, db dbm.DB, cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{
		logger:   logger,
		db:       db,
		cfg:      cfg,
		storeKey: storetypes.NewKVStoreKey(types.StoreKey),
		clock:    func() time.Time { return time.Now().UTC() },
	}

	appConfig := depinject.Configs(
		depinject.Supply(
			types.ModuleConfig{Authority: cfg.Authority, Bech32Prefix: AccountAddressPrefix},
			app.storeKey,
		),
		depinject.Provide(rocketfuel.ProvideModule),
	)
	if err := depinject.Inject(appConfig, &app.RocketfuelKeeper, &app.module); err != nil {
		return nil, err
	}

	cms := rootmulti.NewStore(db, logger, metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(app.storeKey, storetypes.StoreTypeIAVL, nil)
	if err := loadStores(cms, db, []string{app.storeKey.Name()}); err != nil {
		return nil, fmt.Errorf("failed to load stores: %w", err)
	}
	app.cms = cms

	return app, nil
}

// Logger returns the application logger.
func (app *App) Logger() log.Logger { return app.logger }

// SetClock overrides the source of block time.
func (app *App) SetClock(clock func() time.Time) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.clock = clock
}

// LastBlockHeight returns the height of the last committed block.
func (app *App) LastBlockHeight() int64 {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.cms.LastCommitID().Version
}

// Initialized reports whether genesis has been committed.
func (app *App) Initialized() bool {
	return app.LastBlockHeight() > 0
}

// InitChain commits the genesis state as the first block.
func (app *App) InitChain(genesis GenesisState) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.cms.LastCommitID().Version > 0 {
		return fmt.Errorf("chain already initialized at height %d", app.cms.LastCommitID().Version)
	}
	if err := app.module.ValidateGenesis(nil, nil, genesis[types.ModuleName]); err != nil {
		return fmt.Errorf("invalid %s genesis: %w", types.ModuleName, err)
	}

	return app.runBlock(context.Background(), func(ctx sdk.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("init genesis: %v", r)
			}
		}()
		app.module.InitGenesis(ctx, nil, genesis[types.ModuleName])
		return nil
	})
}

// Deliver runs fn as a new block and commits it if fn succeeds.
func (app *App) Deliver(ctx context.Context, fn func(context.Context, types.MsgServer) error) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.cms.LastCommitID().Version == 0 {
		return fmt.Errorf("chain not initialized")
	}
	return app.runBlock(ctx, func(sdkCtx sdk.Context) error {
		return fn(sdkCtx, app.module.MsgServer())
	})
}

// Query runs fn against the last committed state. Writes made by fn are
// discarded.
func (app *App) Query(ctx context.Context, fn func(context.Context, types.QueryServer) error) error {
	app.mu.RLock()
	defer app.mu.RUnlock()

	sdkCtx := app.newContext(ctx, app.cms.CacheMultiStore(), app.cms.LastCommitID().Version)
	return fn(sdkCtx, app.module.QueryServer())
}

// ExportGenesis returns the application state as genesis.
func (app *App) ExportGenesis() (GenesisState, error) {
	app.mu.RLock()
	defer app.mu.RUnlock()

	sdkCtx := app.newContext(context.Background(), app.cms.CacheMultiStore(), app.cms.LastCommitID().Version)
	gs, err := app.RocketfuelKeeper.ExportGenesis(sdkCtx)
	if err != nil {
		return nil, err
	}
	bz, err := json.Marshal(gs)
	if err != nil {
		return nil, err
	}
	return GenesisState{types.ModuleName: bz}, nil
}

// Close releases the database.
func (app *App) Close() error {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.db.Close()
}

// runBlock must be called with the write lock held.
func (app *App) runBlock(ctx context.Context, fn func(sdk.Context) error) error {
	height := app.cms.LastCommitID().Version + 1
	cache := app.cms.CacheMultiStore()
	sdkCtx := app.newContext(ctx, cache, height)

	if err := fn(sdkCtx); err != nil {
		return err
	}
	if app.cfg.CheckInvariants {
		if msg, broken := keeper.AllInvariants(app.RocketfuelKeeper)(sdkCtx); broken {
			return fmt.Errorf("invariant broken at height %d: %s", height, msg)
		}
	}

	cache.Write()
	commitID := app.cms.Commit()

	for _, ev := range sdkCtx.EventManager().Events() {
		app.logger.Debug("event", "height", commitID.Version, "type", ev.Type)
	}
	app.logger.Info("committed block", "height", commitID.Version, "hash", fmt.Sprintf("%X", commitID.Hash))
	return nil
}

func (app *App) newContext(ctx context.Context, ms storetypes.MultiStore, height int64) sdk.Context {
	header := cmtproto.Header{
		ChainID: app.cfg.ChainID,
		Height:  height,
		Time:    app.clock(),
	}
	return sdk.NewContext(ms, header, false, app.logger).WithContext(ctx)
}
