package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cobra"

	"rocketcandle/app"
	"rocketcandle/x/rocketfuel/client/cli"
)

// openApp opens the node database under home and commits genesis on first
// use.
func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg := configFromCmd(cmd)
	home := homeDir(cmd)

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	db, err := dbm.NewDB("application", dbm.BackendType(cfg.DBBackend), filepath.Join(home, "data"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	a, err := app.New(logger, db, cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if a.Initialized() {
		return a, nil
	}

	genesis, err := readGenesis(genesisPath(home))
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	if err := a.InitChain(genesis); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

func openBackend(cmd *cobra.Command) (cli.Backend, error) {
	a, err := openApp(cmd)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func readGenesis(path string) (app.GenesisState, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read genesis, run init first: %w", err)
	}
	var genesis app.GenesisState
	if err := json.Unmarshal(bz, &genesis); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return genesis, nil
}
