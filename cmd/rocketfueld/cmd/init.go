package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"rocketcandle/app"
)

const (
	flagChainID   = "chain-id"
	flagOverwrite = "overwrite"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [admin]",
		Short: "Write app.toml and a genesis owned by admin with the initial allocation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := sdk.AccAddressFromBech32(args[0]); err != nil {
				return fmt.Errorf("invalid admin address: %w", err)
			}
			home := homeDir(cmd)
			overwrite, _ := cmd.Flags().GetBool(flagOverwrite)
			if _, err := os.Stat(genesisPath(home)); err == nil && !overwrite {
				return fmt.Errorf("genesis already exists at %s; use --%s", genesisPath(home), flagOverwrite)
			}

			cfg := configFromCmd(cmd)
			if err := writeConfigFile(appConfigPath(home), cfg); err != nil {
				return err
			}

			genesis, err := app.NewDefaultGenesisState(args[0])
			if err != nil {
				return err
			}
			bz, err := json.MarshalIndent(genesis, "", "  ")
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(genesisPath(home)), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(genesisPath(home), bz, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "initialized %s for chain %s\n", home, cfg.ChainID)
			return nil
		},
	}
	cmd.Flags().String(flagChainID, "", "chain id written to app.toml")
	cmd.Flags().Bool(flagOverwrite, false, "replace an existing genesis")
	return cmd
}
