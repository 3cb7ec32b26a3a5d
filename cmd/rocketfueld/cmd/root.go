package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"rocketcandle/app"
	"rocketcandle/x/rocketfuel/client/cli"
)

const (
	flagHome     = "home"
	flagLogLevel = "log-level"
)

type configKey struct{}

// NewRootCmd creates a new root command for rocketfueld.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rocketfueld",
		Short:         "RocketFUEL reward ledger node",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
	}

	rootCmd.PersistentFlags().String(flagHome, app.DefaultNodeHome, "directory for config and data")
	rootCmd.PersistentFlags().String(flagLogLevel, "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		initCmd(),
		startCmd(),
		exportCmd(),
		cli.GetTxCmd(openBackend),
		cli.GetQueryCmd(openBackend),
	)
	return rootCmd
}

// loadConfig merges app.toml, ROCKETFUEL_* environment variables and flags
// over the defaults.
func loadConfig(cmd *cobra.Command) (app.Config, error) {
	home, err := cmd.Flags().GetString(flagHome)
	if err != nil {
		return app.Config{}, err
	}

	v := viper.New()
	_, defaults := initAppConfig()
	v.SetDefault("chain-id", defaults.ChainID)
	v.SetDefault("authority", defaults.Authority)
	v.SetDefault("db-backend", defaults.DBBackend)
	v.SetDefault("log-level", defaults.LogLevel)
	v.SetDefault("check-invariants", defaults.CheckInvariants)
	v.SetDefault("api.address", defaults.API.Address)
	v.SetDefault("api.enable-cors", defaults.API.EnableCORS)

	v.SetEnvPrefix(app.Name)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := bindChangedFlags(v, cmd.Flags()); err != nil {
		return app.Config{}, err
	}

	v.SetConfigFile(appConfigPath(home))
	if _, err := os.Stat(appConfigPath(home)); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return app.Config{}, err
		}
	}

	var cfg app.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return app.Config{}, err
	}
	return cfg, nil
}

// bindChangedFlags lets explicitly set flags that share a name with a config
// key override the file and environment.
func bindChangedFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || !f.Changed {
			return
		}
		switch f.Name {
		case flagLogLevel, flagChainID:
			err = v.BindPFlag(f.Name, f)
		}
	})
	return err
}

func configFromCmd(cmd *cobra.Command) app.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(app.Config); ok {
		return cfg
	}
	_, cfg := initAppConfig()
	return cfg
}

func newLogger(cfg app.Config) (log.Logger, error) {
	filter, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return log.NewLogger(os.Stderr, log.FilterOption(filter)), nil
}

func homeDir(cmd *cobra.Command) string {
	home, _ := cmd.Flags().GetString(flagHome)
	return home
}

func appConfigPath(home string) string {
	return filepath.Join(home, "config", "app.toml")
}

func genesisPath(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}
