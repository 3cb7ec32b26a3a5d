package app

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func init() {
	// Set address prefixes
	accountPubKeyPrefix := AccountAddressPrefix + "pub"
	validatorAddressPrefix := AccountAddressPrefix + "valoper"
	validatorPubKeyPrefix := AccountAddressPrefix + "valoperpub"
	consNodeAddressPrefix := AccountAddressPrefix + "valcons"
	consNodePubKeyPrefix := AccountAddressPrefix + "valconspub"

	// Set and seal config
	config := sdk.GetConfig()
	config.SetPurpose(sdk.Purpose)
	config.SetFullFundraiserPath(sdk.FullFundraiserPath)
	config.SetCoinType(ChainCoinType)
	config.SetBech32PrefixForAccount(AccountAddressPrefix, accountPubKeyPrefix)
	config.SetBech32PrefixForValidator(validatorAddressPrefix, validatorPubKeyPrefix)
	config.SetBech32PrefixForConsensusNode(consNodeAddressPrefix, consNodePubKeyPrefix)
	config.Seal()
}

// Config is the node configuration, read from app.toml and ROCKETFUEL_*
// environment variables.
type Config struct {
	ChainID string `mapstructure:"chain-id"`
	// Authority owns the module until genesis names an admin. Empty means
	// the gov module account.
	Authority       string `mapstructure:"authority"`
	DBBackend       string `mapstructure:"db-backend"`
	LogLevel        string `mapstructure:"log-level"`
	CheckInvariants bool   `mapstructure:"check-invariants"`

	API APIConfig `mapstructure:"api"`
}

// APIConfig configures the read-only HTTP API.
type APIConfig struct {
	Address string `mapstructure:"address"`
	// EnableCORS allows browser clients on other origins.
	EnableCORS bool `mapstructure:"enable-cors"`
}

// DefaultConfig returns the configuration of a fresh node.
func DefaultConfig() Config {
	return Config{
		ChainID:         "rocketfuel-1",
		DBBackend:       "goleveldb",
		LogLevel:        "info",
		CheckInvariants: true,
		API: APIConfig{
			Address:    "127.0.0.1:1317",
			EnableCORS: true,
		},
	}
}

// Validate performs basic validation of the node configuration.
func (c Config) Validate() error {
	if c.ChainID == "" {
		return fmt.Errorf("chain-id cannot be empty")
	}
	if c.Authority != "" {
		if _, err := sdk.AccAddressFromBech32(c.Authority); err != nil {
			return fmt.Errorf("invalid authority: %w", err)
		}
	}
	return nil
}

// DefaultConfigTemplate is written to app.toml on init.
const DefaultConfigTemplate = `# rocketfuel node configuration

chain-id = "{{ .ChainID }}"

# bech32 address owning the module until genesis names an admin
authority = "{{ .Authority }}"

# goleveldb or memdb
db-backend = "{{ .DBBackend }}"

log-level = "{{ .LogLevel }}"

# run the module invariants before committing each block
check-invariants = {{ .CheckInvariants }}

[api]
address = "{{ .API.Address }}"
enable-cors = {{ .API.EnableCORS }}
`
