package types

// GovModuleName names the default authority account.
const GovModuleName = "gov"

// ModuleConfig is supplied by the host application when wiring the module.
type ModuleConfig struct {
	// Authority is the bech32 address owning the module until genesis names
	// an admin. Defaults to the gov module account.
	Authority string
	// Bech32Prefix is the account address prefix of the host chain.
	Bech32Prefix string
}
