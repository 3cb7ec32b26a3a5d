package types

import (
	"cosmossdk.io/math"
)

// PlayerStatsEntry pairs a player with its aggregates for genesis export.
type PlayerStatsEntry struct {
	Player string      `json:"player"`
	Stats  PlayerStats `json:"stats"`
}

// GenesisState is the complete state of the module.
type GenesisState struct {
	Params        Params             `json:"params"`
	State         OperationalState   `json:"state"`
	TotalMinted   math.Int           `json:"total_minted"`
	Balances      []Balance          `json:"balances"`
	Players       []PlayerStatsEntry `json:"players"`
	Sessions      []SessionRecord    `json:"sessions"`
	Leaderboards  []WeeklyBucket     `json:"leaderboards"`
	NextSessionID uint64             `json:"next_session_id"`
	StateVersion  uint64             `json:"state_version"`
}

// DefaultGenesis returns an empty ledger with default params. The admin is
// left empty and resolved to the module authority on init.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		TotalMinted:  math.ZeroInt(),
		Balances:     []Balance{},
		Players:      []PlayerStatsEntry{},
		Sessions:     []SessionRecord{},
		Leaderboards: []WeeklyBucket{},
	}
}

// NewGenesisState returns a fresh ledger owned by admin with the initial
// allocation minted to admin and to the reserve account.
func NewGenesisState(admin, reserve string) *GenesisState {
	gs := DefaultGenesis()
	gs.State = OperationalState{Admin: admin}
	gs.Balances = []Balance{
		{Address: admin, Amount: InitialAdminAllocation},
		{Address: reserve, Amount: InitialReserveAllocation},
	}
	gs.TotalMinted = InitialAdminAllocation.Add(InitialReserveAllocation)
	return gs
}
