package types_test

import (
	"strings"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"rocketcandle/x/rocketfuel/types"
)

func TestGenesisStateValidate(t *testing.T) {
	var (
		admin   = sdk.AccAddress([]byte("genesis_admin")).String()
		reserve = sdk.AccAddress([]byte("genesis_reserve")).String()
		alice   = sdk.AccAddress([]byte("alice")).String()
	)
	rec := func(id uint64, player string, score uint64) types.SessionRecord {
		return types.SessionRecord{ID: id, Player: player, Score: score, Level: 1, GameTime: 60, Reward: types.CalculateReward(score, 1)}
	}
	withSessions := func() *types.GenesisState {
		gs := types.NewGenesisState(admin, reserve)
		r0, r1 := rec(0, alice, 5_000), rec(1, alice, 9_000)
		stats := types.NewPlayerStats().Record(r0).Record(r1)
		gs.Players = []types.PlayerStatsEntry{{Player: alice, Stats: stats}}
		gs.Sessions = []types.SessionRecord{r0, r1}
		gs.NextSessionID = 2
		return gs
	}

	testCases := []struct {
		name     string
		genState func() *types.GenesisState
		expErr   bool
	}{
		{name: "default", genState: types.DefaultGenesis},
		{name: "initial allocation", genState: func() *types.GenesisState { return types.NewGenesisState(admin, reserve) }},
		{name: "ledger with sessions", genState: withSessions},
		{
			name: "balances do not add up",
			genState: func() *types.GenesisState {
				gs := types.NewGenesisState(admin, reserve)
				gs.TotalMinted = gs.TotalMinted.AddRaw(1)
				return gs
			},
			expErr: true,
		},
		{
			name: "supply above cap",
			genState: func() *types.GenesisState {
				gs := types.DefaultGenesis()
				gs.TotalMinted = types.MaxTotalSupply.AddRaw(1)
				gs.Balances = []types.Balance{{Address: alice, Amount: gs.TotalMinted}}
				return gs
			},
			expErr: true,
		},
		{
			name: "duplicate balance",
			genState: func() *types.GenesisState {
				gs := types.DefaultGenesis()
				gs.Balances = []types.Balance{{Address: alice, Amount: math.OneInt()}, {Address: alice, Amount: math.OneInt()}}
				gs.TotalMinted = math.NewInt(2)
				return gs
			},
			expErr: true,
		},
		{
			name: "duplicate balance under another spelling",
			genState: func() *types.GenesisState {
				gs := types.DefaultGenesis()
				gs.Balances = []types.Balance{{Address: alice, Amount: math.OneInt()}, {Address: strings.ToUpper(alice), Amount: math.OneInt()}}
				gs.TotalMinted = math.NewInt(2)
				return gs
			},
			expErr: true,
		},
		{
			name: "balance with malformed address",
			genState: func() *types.GenesisState {
				gs := types.DefaultGenesis()
				gs.Balances = []types.Balance{{Address: "alice", Amount: math.OneInt()}}
				gs.TotalMinted = math.OneInt()
				return gs
			},
			expErr: true,
		},
		{
			name: "duplicate player under another spelling",
			genState: func() *types.GenesisState {
				gs := withSessions()
				gs.Players = append(gs.Players, types.PlayerStatsEntry{Player: strings.ToUpper(alice), Stats: types.NewPlayerStats()})
				return gs
			},
			expErr: true,
		},
		{
			name: "sessions spelled differently from their player",
			genState: func() *types.GenesisState {
				gs := withSessions()
				gs.Sessions[1].Player = strings.ToUpper(alice)
				return gs
			},
		},
		{
			name: "stats out of sync with sessions",
			genState: func() *types.GenesisState {
				gs := withSessions()
				gs.Players[0].Stats.TotalGames = 3
				return gs
			},
			expErr: true,
		},
		{
			name: "session id not below next id",
			genState: func() *types.GenesisState {
				gs := withSessions()
				gs.NextSessionID = 1
				return gs
			},
			expErr: true,
		},
		{
			name: "unsorted leaderboard",
			genState: func() *types.GenesisState {
				gs := types.DefaultGenesis()
				gs.Leaderboards = []types.WeeklyBucket{{WeekID: 0, Entries: []types.LeaderboardEntry{{Score: 1}, {Score: 2}}}}
				return gs
			},
			expErr: true,
		},
		{
			name: "invalid params",
			genState: func() *types.GenesisState {
				gs := types.DefaultGenesis()
				gs.Params.LeaderboardSize = 0
				return gs
			},
			expErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genState().Validate()
			if tc.expErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
