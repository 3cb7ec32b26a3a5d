package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"rocketcandle/cmd/rocketfueld/cmd"
	"rocketcandle/x/rocketfuel/types"
)

var admin = sdk.AccAddress([]byte("cmd_admin")).String()

func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(append(args, "--home", home, "--log-level", "error"))
	err := root.Execute()
	return out.String(), err
}

func TestInitWritesConfigAndGenesis(t *testing.T) {
	home := t.TempDir()

	_, err := run(t, home, "init", admin, "--chain-id", "rocketfuel-test")
	require.NoError(t, err)

	bz, err := os.ReadFile(filepath.Join(home, "config", "app.toml"))
	require.NoError(t, err)
	require.Contains(t, string(bz), `chain-id = "rocketfuel-test"`)

	bz, err = os.ReadFile(filepath.Join(home, "config", "genesis.json"))
	require.NoError(t, err)
	var genesis map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(bz, &genesis))
	require.Contains(t, genesis, types.ModuleName)

	_, err = run(t, home, "init", admin)
	require.ErrorContains(t, err, "genesis already exists")

	_, err = run(t, home, "init", admin, "--overwrite")
	require.NoError(t, err)

	_, err = run(t, t.TempDir(), "init", "not-an-address")
	require.ErrorContains(t, err, "invalid admin address")
}

func TestNodeCommands(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, "init", admin)
	require.NoError(t, err)

	_, err = run(t, home, "tx", "submit-session", "10000", "5", "60", "10", "1", "--from", admin)
	require.NoError(t, err)

	out, err := run(t, home, "query", "stats", admin)
	require.NoError(t, err)
	var stats types.QueryPlayerStatsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	require.Equal(t, uint64(1), stats.Stats.TotalGames)
	require.Equal(t, uint64(10000), stats.Stats.BestScore)
	require.Equal(t, "17500000000000000000", stats.Stats.TotalTokensEarned.String())

	_, err = run(t, home, "tx", "submit-session", "10000", "5", "2", "10", "1", "--from", admin)
	require.ErrorContains(t, err, "game too short")

	out, err = run(t, home, "export")
	require.NoError(t, err)
	var exported map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &exported))
	var gs types.GenesisState
	require.NoError(t, json.Unmarshal(exported[types.ModuleName], &gs))
	require.Len(t, gs.Sessions, 1)
}

func TestEnvironmentOverridesConfigFile(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, "init", admin)
	require.NoError(t, err)

	t.Setenv("ROCKETFUEL_DB_BACKEND", "unknown-backend")
	_, err = run(t, home, "query", "state")
	require.Error(t, err)
}
