package keeper_test

import (
	"strings"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"rocketcandle/x/rocketfuel/types"
)

func TestMsgSubmitSession(t *testing.T) {
	f := initFixture(t)
	player, _ := f.account(t, "player_one")

	testCases := []struct {
		name      string
		input     *types.MsgSubmitSession
		expErr    error
		expErrMsg string
	}{
		{
			name:      "invalid address",
			input:     &types.MsgSubmitSession{Player: "invalid", Score: 10_000, Level: 5, GameTime: 60},
			expErr:    types.ErrInvalidRequest,
			expErrMsg: "invalid player address",
		},
		{
			name:      "game too short",
			input:     &types.MsgSubmitSession{Player: player, Score: 1_000, Level: 1, GameTime: 3},
			expErr:    types.ErrValidation,
			expErrMsg: "too short",
		},
		{
			name:      "suspicious score",
			input:     &types.MsgSubmitSession{Player: player, Score: 1_000_000, Level: 1, GameTime: 10},
			expErr:    types.ErrValidation,
			expErrMsg: "suspicious score",
		},
		{
			name:      "malformed level",
			input:     &types.MsgSubmitSession{Player: player, Score: 100, Level: 0, GameTime: 10},
			expErr:    types.ErrValidation,
			expErrMsg: "malformed session",
		},
		{
			name:  "accepted session",
			input: validSession(player),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := f.snapshot(t)
			resp, err := f.msgServer.SubmitSession(f.ctx, tc.input)

			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				require.Contains(t, err.Error(), tc.expErrMsg)
				require.Equal(t, before, f.snapshot(t), "a rejected session must not mutate state")
				return
			}
			require.NoError(t, err)
			require.NotNil(t, resp)
			require.Equal(t, "17500000000000000000", resp.Record.Reward.String())
			require.True(t, resp.Ranked)
			require.Equal(t, uint64(1), resp.StateVersion)
		})
	}
}

func TestSubmitSessionUpdatesLedger(t *testing.T) {
	f := initFixture(t)
	player, addr := f.account(t, "player_one")

	scoresSubmitted := []uint64{4_000, 12_000, 7_500}
	expectedEarned := math.ZeroInt()
	for i, score := range scoresSubmitted {
		msg := validSession(player)
		msg.Score = score
		resp, err := f.msgServer.SubmitSession(f.ctx, msg)
		require.NoError(t, err)
		require.Equal(t, uint64(i), resp.Record.ID)
		expectedEarned = expectedEarned.Add(types.CalculateReward(score, msg.Level))
	}

	stats, err := f.keeper.GetPlayerStats(f.ctx, addr)
	require.NoError(t, err)
	require.Equal(t, uint64(3), stats.TotalGames)
	require.Equal(t, uint64(12_000), stats.BestScore)
	require.Equal(t, expectedEarned.String(), stats.TotalTokensEarned.String())
	require.Equal(t, expectedEarned.String(), f.balance(t, addr).String())

	history, total, err := f.keeper.GetPlayerHistory(f.ctx, addr, 0, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(3), total)
	require.Len(t, history, 3)
	for i, rec := range history {
		require.Equal(t, scoresSubmitted[i], rec.Score)
		require.Equal(t, uint64(0), rec.WeekID)
		require.Equal(t, f.ctx.BlockTime().Unix(), rec.Timestamp)
	}

	totalMinted, err := f.keeper.GetTotalMinted(f.ctx)
	require.NoError(t, err)
	require.Equal(t, types.Tokens(10_000_000).Add(expectedEarned).String(), totalMinted.String())
}

func TestSubmitSessionEmitsCompletionEvent(t *testing.T) {
	f := initFixture(t)
	player, _ := f.account(t, "player_one")

	ctx := f.ctx.WithEventManager(sdk.NewEventManager())
	_, err := f.msgServer.SubmitSession(ctx, validSession(player))
	require.NoError(t, err)

	events := ctx.EventManager().Events()
	require.Len(t, events, 1)
	ev := events[0]
	require.Equal(t, types.EventGameCompleted, ev.Type)

	attrs := map[string]string{}
	for _, a := range ev.Attributes {
		attrs[a.Key] = a.Value
	}
	require.Equal(t, player, attrs[types.AttrPlayer])
	require.Equal(t, "10000", attrs[types.AttrScore])
	require.Equal(t, "5", attrs[types.AttrLevel])
	require.Equal(t, "60", attrs[types.AttrGameTime])
	require.Equal(t, "42", attrs[types.AttrEnemiesDestroyed])
	require.Equal(t, "17500000000000000000", attrs[types.AttrReward])
	require.Equal(t, "1", attrs[types.AttrStateVersion])

	// rejected sessions emit nothing
	ctx = f.ctx.WithEventManager(sdk.NewEventManager())
	_, err = f.msgServer.SubmitSession(ctx, &types.MsgSubmitSession{Player: player, Score: 1, Level: 1, GameTime: 1})
	require.Error(t, err)
	require.Empty(t, ctx.EventManager().Events())
}

func TestSubmitSessionStoresCanonicalAddress(t *testing.T) {
	f := initFixture(t)
	player, addr := f.account(t, "player_one")
	upper := strings.ToUpper(player)

	ctx := f.ctx.WithEventManager(sdk.NewEventManager())
	resp, err := f.msgServer.SubmitSession(ctx, validSession(upper))
	require.NoError(t, err)
	require.Equal(t, player, resp.Record.Player)
	require.Equal(t, player, ctx.EventManager().Events()[0].Attributes[0].Value)

	msg := validSession(player)
	msg.Score = 20_000
	_, err = f.msgServer.SubmitSession(f.ctx, msg)
	require.NoError(t, err)

	top, err := f.keeper.TopScores(f.ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, top, 2)
	for _, e := range top {
		require.Equal(t, player, e.Player)
	}

	history, total, err := f.keeper.GetPlayerHistory(f.ctx, addr, 0, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(2), total)
	for _, rec := range history {
		require.Equal(t, player, rec.Player)
	}

	exported, err := f.keeper.ExportGenesis(f.ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())

	// transfers and admin calls accept any spelling of the same account
	_, err = f.msgServer.Transfer(f.ctx, &types.MsgTransfer{Sender: upper, Recipient: f.admin, Amount: types.OneToken})
	require.NoError(t, err)
	_, err = f.msgServer.Pause(f.ctx, &types.MsgPause{Admin: strings.ToUpper(f.admin)})
	require.NoError(t, err)
	state, err := f.keeper.GetOperationalState(f.ctx)
	require.NoError(t, err)
	require.Equal(t, f.admin, state.Admin)
}

func TestSubmitSessionSupplyCap(t *testing.T) {
	f := initFixture(t)
	player, _ := f.account(t, "player_one")

	// leave room for less than one reward
	reserve := f.keeper.ReserveAddress()
	headroom := types.Tokens(1)
	topUp := types.MaxTotalSupply.Sub(types.Tokens(10_000_000)).Sub(headroom)
	require.NoError(t, f.keeper.Mint(f.ctx, reserve, topUp))

	before := f.snapshot(t)
	_, err := f.msgServer.SubmitSession(f.ctx, validSession(player))
	require.ErrorIs(t, err, types.ErrSupplyExceeded)
	require.Equal(t, before, f.snapshot(t))

	// the level bonus alone is 1.5 tokens
	_, err = f.msgServer.SubmitSession(f.ctx, &types.MsgSubmitSession{Player: player, Score: 0, Level: 1, GameTime: 10})
	require.ErrorIs(t, err, types.ErrSupplyExceeded)

	// with exactly 1.5 tokens of room the same session lands on the cap
	require.NoError(t, f.keeper.Burn(f.ctx, reserve, types.OneToken.QuoRaw(2)))
	_, err = f.msgServer.SubmitSession(f.ctx, &types.MsgSubmitSession{Player: player, Score: 0, Level: 1, GameTime: 10})
	require.NoError(t, err)

	total, err := f.keeper.GetTotalMinted(f.ctx)
	require.NoError(t, err)
	require.Equal(t, types.MaxTotalSupply.String(), total.String())
}

func TestPauseBlocksMutations(t *testing.T) {
	f := initFixture(t)
	player, addr := f.account(t, "player_one")
	f.fund(t, player, types.Tokens(100))

	_, err := f.msgServer.Pause(f.ctx, &types.MsgPause{Admin: f.admin})
	require.NoError(t, err)

	before := f.snapshot(t)

	_, err = f.msgServer.SubmitSession(f.ctx, validSession(player))
	require.ErrorIs(t, err, types.ErrPaused)
	require.True(t, types.IsStateError(err))

	_, err = f.msgServer.PurchaseRevive(f.ctx, &types.MsgPurchaseRevive{Player: player})
	require.ErrorIs(t, err, types.ErrPaused)

	_, err = f.msgServer.Transfer(f.ctx, &types.MsgTransfer{Sender: player, Recipient: f.admin, Amount: types.OneToken})
	require.ErrorIs(t, err, types.ErrPaused)

	_, err = f.msgServer.Burn(f.ctx, &types.MsgBurn{Sender: player, Amount: types.OneToken})
	require.ErrorIs(t, err, types.ErrPaused)

	// the pause check comes before any request validation
	_, err = f.msgServer.SubmitSession(f.ctx, validSession("not-an-address"))
	require.ErrorIs(t, err, types.ErrPaused)
	_, err = f.msgServer.PurchaseRevive(f.ctx, &types.MsgPurchaseRevive{Player: "not-an-address"})
	require.ErrorIs(t, err, types.ErrPaused)
	_, err = f.msgServer.Transfer(f.ctx, &types.MsgTransfer{Sender: "not-an-address", Recipient: "", Amount: types.OneToken})
	require.ErrorIs(t, err, types.ErrPaused)
	_, err = f.msgServer.Burn(f.ctx, &types.MsgBurn{Sender: "not-an-address", Amount: types.OneToken})
	require.ErrorIs(t, err, types.ErrPaused)

	require.Equal(t, before, f.snapshot(t))

	// reads keep working while paused
	_, err = f.queryServer.PlayerStats(f.ctx, &types.QueryPlayerStatsRequest{Player: player})
	require.NoError(t, err)
	resp, err := f.queryServer.Balance(f.ctx, &types.QueryBalanceRequest{Address: player})
	require.NoError(t, err)
	require.Equal(t, types.Tokens(100).String(), resp.Balance.Amount.String())

	_, err = f.msgServer.Unpause(f.ctx, &types.MsgUnpause{Admin: f.admin})
	require.NoError(t, err)

	_, err = f.msgServer.SubmitSession(f.ctx, validSession(player))
	require.NoError(t, err)

	stats, err := f.keeper.GetPlayerStats(f.ctx, addr)
	require.NoError(t, err)
	require.Equal(t, uint64(1), stats.TotalGames)
}

func TestPauseTransitions(t *testing.T) {
	f := initFixture(t)
	stranger, _ := f.account(t, "stranger")

	testCases := []struct {
		name   string
		run    func() error
		expErr error
	}{
		{
			name: "stranger cannot pause",
			run: func() error {
				_, err := f.msgServer.Pause(f.ctx, &types.MsgPause{Admin: stranger})
				return err
			},
			expErr: types.ErrUnauthorized,
		},
		{
			name: "unpause while active",
			run: func() error {
				_, err := f.msgServer.Unpause(f.ctx, &types.MsgUnpause{Admin: f.admin})
				return err
			},
			expErr: types.ErrNotPaused,
		},
		{
			name: "admin pauses",
			run: func() error {
				_, err := f.msgServer.Pause(f.ctx, &types.MsgPause{Admin: f.admin})
				return err
			},
		},
		{
			name: "pause twice",
			run: func() error {
				_, err := f.msgServer.Pause(f.ctx, &types.MsgPause{Admin: f.admin})
				return err
			},
			expErr: types.ErrPaused,
		},
		{
			name: "stranger cannot unpause",
			run: func() error {
				_, err := f.msgServer.Unpause(f.ctx, &types.MsgUnpause{Admin: stranger})
				return err
			},
			expErr: types.ErrUnauthorized,
		},
		{
			name: "admin unpauses",
			run: func() error {
				_, err := f.msgServer.Unpause(f.ctx, &types.MsgUnpause{Admin: f.admin})
				return err
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
			} else {
				require.NoError(t, err)
			}
		})
	}

	paused, err := f.keeper.IsPaused(f.ctx)
	require.NoError(t, err)
	require.False(t, paused)
}

func TestMsgPurchaseRevive(t *testing.T) {
	f := initFixture(t)
	player, addr := f.account(t, "player_one")
	reserve := f.keeper.ReserveAddress()
	f.fund(t, player, types.Tokens(100))
	reserveBefore := f.balance(t, reserve)

	resp, err := f.msgServer.PurchaseRevive(f.ctx, &types.MsgPurchaseRevive{Player: player})
	require.NoError(t, err)
	require.Equal(t, types.Tokens(50).String(), resp.Cost.String())
	require.Equal(t, types.Tokens(50).String(), resp.Balance.String())
	require.Equal(t, types.Tokens(50).String(), f.balance(t, addr).String())
	require.Equal(t, reserveBefore.Add(types.Tokens(50)).String(), f.balance(t, reserve).String())

	// drop to 10 tokens
	_, err = f.msgServer.Burn(f.ctx, &types.MsgBurn{Sender: player, Amount: types.Tokens(40)})
	require.NoError(t, err)

	before := f.snapshot(t)
	_, err = f.msgServer.PurchaseRevive(f.ctx, &types.MsgPurchaseRevive{Player: player})
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
	require.Equal(t, types.Tokens(10).String(), f.balance(t, addr).String())
	require.Equal(t, before, f.snapshot(t))
}

func TestMsgTransferAndBurn(t *testing.T) {
	f := initFixture(t)
	alice, aliceAddr := f.account(t, "alice")
	bob, bobAddr := f.account(t, "bob")
	f.fund(t, alice, types.Tokens(30))

	testCases := []struct {
		name   string
		run    func() error
		expErr error
	}{
		{
			name: "zero amount",
			run: func() error {
				_, err := f.msgServer.Transfer(f.ctx, &types.MsgTransfer{Sender: alice, Recipient: bob, Amount: math.ZeroInt()})
				return err
			},
			expErr: types.ErrInvalidRequest,
		},
		{
			name: "nil amount",
			run: func() error {
				_, err := f.msgServer.Burn(f.ctx, &types.MsgBurn{Sender: alice})
				return err
			},
			expErr: types.ErrInvalidRequest,
		},
		{
			name: "invalid recipient",
			run: func() error {
				_, err := f.msgServer.Transfer(f.ctx, &types.MsgTransfer{Sender: alice, Recipient: "nope", Amount: types.OneToken})
				return err
			},
			expErr: types.ErrInvalidRequest,
		},
		{
			name: "overdraw",
			run: func() error {
				_, err := f.msgServer.Transfer(f.ctx, &types.MsgTransfer{Sender: alice, Recipient: bob, Amount: types.Tokens(31)})
				return err
			},
			expErr: types.ErrInsufficientBalance,
		},
		{
			name: "transfer",
			run: func() error {
				_, err := f.msgServer.Transfer(f.ctx, &types.MsgTransfer{Sender: alice, Recipient: bob, Amount: types.Tokens(20)})
				return err
			},
		},
		{
			name: "burn more than held",
			run: func() error {
				_, err := f.msgServer.Burn(f.ctx, &types.MsgBurn{Sender: bob, Amount: types.Tokens(21)})
				return err
			},
			expErr: types.ErrInsufficientBalance,
		},
		{
			name: "burn",
			run: func() error {
				_, err := f.msgServer.Burn(f.ctx, &types.MsgBurn{Sender: bob, Amount: types.Tokens(5)})
				return err
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
			} else {
				require.NoError(t, err)
			}
		})
	}

	require.Equal(t, types.Tokens(10).String(), f.balance(t, aliceAddr).String())
	require.Equal(t, types.Tokens(15).String(), f.balance(t, bobAddr).String())

	total, err := f.keeper.GetTotalMinted(f.ctx)
	require.NoError(t, err)
	require.Equal(t, types.Tokens(10_000_000-5).String(), total.String())
}

func TestMsgTransferAdmin(t *testing.T) {
	f := initFixture(t)
	next, _ := f.account(t, "next_admin")

	_, err := f.msgServer.Pause(f.ctx, &types.MsgPause{Admin: f.admin})
	require.NoError(t, err)

	_, err = f.msgServer.TransferAdmin(f.ctx, &types.MsgTransferAdmin{Admin: next, NewAdmin: next})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = f.msgServer.TransferAdmin(f.ctx, &types.MsgTransferAdmin{Admin: f.admin, NewAdmin: "bogus"})
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	// allowed while paused
	_, err = f.msgServer.TransferAdmin(f.ctx, &types.MsgTransferAdmin{Admin: f.admin, NewAdmin: next})
	require.NoError(t, err)

	_, err = f.msgServer.Unpause(f.ctx, &types.MsgUnpause{Admin: f.admin})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = f.msgServer.Unpause(f.ctx, &types.MsgUnpause{Admin: next})
	require.NoError(t, err)
}

func TestMsgUpdateParams(t *testing.T) {
	f := initFixture(t)
	stranger, _ := f.account(t, "stranger")

	current, err := f.keeper.GetParams(f.ctx)
	require.NoError(t, err)

	cheaper := current
	cheaper.RevivePrice = types.Tokens(5)
	cheaper.LeaderboardSize = 3

	moved := current
	moved.WeekDuration = 60

	invalid := current
	invalid.MinGameTime = 0

	testCases := []struct {
		name   string
		input  *types.MsgUpdateParams
		expErr error
	}{
		{name: "stranger", input: &types.MsgUpdateParams{Admin: stranger, Params: cheaper}, expErr: types.ErrUnauthorized},
		{name: "invalid params", input: &types.MsgUpdateParams{Admin: f.admin, Params: invalid}, expErr: types.ErrInvalidRequest},
		{name: "week partitioning is fixed", input: &types.MsgUpdateParams{Admin: f.admin, Params: moved}, expErr: types.ErrInvalidRequest},
		{name: "admin update", input: &types.MsgUpdateParams{Admin: f.admin, Params: cheaper}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.msgServer.UpdateParams(f.ctx, tc.input)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
			} else {
				require.NoError(t, err)
			}
		})
	}

	got, err := f.keeper.GetParams(f.ctx)
	require.NoError(t, err)
	require.Equal(t, types.Tokens(5).String(), got.RevivePrice.String())
	require.Equal(t, uint32(3), got.LeaderboardSize)
}

func TestStateVersionAdvancesOnlyOnCommit(t *testing.T) {
	f := initFixture(t)
	player, _ := f.account(t, "player_one")

	_, err := f.msgServer.SubmitSession(f.ctx, validSession(player))
	require.NoError(t, err)
	_, err = f.msgServer.SubmitSession(f.ctx, &types.MsgSubmitSession{Player: player, Level: 1, GameTime: 1})
	require.Error(t, err)
	resp, err := f.msgServer.SubmitSession(f.ctx, validSession(player))
	require.NoError(t, err)
	require.Equal(t, uint64(2), resp.StateVersion)

	version, err := f.keeper.GetStateVersion(f.ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(2), version)
}
