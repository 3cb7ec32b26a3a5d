package simulation

import (
	"context"
	"math/rand"

	"cosmossdk.io/math"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"rocketcandle/x/rocketfuel/types"
)

// Operation is one randomly drawn call against the msg server.
type Operation func(ctx context.Context, ms types.MsgServer) error

// RandomSession draws a session tuple bounded by p. About one draw in four
// breaks one of the plausibility checks.
func RandomSession(r *rand.Rand, p types.Params) types.SessionInput {
	minTime := int(p.MinGameTime)
	gameTime := uint64(simtypes.RandIntBetween(r, minTime, minTime+600))
	in := types.SessionInput{
		Score:            uint64(r.Int63n(int64(gameTime*p.MaxScorePerSecond) + 1)),
		Level:            uint64(simtypes.RandIntBetween(r, 1, 51)),
		GameTime:         gameTime,
		EnemiesDestroyed: uint64(r.Intn(200)),
		RocketsUsed:      uint64(r.Intn(20)),
	}

	switch r.Intn(12) {
	case 0:
		if minTime > 0 {
			in.GameTime = uint64(r.Intn(minTime))
		}
	case 1:
		in.Score = in.GameTime * (p.MaxScorePerSecond + 1)
	case 2:
		in.Level = 0
	}
	return in
}

// RandomMsgSubmitSession returns a submission from a random account.
func RandomMsgSubmitSession(r *rand.Rand, accs []simtypes.Account, p types.Params) *types.MsgSubmitSession {
	acc, _ := simtypes.RandomAcc(r, accs)
	in := RandomSession(r, p)
	return &types.MsgSubmitSession{
		Player:           acc.Address.String(),
		Score:            in.Score,
		Level:            in.Level,
		GameTime:         in.GameTime,
		EnemiesDestroyed: in.EnemiesDestroyed,
		RocketsUsed:      in.RocketsUsed,
	}
}

// RandomOperation picks a mutating call weighted towards session submissions.
// Amounts are drawn up to 100 tokens so some debits fail on balance.
func RandomOperation(r *rand.Rand, accs []simtypes.Account, p types.Params) Operation {
	from, _ := simtypes.RandomAcc(r, accs)
	to, _ := simtypes.RandomAcc(r, accs)
	amount := randomAmount(r)

	switch n := r.Intn(10); {
	case n < 6:
		msg := RandomMsgSubmitSession(r, accs, p)
		return func(ctx context.Context, ms types.MsgServer) error {
			_, err := ms.SubmitSession(ctx, msg)
			return err
		}
	case n < 8:
		msg := &types.MsgPurchaseRevive{Player: from.Address.String()}
		return func(ctx context.Context, ms types.MsgServer) error {
			_, err := ms.PurchaseRevive(ctx, msg)
			return err
		}
	case n < 9:
		msg := &types.MsgTransfer{Sender: from.Address.String(), Recipient: to.Address.String(), Amount: amount}
		return func(ctx context.Context, ms types.MsgServer) error {
			_, err := ms.Transfer(ctx, msg)
			return err
		}
	default:
		msg := &types.MsgBurn{Sender: from.Address.String(), Amount: amount}
		return func(ctx context.Context, ms types.MsgServer) error {
			_, err := ms.Burn(ctx, msg)
			return err
		}
	}
}

func randomAmount(r *rand.Rand) math.Int {
	return math.NewInt(r.Int63n(100) + 1).Mul(types.OneToken)
}
