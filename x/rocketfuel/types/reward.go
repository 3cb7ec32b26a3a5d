package types

import (
	"cosmossdk.io/math"
)

// PointsPerToken is the number of score points worth one whole token.
const PointsPerToken = 1000

// LevelBonus is the per-level bonus, 1.5 tokens.
var LevelBonus = OneToken.MulRaw(3).QuoRaw(2)

// CalculateReward maps a session result to the amount of RocketFUEL it earns:
//
//	floor(score / 1000) * OneToken + level * 1.5 * OneToken
//
// The score term is floored before scaling, the level bonus is exact. The
// result is computed on 256-bit integers; inputs accepted by ValidateSession
// (score <= MaxScore, level <= MaxLevel) stay many orders of magnitude below
// that bound.
func CalculateReward(score, level uint64) math.Int {
	base := math.NewIntFromUint64(score / PointsPerToken).Mul(OneToken)
	bonus := math.NewIntFromUint64(level).Mul(LevelBonus)
	return base.Add(bonus)
}
