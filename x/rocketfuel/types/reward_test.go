package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"rocketcandle/x/rocketfuel/types"
)

func TestCalculateReward(t *testing.T) {
	testCases := []struct {
		name  string
		score uint64
		level uint64
		exp   math.Int
	}{
		{
			name:  "whole thousands plus odd level",
			score: 10_000,
			level: 5,
			// 10 + 7.5 tokens
			exp: types.OneToken.MulRaw(35).QuoRaw(2),
		},
		{
			name:  "score below one thousand only earns the level bonus",
			score: 999,
			level: 1,
			exp:   types.OneToken.MulRaw(3).QuoRaw(2),
		},
		{
			name:  "partial thousands are floored",
			score: 1_999,
			level: 2,
			exp:   types.Tokens(4),
		},
		{
			name:  "zero session",
			score: 0,
			level: 0,
			exp:   math.ZeroInt(),
		},
		{
			name:  "upper bounds stay exact",
			score: types.DefaultMaxScore,
			level: types.DefaultMaxLevel,
			exp:   types.Tokens(1_000_000_000).Add(types.Tokens(1_500)),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := types.CalculateReward(tc.score, tc.level)
			require.True(t, tc.exp.Equal(got), "expected %s, got %s", tc.exp, got)
		})
	}
}

func TestCalculateRewardExactValue(t *testing.T) {
	expected, ok := math.NewIntFromString("17500000000000000000")
	require.True(t, ok)
	require.Equal(t, expected.String(), types.CalculateReward(10_000, 5).String())
}
