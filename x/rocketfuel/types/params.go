package types

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
)

// MaxLeaderboardSize is the hard cap on entries kept per weekly bucket.
const MaxLeaderboardSize = 100

// Default parameter values.
const (
	DefaultMinGameTime       uint64 = 5
	DefaultMaxScorePerSecond uint64 = 1000
	DefaultMaxScore          uint64 = 1_000_000_000_000
	DefaultMaxLevel          uint64 = 1000
	DefaultLeaderboardSize   uint32 = 10
	// 2025-01-01T00:00:00Z
	DefaultGenesisTime  int64 = 1735689600
	DefaultWeekDuration int64 = int64(7 * 24 * time.Hour / time.Second)
)

// DefaultRevivePrice is the cost of one revive, 50 tokens.
var DefaultRevivePrice = Tokens(50)

// Params holds configurable parameters for the rocketfuel module.
type Params struct {
	MinGameTime       uint64   `json:"min_game_time"`        // seconds
	MaxScorePerSecond uint64   `json:"max_score_per_second"` // plausibility ceiling
	MaxScore          uint64   `json:"max_score"`
	MaxLevel          uint64   `json:"max_level"`
	RevivePrice       math.Int `json:"revive_price"`
	LeaderboardSize   uint32   `json:"leaderboard_size"`
	GenesisTime       int64    `json:"genesis_time"`  // unix seconds, start of week 0
	WeekDuration      int64    `json:"week_duration"` // seconds
}

// DefaultParams returns default module parameters.
func DefaultParams() Params {
	return Params{
		MinGameTime:       DefaultMinGameTime,
		MaxScorePerSecond: DefaultMaxScorePerSecond,
		MaxScore:          DefaultMaxScore,
		MaxLevel:          DefaultMaxLevel,
		RevivePrice:       DefaultRevivePrice,
		LeaderboardSize:   DefaultLeaderboardSize,
		GenesisTime:       DefaultGenesisTime,
		WeekDuration:      DefaultWeekDuration,
	}
}

// Validate performs basic validation of module parameters.
func (p Params) Validate() error {
	if err := validatePositive("min_game_time", p.MinGameTime); err != nil {
		return err
	}
	if err := validatePositive("max_score_per_second", p.MaxScorePerSecond); err != nil {
		return err
	}
	if err := validatePositive("max_score", p.MaxScore); err != nil {
		return err
	}
	if err := validatePositive("max_level", p.MaxLevel); err != nil {
		return err
	}
	if p.RevivePrice.IsNil() || !p.RevivePrice.IsPositive() {
		return fmt.Errorf("revive_price must be positive")
	}
	if p.LeaderboardSize == 0 || p.LeaderboardSize > MaxLeaderboardSize {
		return fmt.Errorf("leaderboard_size must be between 1 and %d", MaxLeaderboardSize)
	}
	if p.GenesisTime < 0 {
		return fmt.Errorf("genesis_time cannot be negative")
	}
	if p.WeekDuration <= 0 {
		return fmt.Errorf("week_duration must be positive")
	}
	return nil
}

// ValidateUpdate checks that next may replace p. The week partitioning is
// fixed once sessions exist, so GenesisTime and WeekDuration cannot change.
func (p Params) ValidateUpdate(next Params) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if next.GenesisTime != p.GenesisTime || next.WeekDuration != p.WeekDuration {
		return fmt.Errorf("genesis_time and week_duration are immutable")
	}
	return nil
}

// WeekOf returns the week id containing the unix timestamp ts. Timestamps
// before GenesisTime belong to week 0.
func (p Params) WeekOf(ts int64) uint64 {
	if ts <= p.GenesisTime {
		return 0
	}
	return uint64((ts - p.GenesisTime) / p.WeekDuration)
}

func validatePositive(name string, v uint64) error {
	if v == 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}
