package types

import (
	"cosmossdk.io/math"
)

// PlayerStats aggregates every accepted session of one player.
type PlayerStats struct {
	TotalGames        uint64   `json:"total_games"`
	BestScore         uint64   `json:"best_score"`
	TotalTokensEarned math.Int `json:"total_tokens_earned"`
}

// NewPlayerStats returns the stats of a player with no accepted session.
func NewPlayerStats() PlayerStats {
	return PlayerStats{TotalTokensEarned: math.ZeroInt()}
}

// Record folds an accepted session into the aggregates.
func (s PlayerStats) Record(rec SessionRecord) PlayerStats {
	if s.TotalTokensEarned.IsNil() {
		s.TotalTokensEarned = math.ZeroInt()
	}
	s.TotalGames++
	if rec.Score > s.BestScore {
		s.BestScore = rec.Score
	}
	s.TotalTokensEarned = s.TotalTokensEarned.Add(rec.Reward)
	return s
}

// SessionRecord is one accepted game result. Records are append-only.
type SessionRecord struct {
	ID               uint64   `json:"id"`
	Player           string   `json:"player"`
	Score            uint64   `json:"score"`
	Level            uint64   `json:"level"`
	GameTime         uint64   `json:"game_time"`
	EnemiesDestroyed uint64   `json:"enemies_destroyed"`
	RocketsUsed      uint64   `json:"rockets_used"`
	Timestamp        int64    `json:"timestamp"`
	WeekID           uint64   `json:"week_id"`
	Reward           math.Int `json:"reward"`
}

// Input returns the tuple the record was created from.
func (r SessionRecord) Input() SessionInput {
	return SessionInput{
		Score:            r.Score,
		Level:            r.Level,
		GameTime:         r.GameTime,
		EnemiesDestroyed: r.EnemiesDestroyed,
		RocketsUsed:      r.RocketsUsed,
	}
}

// Balance is a single account balance, used by genesis and queries.
type Balance struct {
	Address string   `json:"address"`
	Amount  math.Int `json:"amount"`
}
