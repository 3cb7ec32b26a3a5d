package types

import (
	"context"

	"cosmossdk.io/math"
)

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryPreviewRewardRequest struct {
	Score uint64 `json:"score"`
	Level uint64 `json:"level"`
}

type QueryPreviewRewardResponse struct {
	Amount math.Int `json:"amount"`
}

type QueryCurrentWeekRequest struct{}

type QueryCurrentWeekResponse struct {
	WeekID    uint64 `json:"week_id"`
	StartTime int64  `json:"start_time"`
	EndTime   int64  `json:"end_time"`
}

type QueryTopScoresRequest struct {
	WeekID uint64 `json:"week_id"`
	Limit  uint32 `json:"limit"`
}

type QueryTopScoresResponse struct {
	WeekID  uint64             `json:"week_id"`
	Entries []LeaderboardEntry `json:"entries"`
}

type QueryPlayerHistoryRequest struct {
	Player string `json:"player"`
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
}

type QueryPlayerHistoryResponse struct {
	Sessions []SessionRecord `json:"sessions"`
	Total    uint64          `json:"total"`
}

type QueryPlayerStatsRequest struct {
	Player string `json:"player"`
}

type QueryPlayerStatsResponse struct {
	Player string      `json:"player"`
	Stats  PlayerStats `json:"stats"`
}

type QueryBalanceRequest struct {
	Address string `json:"address"`
}

type QueryBalanceResponse struct {
	Balance Balance `json:"balance"`
}

type QuerySupplyRequest struct{}

type QuerySupplyResponse struct {
	Name           string   `json:"name"`
	Symbol         string   `json:"symbol"`
	Decimals       uint32   `json:"decimals"`
	TotalMinted    math.Int `json:"total_minted"`
	MaxTotalSupply math.Int `json:"max_total_supply"`
	Reserve        Balance  `json:"reserve"`
}

type QueryOperationalStateRequest struct{}

type QueryOperationalStateResponse struct {
	State        OperationalState `json:"state"`
	StateVersion uint64           `json:"state_version"`
}

// QueryServer is the read surface of the module. Queries never mutate state.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	PreviewReward(context.Context, *QueryPreviewRewardRequest) (*QueryPreviewRewardResponse, error)
	CurrentWeek(context.Context, *QueryCurrentWeekRequest) (*QueryCurrentWeekResponse, error)
	TopScores(context.Context, *QueryTopScoresRequest) (*QueryTopScoresResponse, error)
	PlayerHistory(context.Context, *QueryPlayerHistoryRequest) (*QueryPlayerHistoryResponse, error)
	PlayerStats(context.Context, *QueryPlayerStatsRequest) (*QueryPlayerStatsResponse, error)
	Balance(context.Context, *QueryBalanceRequest) (*QueryBalanceResponse, error)
	Supply(context.Context, *QuerySupplyRequest) (*QuerySupplyResponse, error)
	OperationalState(context.Context, *QueryOperationalStateRequest) (*QueryOperationalStateResponse, error)
}
