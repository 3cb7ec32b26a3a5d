package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rocketcandle/x/rocketfuel/types"
)

var _ types.QueryServer = queryServer{}

// NewQueryServerImpl returns an implementation of the QueryServer interface
// for the provided Keeper.
func NewQueryServerImpl(k Keeper) types.QueryServer {
	return queryServer{k: k}
}

type queryServer struct {
	k Keeper
}

func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	params, err := q.k.GetParams(ctx)
	if err != nil {
		return nil, ToStatus(err)
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

// PreviewReward computes the reward a session would earn without submitting it.
func (q queryServer) PreviewReward(ctx context.Context, req *types.QueryPreviewRewardRequest) (*types.QueryPreviewRewardResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryPreviewRewardResponse{Amount: types.CalculateReward(req.Score, req.Level)}, nil
}

func (q queryServer) CurrentWeek(ctx context.Context, req *types.QueryCurrentWeekRequest) (*types.QueryCurrentWeekResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	params, err := q.k.GetParams(ctx)
	if err != nil {
		return nil, ToStatus(err)
	}
	week, err := q.k.CurrentWeek(ctx)
	if err != nil {
		return nil, ToStatus(err)
	}
	start := params.GenesisTime + int64(week)*params.WeekDuration
	return &types.QueryCurrentWeekResponse{
		WeekID:    week,
		StartTime: start,
		EndTime:   start + params.WeekDuration,
	}, nil
}

func (q queryServer) TopScores(ctx context.Context, req *types.QueryTopScoresRequest) (*types.QueryTopScoresResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	entries, err := q.k.TopScores(ctx, req.WeekID, req.Limit)
	if err != nil {
		return nil, ToStatus(err)
	}
	return &types.QueryTopScoresResponse{WeekID: req.WeekID, Entries: entries}, nil
}

func (q queryServer) PlayerHistory(ctx context.Context, req *types.QueryPlayerHistoryRequest) (*types.QueryPlayerHistoryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	addr, err := q.k.parseAddress(req.Player, "player")
	if err != nil {
		return nil, ToStatus(err)
	}
	sessions, total, err := q.k.GetPlayerHistory(ctx, addr, req.Offset, req.Limit)
	if err != nil {
		return nil, ToStatus(err)
	}
	return &types.QueryPlayerHistoryResponse{Sessions: sessions, Total: total}, nil
}

func (q queryServer) PlayerStats(ctx context.Context, req *types.QueryPlayerStatsRequest) (*types.QueryPlayerStatsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	addr, err := q.k.parseAddress(req.Player, "player")
	if err != nil {
		return nil, ToStatus(err)
	}
	stats, err := q.k.GetPlayerStats(ctx, addr)
	if err != nil {
		return nil, ToStatus(err)
	}
	return &types.QueryPlayerStatsResponse{Player: req.Player, Stats: stats}, nil
}

func (q queryServer) Balance(ctx context.Context, req *types.QueryBalanceRequest) (*types.QueryBalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	addr, err := q.k.parseAddress(req.Address, "account")
	if err != nil {
		return nil, ToStatus(err)
	}
	bal, err := q.k.BalanceOf(ctx, addr)
	if err != nil {
		return nil, ToStatus(err)
	}
	return &types.QueryBalanceResponse{Balance: types.Balance{Address: req.Address, Amount: bal}}, nil
}

// Supply reports token metadata together with the issued and reserved amounts.
func (q queryServer) Supply(ctx context.Context, req *types.QuerySupplyRequest) (*types.QuerySupplyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	total, err := q.k.GetTotalMinted(ctx)
	if err != nil {
		return nil, ToStatus(err)
	}
	reserve := q.k.ReserveAddress()
	reserveBal, err := q.k.BalanceOf(ctx, reserve)
	if err != nil {
		return nil, ToStatus(err)
	}
	return &types.QuerySupplyResponse{
		Name:           types.TokenName,
		Symbol:         types.TokenSymbol,
		Decimals:       types.TokenDecimals,
		TotalMinted:    total,
		MaxTotalSupply: types.MaxTotalSupply,
		Reserve:        types.Balance{Address: q.k.formatAddress(reserve), Amount: reserveBal},
	}, nil
}

func (q queryServer) OperationalState(ctx context.Context, req *types.QueryOperationalStateRequest) (*types.QueryOperationalStateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	state, err := q.k.GetOperationalState(ctx)
	if err != nil {
		return nil, ToStatus(err)
	}
	version, err := q.k.GetStateVersion(ctx)
	if err != nil {
		return nil, ToStatus(err)
	}
	return &types.QueryOperationalStateResponse{State: state, StateVersion: version}, nil
}
