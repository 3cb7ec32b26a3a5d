package cli

import (
	"context"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"rocketcandle/x/rocketfuel/types"
)

// GetQueryCmd returns the query commands for the rocketfuel module.
func GetQueryCmd(open BackendFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      "Querying commands for the rocketfuel module",
		SuggestionsMinimumDistance: 2,
	}

	cmd.AddCommand(
		cmdQueryParams(open),
		cmdPreviewReward(open),
		cmdCurrentWeek(open),
		cmdTopScores(open),
		cmdPlayerStats(open),
		cmdPlayerHistory(open),
		cmdBalance(open),
		cmdSupply(open),
		cmdState(open),
	)
	return cmd
}

func query[Res any](cmd *cobra.Command, open BackendFunc, call func(context.Context, types.QueryServer) (Res, error)) error {
	return withBackend(cmd, open, func(b Backend) error {
		var res Res
		err := b.Query(cmd.Context(), func(ctx context.Context, qs types.QueryServer) error {
			var err error
			res, err = call(ctx, qs)
			return err
		})
		if err != nil {
			return err
		}
		return printJSON(cmd, res)
	})
}

func cmdQueryParams(open BackendFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Shows the parameters of the module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return query(cmd, open, func(ctx context.Context, qs types.QueryServer) (*types.QueryParamsResponse, error) {
				return qs.Params(ctx, &types.QueryParamsRequest{})
			})
		},
	}
}

func cmdPreviewReward(open BackendFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "preview-reward [score] [level]",
		Short: "Compute the reward of a session without submitting it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := cast.ToUint64E(args[0])
			if err != nil {
				return err
			}
			level, err := cast.ToUint64E(args[1])
			if err != nil {
				return err
			}
			return query(cmd, open, func(ctx context.Context, qs types.QueryServer) (*types.QueryPreviewRewardResponse, error) {
				return qs.PreviewReward(ctx, &types.QueryPreviewRewardRequest{Score: score, Level: level})
			})
		},
	}
}

func cmdCurrentWeek(open BackendFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Shows the current leaderboard week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return query(cmd, open, func(ctx context.Context, qs types.QueryServer) (*types.QueryCurrentWeekResponse, error) {
				return qs.CurrentWeek(ctx, &types.QueryCurrentWeekRequest{})
			})
		},
	}
}

func cmdTopScores(open BackendFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard [week]",
		Short: "Shows the best sessions of a week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := cast.ToUint64E(args[0])
			if err != nil {
				return err
			}
			limit, err := cmd.Flags().GetUint32("limit")
			if err != nil {
				return err
			}
			return query(cmd, open, func(ctx context.Context, qs types.QueryServer) (*types.QueryTopScoresResponse, error) {
				return qs.TopScores(ctx, &types.QueryTopScoresRequest{WeekID: week, Limit: limit})
			})
		},
	}
	cmd.Flags().Uint32("limit", 0, "maximum entries; 0 returns the full leaderboard")
	return cmd
}

func cmdPlayerStats(open BackendFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [player]",
		Short: "Shows the aggregates of a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return query(cmd, open, func(ctx context.Context, qs types.QueryServer) (*types.QueryPlayerStatsResponse, error) {
				return qs.PlayerStats(ctx, &types.QueryPlayerStatsRequest{Player: args[0]})
			})
		},
	}
}

func cmdPlayerHistory(open BackendFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [player]",
		Short: "Lists the sessions of a player, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, _ := cmd.Flags().GetUint64("offset")
			limit, _ := cmd.Flags().GetUint64("limit")
			return query(cmd, open, func(ctx context.Context, qs types.QueryServer) (*types.QueryPlayerHistoryResponse, error) {
				return qs.PlayerHistory(ctx, &types.QueryPlayerHistoryRequest{Player: args[0], Offset: offset, Limit: limit})
			})
		},
	}
	cmd.Flags().Uint64("offset", 0, "sessions to skip")
	cmd.Flags().Uint64("limit", 0, "maximum sessions; 0 returns all")
	return cmd
}

func cmdBalance(open BackendFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [address]",
		Short: "Shows the RocketFUEL balance of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return query(cmd, open, func(ctx context.Context, qs types.QueryServer) (*types.QueryBalanceResponse, error) {
				return qs.Balance(ctx, &types.QueryBalanceRequest{Address: args[0]})
			})
		},
	}
}

func cmdSupply(open BackendFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "supply",
		Short: "Shows token metadata and supply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return query(cmd, open, func(ctx context.Context, qs types.QueryServer) (*types.QuerySupplyResponse, error) {
				return qs.Supply(ctx, &types.QuerySupplyRequest{})
			})
		},
	}
}

func cmdState(open BackendFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Shows the pause switch, admin and state version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return query(cmd, open, func(ctx context.Context, qs types.QueryServer) (*types.QueryOperationalStateResponse, error) {
				return qs.OperationalState(ctx, &types.QueryOperationalStateRequest{})
			})
		},
	}
}
