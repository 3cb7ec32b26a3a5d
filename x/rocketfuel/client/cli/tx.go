package cli

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"rocketcandle/x/rocketfuel/types"
)

const FlagFrom = "from"

// GetTxCmd returns the transaction commands for the rocketfuel module.
func GetTxCmd(open BackendFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "tx",
		Short:                      "RocketFUEL transaction subcommands",
		SuggestionsMinimumDistance: 2,
	}

	cmd.PersistentFlags().String(FlagFrom, "", "address of the signing account")

	cmd.AddCommand(
		cmdSubmitSession(open),
		cmdPurchaseRevive(open),
		cmdPause(open),
		cmdUnpause(open),
		cmdTransferAdmin(open),
		cmdUpdateParams(open),
		cmdTransfer(open),
		cmdBurn(open),
	)
	return cmd
}

func from(cmd *cobra.Command) (string, error) {
	addr, err := cmd.Flags().GetString(FlagFrom)
	if err != nil {
		return "", err
	}
	if addr == "" {
		return "", fmt.Errorf("--%s is required", FlagFrom)
	}
	return addr, nil
}

func deliver[Res any](cmd *cobra.Command, open BackendFunc, call func(context.Context, types.MsgServer) (Res, error)) error {
	return withBackend(cmd, open, func(b Backend) error {
		var res Res
		err := b.Deliver(cmd.Context(), func(ctx context.Context, ms types.MsgServer) error {
			var err error
			res, err = call(ctx, ms)
			return err
		})
		if err != nil {
			return err
		}
		return printJSON(cmd, res)
	})
}

func cmdSubmitSession(open BackendFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "submit-session [score] [level] [game-time] [enemies-destroyed] [rockets-used]",
		Short: "Submit a finished game session and collect its reward",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := from(cmd)
			if err != nil {
				return err
			}
			nums := make([]uint64, len(args))
			for i, a := range args {
				if nums[i], err = cast.ToUint64E(a); err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
			}
			msg := &types.MsgSubmitSession{
				Player:           player,
				Score:            nums[0],
				Level:            nums[1],
				GameTime:         nums[2],
				EnemiesDestroyed: nums[3],
				RocketsUsed:      nums[4],
			}
			return deliver(cmd, open, func(ctx context.Context, ms types.MsgServer) (*types.MsgSubmitSessionResponse, error) {
				return ms.SubmitSession(ctx, msg)
			})
		},
	}
}

func cmdPurchaseRevive(open BackendFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "purchase-revive",
		Short: "Spend RocketFUEL on a revive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			player, err := from(cmd)
			if err != nil {
				return err
			}
			return deliver(cmd, open, func(ctx context.Context, ms types.MsgServer) (*types.MsgPurchaseReviveResponse, error) {
				return ms.PurchaseRevive(ctx, &types.MsgPurchaseRevive{Player: player})
			})
		},
	}
}

func cmdPause(open BackendFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Stop all mutating operations (admin only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := from(cmd)
			if err != nil {
				return err
			}
			return deliver(cmd, open, func(ctx context.Context, ms types.MsgServer) (*types.MsgPauseResponse, error) {
				return ms.Pause(ctx, &types.MsgPause{Admin: admin})
			})
		},
	}
}

func cmdUnpause(open BackendFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "unpause",
		Short: "Resume mutating operations (admin only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := from(cmd)
			if err != nil {
				return err
			}
			return deliver(cmd, open, func(ctx context.Context, ms types.MsgServer) (*types.MsgUnpauseResponse, error) {
				return ms.Unpause(ctx, &types.MsgUnpause{Admin: admin})
			})
		},
	}
}

func cmdTransferAdmin(open BackendFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer-admin [new-admin]",
		Short: "Hand the admin role to another account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := from(cmd)
			if err != nil {
				return err
			}
			return deliver(cmd, open, func(ctx context.Context, ms types.MsgServer) (*types.MsgTransferAdminResponse, error) {
				return ms.TransferAdmin(ctx, &types.MsgTransferAdmin{Admin: admin, NewAdmin: args[0]})
			})
		},
	}
}

func cmdUpdateParams(open BackendFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-params",
		Short: "Change module parameters (admin only); unset flags keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := from(cmd)
			if err != nil {
				return err
			}
			return withBackend(cmd, open, func(b Backend) error {
				var params types.Params
				err := b.Query(cmd.Context(), func(ctx context.Context, qs types.QueryServer) error {
					res, err := qs.Params(ctx, &types.QueryParamsRequest{})
					if err != nil {
						return err
					}
					params = res.Params
					return nil
				})
				if err != nil {
					return err
				}
				if err := applyParamFlags(cmd, &params); err != nil {
					return err
				}
				err = b.Deliver(cmd.Context(), func(ctx context.Context, ms types.MsgServer) error {
					_, err := ms.UpdateParams(ctx, &types.MsgUpdateParams{Admin: admin, Params: params})
					return err
				})
				if err != nil {
					return err
				}
				return printJSON(cmd, params)
			})
		},
	}

	f := cmd.Flags()
	f.Uint64("min-game-time", 0, "minimum game time in seconds")
	f.Uint64("max-score-per-second", 0, "maximum plausible points per second")
	f.Uint64("max-score", 0, "maximum score of one session")
	f.Uint64("max-level", 0, "maximum level of one session")
	f.String("revive-price", "", "revive price in the smallest unit")
	f.Uint32("leaderboard-size", 0, "entries kept per weekly leaderboard")
	return cmd
}

func applyParamFlags(cmd *cobra.Command, p *types.Params) error {
	f := cmd.Flags()
	for name, dst := range map[string]*uint64{
		"min-game-time":        &p.MinGameTime,
		"max-score-per-second": &p.MaxScorePerSecond,
		"max-score":            &p.MaxScore,
		"max-level":            &p.MaxLevel,
	} {
		if !f.Changed(name) {
			continue
		}
		v, err := f.GetUint64(name)
		if err != nil {
			return err
		}
		*dst = v
	}
	if f.Changed("leaderboard-size") {
		v, err := f.GetUint32("leaderboard-size")
		if err != nil {
			return err
		}
		p.LeaderboardSize = v
	}
	if f.Changed("revive-price") {
		s, _ := f.GetString("revive-price")
		amt, ok := math.NewIntFromString(s)
		if !ok {
			return fmt.Errorf("invalid revive price %q", s)
		}
		p.RevivePrice = amt
	}
	return nil
}

func cmdTransfer(open BackendFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer [recipient] [amount]",
		Short: "Send RocketFUEL; amount is in the smallest unit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sender, err := from(cmd)
			if err != nil {
				return err
			}
			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount %q", args[1])
			}
			return deliver(cmd, open, func(ctx context.Context, ms types.MsgServer) (*types.MsgTransferResponse, error) {
				return ms.Transfer(ctx, &types.MsgTransfer{Sender: sender, Recipient: args[0], Amount: amount})
			})
		},
	}
}

func cmdBurn(open BackendFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "burn [amount]",
		Short: "Destroy RocketFUEL; amount is in the smallest unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sender, err := from(cmd)
			if err != nil {
				return err
			}
			amount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			return deliver(cmd, open, func(ctx context.Context, ms types.MsgServer) (*types.MsgBurnResponse, error) {
				return ms.Burn(ctx, &types.MsgBurn{Sender: sender, Amount: amount})
			})
		},
	}
}
