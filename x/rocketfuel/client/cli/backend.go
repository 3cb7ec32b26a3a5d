package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"rocketcandle/x/rocketfuel/types"
)

// Backend executes module calls against a node.
type Backend interface {
	// Deliver runs fn in a new block and commits it when fn succeeds.
	Deliver(ctx context.Context, fn func(context.Context, types.MsgServer) error) error
	// Query runs fn against the latest committed state.
	Query(ctx context.Context, fn func(context.Context, types.QueryServer) error) error
	Close() error
}

// BackendFunc opens the backend a command runs against.
type BackendFunc func(cmd *cobra.Command) (Backend, error)

func withBackend(cmd *cobra.Command, open BackendFunc, run func(Backend) error) (err error) {
	b, err := open(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := b.Close(); err == nil {
			err = cerr
		}
	}()
	return run(b)
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
