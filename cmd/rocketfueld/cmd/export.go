package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as genesis JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			genesis, err := a.ExportGenesis()
			if err != nil {
				return err
			}
			bz, err := json.MarshalIndent(genesis, "", "  ")
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(bz, '\n'))
			return err
		},
	}
}
