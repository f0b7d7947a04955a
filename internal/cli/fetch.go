package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pumpkit/localnet/internal/solana"
)

func newFetchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Provision fixture files without launching the validator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, opts)
		},
	}
}

func runFetch(cmd *cobra.Command, opts *options) error {
	if err := solana.EnsureInstalled(); err != nil {
		return err
	}

	ws, err := loadWorkspaceFromWD(opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	prov := newProvisioner(ws, out)
	results, err := prov.Provision(ws.Config.Fixtures())
	if err != nil {
		return err
	}

	fetched := 0
	for _, res := range results {
		if res.Fetched {
			fetched++
		}
	}
	fmt.Fprintf(out, "%d fixtures ready (%d fetched, %d cached)\n",
		len(results), fetched, len(results)-fetched)
	return nil
}
