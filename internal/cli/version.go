package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pumpkit/localnet/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the localnet version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "localnet %s (%s/%s)\n",
				version.String(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
