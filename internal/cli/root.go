package cli

import (
	"github.com/spf13/cobra"

	"github.com/pumpkit/localnet/internal/version"
)

func Execute() error {
	return newRootCommand().Execute()
}

// options carries directory and endpoint overrides shared by every
// subcommand. Flag values beat environment and config-file values.
type options struct {
	programsDir string
	accountsDir string
	rpcURL      string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	var dryRun bool
	cmd := &cobra.Command{
		Use:           "localnet [flags] [-- <validator args>]",
		Short:         "Spin up a solana-test-validator preloaded with pump.fun mainnet state",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUp(cmd, opts, args, dryRun)
		},
	}

	// Tokens after the first non-flag argument (or after --) are forwarded
	// to the validator untouched.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the validator command line instead of launching")

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.programsDir, "programs-dir", "", "override the program fixture directory")
	pf.StringVar(&opts.accountsDir, "accounts-dir", "", "override the account fixture directory")
	pf.StringVar(&opts.rpcURL, "url", "", "RPC endpoint fixtures are fetched from")

	cmd.AddCommand(
		newInitCommand(),
		newFetchCommand(opts),
		newStatusCommand(opts),
		newDoctorCommand(opts),
		newVersionCommand(),
	)

	return cmd
}
