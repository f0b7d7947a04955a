package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pumpkit/localnet/internal/fixture"
	"github.com/pumpkit/localnet/internal/launcher"
	"github.com/pumpkit/localnet/internal/solana"
)

var (
	colorLaunching = color.New(color.FgGreen, color.Bold).SprintFunc()
	colorCached    = color.New(color.FgGreen).SprintFunc()
	colorMissing   = color.New(color.FgYellow).SprintFunc()
)

func runUp(cmd *cobra.Command, opts *options, args []string, dryRun bool) error {
	if err := solana.EnsureInstalled(); err != nil {
		return err
	}

	ws, err := loadWorkspaceFromWD(opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	prov := newProvisioner(ws, out)
	return provisionAndLaunch(out, prov, ws.Config.Fixtures(), args, dryRun, launcher.Exec)
}

// provisionAndLaunch is the whole run: provision every artifact, build the
// plan, hand the process over. A provisioning failure means the validator
// is never invoked.
func provisionAndLaunch(out io.Writer, prov *fixture.Provisioner, table []fixture.Artifact, passthrough []string, dryRun bool, launch func(launcher.Plan) error) error {
	results, err := prov.Provision(table)
	if err != nil {
		return err
	}

	plan := launcher.BuildPlan(results, passthrough)
	if dryRun {
		fmt.Fprintln(out, strings.Join(plan.Argv(), " "))
		return nil
	}

	programs, accounts := countByMethod(results)
	fmt.Fprintf(out, "%s %s with %d programs and %d accounts\n",
		colorLaunching("Launching"), solana.ValidatorBinary, programs, accounts)
	return launch(plan)
}

func countByMethod(results []fixture.Result) (programs, accounts int) {
	for _, res := range results {
		if res.Artifact.Method == fixture.ProgramDump {
			programs++
		} else {
			accounts++
		}
	}
	return programs, accounts
}
