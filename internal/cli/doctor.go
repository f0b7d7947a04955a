package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/pumpkit/localnet/internal/fixture"
	"github.com/pumpkit/localnet/internal/solana"
	"github.com/pumpkit/localnet/internal/workspace"
)

func newDoctorCommand(opts *options) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose localnet prerequisites and fixture cache health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, opts, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show passing checks too")
	return cmd
}

type doctorContext struct {
	Workspace *workspace.Workspace
}

type doctorCheck struct {
	Name string
	Fn   func(*doctorContext) error
}

func runDoctor(cmd *cobra.Command, opts *options, verbose bool) error {
	ctx := &doctorContext{}
	checks := []doctorCheck{
		{Name: "solana installed", Fn: requireOnPath(solana.Binary)},
		{Name: "solana-test-validator installed", Fn: requireOnPath(solana.ValidatorBinary)},
		{Name: "solana CLI responds", Fn: checkSolanaVersion},
		{Name: "workspace marker", Fn: func(c *doctorContext) error {
			ws, err := loadWorkspaceFromWD(opts)
			if err != nil {
				return err
			}
			c.Workspace = ws
			return nil
		}},
		{Name: "programs directory writable", Fn: checkDir((*workspace.Workspace).ProgramsDir)},
		{Name: "accounts directory writable", Fn: checkDir((*workspace.Workspace).AccountsDir)},
		{Name: "fixture cache complete", Fn: checkCache},
	}

	var failures []string
	for _, check := range checks {
		err := check.Fn(ctx)
		if err != nil {
			failures = append(failures, fmt.Sprintf("✗ %s: %v", check.Name, err))
			continue
		}
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", check.Name)
		}
	}

	if len(failures) > 0 {
		for _, failure := range failures {
			fmt.Fprintln(cmd.ErrOrStderr(), failure)
		}
		return fmt.Errorf("%d doctor checks failed", len(failures))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "healthy!")
	return nil
}

func requireOnPath(binary string) func(*doctorContext) error {
	return func(*doctorContext) error {
		if _, err := exec.LookPath(binary); err != nil {
			return fmt.Errorf("%s not found on PATH", binary)
		}
		return nil
	}
}

func checkSolanaVersion(*doctorContext) error {
	out, err := solana.NewCLI("").Version()
	if err != nil {
		return err
	}
	if out == "" {
		return errors.New("solana --version produced no output")
	}
	return nil
}

func checkDir(dir func(*workspace.Workspace) string) func(*doctorContext) error {
	return func(ctx *doctorContext) error {
		if ctx.Workspace == nil {
			return errors.New("workspace not loaded")
		}
		path := dir(ctx.Workspace)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			// Created on the first provisioning run.
			return nil
		}
		return fixture.ProbeDir(path)
	}
}

func checkCache(ctx *doctorContext) error {
	if ctx.Workspace == nil {
		return errors.New("workspace not loaded")
	}
	missing := 0
	for _, st := range collectFixtureStates(ctx.Workspace) {
		if !st.Present {
			missing++
		}
	}
	if missing > 0 {
		return fmt.Errorf("%d fixtures not cached yet; run `localnet fetch`", missing)
	}
	return nil
}
