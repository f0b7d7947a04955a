package launcher

import (
	"fmt"

	"github.com/pumpkit/localnet/internal/fixture"
	"github.com/pumpkit/localnet/internal/solana"
)

// LaunchError reports a validator process that could not be started.
type LaunchError struct {
	Binary string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %s: %v", e.Binary, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// binding ties one provisioned file to its on-chain identity on the
// validator command line.
type binding struct {
	flag     string
	identity string
	path     string
}

// Plan is the full validator argv, assembled once per run and consumed
// immediately by Exec.
type Plan struct {
	bindings    []binding
	passthrough []string
}

// BuildPlan binds every provisioned artifact in declaration order:
// programs as --bpf-program pairs, accounts as --account pairs. Programs
// are emitted before accounts regardless of interleaving in the table.
// Passthrough tokens go last, verbatim, so they win any
// last-occurrence-takes-precedence flag the validator supports.
func BuildPlan(results []fixture.Result, passthrough []string) Plan {
	var plan Plan
	for _, res := range results {
		if res.Artifact.Method == fixture.ProgramDump {
			plan.bindings = append(plan.bindings, binding{"--bpf-program", res.Artifact.Address, res.Path})
		}
	}
	for _, res := range results {
		if res.Artifact.Method == fixture.AccountSnapshot {
			plan.bindings = append(plan.bindings, binding{"--account", res.Artifact.Address, res.Path})
		}
	}
	plan.passthrough = passthrough
	return plan
}

// Argv flattens the plan into the token list handed to the validator,
// starting with the binary name itself.
func (p Plan) Argv() []string {
	argv := []string{solana.ValidatorBinary}
	for _, b := range p.bindings {
		argv = append(argv, b.flag, b.identity, b.path)
	}
	argv = append(argv, p.passthrough...)
	return argv
}
