package cli

import (
	"io"

	"github.com/pumpkit/localnet/internal/fixture"
	"github.com/pumpkit/localnet/internal/solana"
	"github.com/pumpkit/localnet/internal/workspace"
)

func loadWorkspaceFromWD(opts *options) (*workspace.Workspace, error) {
	ws, err := workspace.FromWD()
	if err != nil {
		return nil, err
	}
	if opts.programsDir != "" {
		ws.Config.ProgramsDir = opts.programsDir
	}
	if opts.accountsDir != "" {
		ws.Config.AccountsDir = opts.accountsDir
	}
	if opts.rpcURL != "" {
		ws.Config.RPCURL = opts.rpcURL
	}
	return ws, nil
}

func newProvisioner(ws *workspace.Workspace, log io.Writer) *fixture.Provisioner {
	return &fixture.Provisioner{
		ProgramsDir: ws.ProgramsDir(),
		AccountsDir: ws.AccountsDir(),
		Fetcher:     solana.NewCLI(ws.Config.RPCURL),
		Log:         log,
	}
}
