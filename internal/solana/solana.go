package solana

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Binaries this tool shells out to. Both ship with the Solana tool suite.
const (
	Binary          = "solana"
	ValidatorBinary = "solana-test-validator"
)

// MissingDependencyError reports a required external binary absent from PATH.
type MissingDependencyError struct {
	Binary string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("%s not found on PATH; install the Solana tool suite first", e.Binary)
}

// EnsureInstalled verifies both required binaries before any other work.
func EnsureInstalled() error {
	for _, bin := range []string{Binary, ValidatorBinary} {
		if _, err := exec.LookPath(bin); err != nil {
			return &MissingDependencyError{Binary: bin}
		}
	}
	return nil
}

// CLI wraps the solana command-line tool for fetching mainnet state.
type CLI struct {
	// URL is the RPC endpoint fetches read from.
	URL string

	run func(args ...string) (string, error)
}

func NewCLI(url string) *CLI {
	return &CLI{URL: url, run: run}
}

// DumpProgram writes a deployed program's executable to dest.
func (c *CLI) DumpProgram(address, dest string) error {
	_, err := c.run("program", "dump", address, dest, "--url", c.URL)
	return err
}

// SnapshotAccount writes an account's state to dest as JSON, the format
// the test validator accepts for --account.
func (c *CLI) SnapshotAccount(address, dest string) error {
	_, err := c.run("account", address, "--output", "json", "--output-file", dest, "--url", c.URL)
	return err
}

// Version reports the installed solana CLI version string.
func (c *CLI) Version() (string, error) {
	return c.run("--version")
}

// run executes solana and returns trimmed stdout.
func run(args ...string) (string, error) {
	cmd := exec.Command(Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("solana %s: %v\n%s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}
