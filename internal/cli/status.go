package cli

import (
	"fmt"
	"os"
	"time"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pumpkit/localnet/internal/fixture"
	"github.com/pumpkit/localnet/internal/timefmt"
	"github.com/pumpkit/localnet/internal/workspace"
)

func newStatusCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which fixture files are cached and how stale they are",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, opts)
		},
	}
}

type fixtureState struct {
	Artifact fixture.Artifact
	Path     string
	Present  bool
	Size     int64
	ModTime  time.Time
}

func runStatus(cmd *cobra.Command, opts *options) error {
	ws, err := loadWorkspaceFromWD(opts)
	if err != nil {
		return err
	}

	states := collectFixtureStates(ws)
	now := time.Now()
	width := terminalWidth()

	missing := 0
	for _, st := range states {
		printFixtureState(cmd, st, now, width)
		if !st.Present {
			missing++
		}
	}
	if missing > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d missing; run `localnet fetch` to provision them\n", missing)
	}
	return nil
}

func collectFixtureStates(ws *workspace.Workspace) []fixtureState {
	table := ws.Config.Fixtures()
	states := make([]fixtureState, 0, len(table))
	for _, art := range table {
		st := fixtureState{
			Artifact: art,
			Path:     art.Path(ws.ProgramsDir(), ws.AccountsDir()),
		}
		if fi, err := os.Stat(st.Path); err == nil && fi.Mode().IsRegular() && fi.Size() > 0 {
			st.Present = true
			st.Size = fi.Size()
			st.ModTime = fi.ModTime()
		}
		states = append(states, st)
	}
	return states
}

// Fixed column widths; the address column absorbs whatever the terminal
// leaves over. gapWidth counts the separators in the Fprintf format below.
const (
	nameWidth    = 23
	kindWidth    = 7
	stateWidth   = 7 // "cached " / "missing"
	sizeWidth    = 8
	ageWidth     = 12
	gapWidth     = 6
	minAddrWidth = 12
)

func addressWidth(terminal int) int {
	w := terminal - nameWidth - kindWidth - stateWidth - sizeWidth - ageWidth - gapWidth
	if w < minAddrWidth {
		return minAddrWidth
	}
	return w
}

func printFixtureState(cmd *cobra.Command, st fixtureState, now time.Time, width int) {
	kind := "program"
	if st.Artifact.Method == fixture.AccountSnapshot {
		kind = "account"
	}

	state := colorMissing("missing")
	size := "-"
	age := "-"
	if st.Present {
		state = colorCached("cached ")
		size = humanSize(st.Size)
		age = timefmt.Age(st.ModTime, now)
	}

	fmt.Fprintf(
		cmd.OutOrStdout(),
		"%s %s %s %s %*s  %s\n",
		cell(st.Artifact.Name, nameWidth),
		cell(kind, kindWidth),
		cell(st.Artifact.Address, addressWidth(width)),
		state,
		sizeWidth, size,
		age,
	)
}

func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 100
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
