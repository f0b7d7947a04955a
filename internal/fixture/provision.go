package fixture

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Fetcher materializes an absent artifact at dest. The solana package
// provides the real implementation; tests substitute fakes.
type Fetcher interface {
	DumpProgram(address, dest string) error
	SnapshotAccount(address, dest string) error
}

// Result records a provisioned artifact: where it lives and whether this
// run had to fetch it.
type Result struct {
	Artifact Artifact
	Path     string
	Fetched  bool
}

// DirectoryError reports a target directory that could not be created or
// is not writable.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("fixture directory %s: %v (check permissions)", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// FetchError reports a failed external fetch. The partial file, if any, is
// left at Dest for inspection; zero-length partials are re-fetched on the
// next run, truncated-but-nonempty ones must be removed by hand.
type FetchError struct {
	Artifact Artifact
	Dest     string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (%s) to %s: %v", e.Artifact.Name, e.Artifact.Address, e.Dest, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Provisioner ensures every artifact in a table exists on disk, fetching
// the missing ones. Strictly sequential; the first failure aborts the run.
type Provisioner struct {
	ProgramsDir string
	AccountsDir string
	Fetcher     Fetcher

	// Log receives progress narration. Nil discards it.
	Log io.Writer
}

// Provision processes artifacts in declaration order. All target
// directories are created and verified writable before any fetch runs.
func (p *Provisioner) Provision(table []Artifact) ([]Result, error) {
	if err := p.ensureDirs(table); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(table))
	for _, art := range table {
		res, err := p.provisionOne(art)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (p *Provisioner) ensureDirs(table []Artifact) error {
	seen := make(map[string]bool)
	for _, art := range table {
		dir := filepath.Dir(art.Path(p.ProgramsDir, p.AccountsDir))
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if err := ensureWritableDir(dir); err != nil {
			return err
		}
	}
	return nil
}

func (p *Provisioner) provisionOne(art Artifact) (Result, error) {
	dest := art.Path(p.ProgramsDir, p.AccountsDir)

	if present(dest) {
		p.logf("Using cached %s (%s)\n", art.File, art.Name)
		return Result{Artifact: art, Path: dest, Fetched: false}, nil
	}

	var err error
	switch art.Method {
	case AccountSnapshot:
		p.logf("Snapshotting account %s (%s) -> %s\n", art.Name, art.Address, dest)
		err = p.Fetcher.SnapshotAccount(art.Address, dest)
	default:
		p.logf("Dumping program %s (%s) -> %s\n", art.Name, art.Address, dest)
		err = p.Fetcher.DumpProgram(art.Address, dest)
	}
	if err != nil {
		return Result{}, &FetchError{Artifact: art, Dest: dest, Err: err}
	}

	return Result{Artifact: art, Path: dest, Fetched: true}, nil
}

func (p *Provisioner) logf(format string, args ...any) {
	if p.Log != nil {
		fmt.Fprintf(p.Log, format, args...)
	}
}

// present reports whether dest already satisfies its artifact. Zero-length
// files do not: they are the residue of an interrupted fetch.
func present(dest string) bool {
	fi, err := os.Stat(dest)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular() && fi.Size() > 0
}

func ensureWritableDir(dir string) error {
	fi, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return &DirectoryError{Path: dir, Err: mkErr}
		}
	case err != nil:
		return &DirectoryError{Path: dir, Err: err}
	case !fi.IsDir():
		return &DirectoryError{Path: dir, Err: errors.New("not a directory")}
	}

	return ProbeDir(dir)
}

// ProbeDir verifies dir accepts writes. Permission bits alone are not
// trustworthy across platforms, so it creates and removes a scratch file.
func ProbeDir(dir string) error {
	probe, err := os.CreateTemp(dir, ".localnet-probe-*")
	if err != nil {
		return &DirectoryError{Path: dir, Err: err}
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}
