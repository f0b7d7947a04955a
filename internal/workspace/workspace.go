package workspace

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pumpkit/localnet/internal/config"
)

// ErrWrongDirectory indicates the marker file is absent from the current
// directory. No upward walk: fixture directories are relative to the
// project root, so running elsewhere would scatter them.
var ErrWrongDirectory = errors.New("no localnet.toml in this directory; cd to your project root or run `localnet init`")

// Workspace is a localnet-enabled project directory.
type Workspace struct {
	Root       string
	ConfigPath string
	Config     config.Config
}

// FromWD loads the workspace rooted at the current working directory,
// overlaying environment overrides onto the file config.
func FromWD() (*Workspace, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return Load(wd)
}

// Load constructs a Workspace from a known root directory.
func Load(root string) (*Workspace, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	cfgPath := filepath.Join(root, config.MarkerFile)
	if !isFile(cfgPath) {
		return nil, ErrWrongDirectory
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnvironment(nil)

	return &Workspace{
		Root:       root,
		ConfigPath: cfgPath,
		Config:     cfg,
	}, nil
}

// ProgramsDir resolves the program fixture directory against the root.
func (w *Workspace) ProgramsDir() string {
	return resolve(w.Root, w.Config.ProgramsDir)
}

// AccountsDir resolves the account fixture directory against the root.
func (w *Workspace) AccountsDir() string {
	return resolve(w.Root, w.Config.AccountsDir)
}

func resolve(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}
