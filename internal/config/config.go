package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/pumpkit/localnet/internal/fixture"
)

// MarkerFile is the per-project config file. Its presence also marks the
// directory localnet must be run from.
const MarkerFile = "localnet.toml"

// Built-in defaults, overridable per config file, environment, or flag.
const (
	DefaultRPCURL      = "https://api.mainnet-beta.solana.com"
	DefaultProgramsDir = "fixtures/programs"
	DefaultAccountsDir = "fixtures/accounts"
)

// Environment variables recognized at startup.
const (
	EnvRPCURL      = "LOCALNET_RPC_URL"
	EnvProgramsDir = "LOCALNET_PROGRAMS_DIR"
	EnvAccountsDir = "LOCALNET_ACCOUNTS_DIR"
)

// Config captures the user editable settings stored in localnet.toml.
type Config struct {
	RPCURL      string `toml:"rpc_url"`
	ProgramsDir string `toml:"programs_dir"`
	AccountsDir string `toml:"accounts_dir"`

	// Programs and Accounts extend the built-in fixture table.
	Programs []Entry `toml:"program"`
	Accounts []Entry `toml:"account"`
}

// Entry declares one additional fixture in the config file.
type Entry struct {
	Name    string `toml:"name"`
	Address string `toml:"address"`
	File    string `toml:"file"`
}

var (
	// ErrEntryMissingAddress indicates a [[program]]/[[account]] entry without an address.
	ErrEntryMissingAddress = errors.New("fixture entry must set address")
	// ErrEntryMissingFile indicates a [[program]]/[[account]] entry without a file name.
	ErrEntryMissingFile = errors.New("fixture entry must set file")
)

// Default returns the baseline configuration written by `localnet init`.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.RPCURL == "" {
		c.RPCURL = DefaultRPCURL
	}
	if c.ProgramsDir == "" {
		c.ProgramsDir = DefaultProgramsDir
	}
	if c.AccountsDir == "" {
		c.AccountsDir = DefaultAccountsDir
	}
}

// ApplyEnvironment overlays recognized environment variables. A nil lookup
// uses the process environment. Called once at startup; nothing deeper in
// the tool reads the environment.
func (c *Config) ApplyEnvironment(lookup func(string) string) {
	if lookup == nil {
		lookup = os.Getenv
	}
	if v := lookup(EnvRPCURL); v != "" {
		c.RPCURL = v
	}
	if v := lookup(EnvProgramsDir); v != "" {
		c.ProgramsDir = v
	}
	if v := lookup(EnvAccountsDir); v != "" {
		c.AccountsDir = v
	}
}

// Validate ensures every configured fixture entry can be provisioned.
func (c Config) Validate() error {
	for _, entry := range append(append([]Entry{}, c.Programs...), c.Accounts...) {
		if strings.TrimSpace(entry.Address) == "" {
			return ErrEntryMissingAddress
		}
		if strings.TrimSpace(entry.File) == "" {
			return ErrEntryMissingFile
		}
	}
	return nil
}

// Fixtures returns the full artifact table: the canonical set first, then
// config-file extensions in declaration order.
func (c Config) Fixtures() []fixture.Artifact {
	table := fixture.DefaultTable()
	for _, entry := range c.Programs {
		table = append(table, entry.artifact(fixture.ProgramDump))
	}
	for _, entry := range c.Accounts {
		table = append(table, entry.artifact(fixture.AccountSnapshot))
	}
	return table
}

func (e Entry) artifact(method fixture.Method) fixture.Artifact {
	name := e.Name
	if name == "" {
		name = strings.TrimSuffix(e.File, filepath.Ext(e.File))
	}
	return fixture.Artifact{Name: name, Address: e.Address, File: e.File, Method: method}
}

// Load reads configuration from disk. Missing files return a default
// config; the marker check lives in the workspace package, not here.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes configuration to disk, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
