package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pumpkit/localnet/internal/fixture"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), MarkerFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), MarkerFile))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RPCURL != DefaultRPCURL {
		t.Fatalf("RPCURL = %q, want default", cfg.RPCURL)
	}
	if cfg.ProgramsDir != DefaultProgramsDir || cfg.AccountsDir != DefaultAccountsDir {
		t.Fatalf("dirs = %q/%q, want defaults", cfg.ProgramsDir, cfg.AccountsDir)
	}
}

func TestLoadOverridesAndExtensions(t *testing.T) {
	path := writeConfig(t, `
rpc_url = "http://rpc.internal"
programs_dir = "cache/programs"

[[program]]
address = "ExtraProg111"
file = "extra.so"

[[account]]
name = "fee-config"
address = "ExtraAcct111"
file = "fee_config.json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RPCURL != "http://rpc.internal" {
		t.Fatalf("RPCURL = %q", cfg.RPCURL)
	}
	if cfg.AccountsDir != DefaultAccountsDir {
		t.Fatalf("AccountsDir = %q, want default to survive partial config", cfg.AccountsDir)
	}

	table := cfg.Fixtures()
	canonical := len(fixture.DefaultTable())
	if len(table) != canonical+2 {
		t.Fatalf("table has %d entries, want %d", len(table), canonical+2)
	}

	extraProg := table[canonical]
	if extraProg.Name != "extra" || extraProg.Method != fixture.ProgramDump {
		t.Fatalf("extension program = %+v (name should default from file)", extraProg)
	}
	extraAcct := table[canonical+1]
	if extraAcct.Name != "fee-config" || extraAcct.Method != fixture.AccountSnapshot {
		t.Fatalf("extension account = %+v", extraAcct)
	}
}

func TestLoadRejectsIncompleteEntries(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    error
	}{
		{"missingAddress", "[[program]]\nfile = \"x.so\"\n", ErrEntryMissingAddress},
		{"missingFile", "[[account]]\naddress = \"Abc\"\n", ErrEntryMissingFile},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			if !errors.Is(err, tc.want) {
				t.Fatalf("Load error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestApplyEnvironment(t *testing.T) {
	env := map[string]string{
		EnvRPCURL:      "http://rpc.env",
		EnvProgramsDir: "/var/fixtures/programs",
	}

	cfg := Default()
	cfg.ApplyEnvironment(func(key string) string { return env[key] })

	if cfg.RPCURL != "http://rpc.env" {
		t.Fatalf("RPCURL = %q, want env value", cfg.RPCURL)
	}
	if cfg.ProgramsDir != "/var/fixtures/programs" {
		t.Fatalf("ProgramsDir = %q, want env value", cfg.ProgramsDir)
	}
	if cfg.AccountsDir != DefaultAccountsDir {
		t.Fatalf("AccountsDir = %q, want default when env unset", cfg.AccountsDir)
	}
}
