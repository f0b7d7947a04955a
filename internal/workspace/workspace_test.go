package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pumpkit/localnet/internal/config"
)

func TestLoadWithoutMarkerFails(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrWrongDirectory) {
		t.Fatalf("Load error = %v, want ErrWrongDirectory", err)
	}
}

func clearEnvOverrides(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvRPCURL, "")
	t.Setenv(config.EnvProgramsDir, "")
	t.Setenv(config.EnvAccountsDir, "")
}

func TestLoadResolvesRelativeDirs(t *testing.T) {
	clearEnvOverrides(t)
	root := t.TempDir()
	marker := filepath.Join(root, config.MarkerFile)
	if err := os.WriteFile(marker, []byte("programs_dir = \"cache/p\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ws, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := filepath.Join(root, "cache", "p"); ws.ProgramsDir() != want {
		t.Fatalf("ProgramsDir = %q, want %q", ws.ProgramsDir(), want)
	}
	if want := filepath.Join(root, config.DefaultAccountsDir); ws.AccountsDir() != want {
		t.Fatalf("AccountsDir = %q, want %q", ws.AccountsDir(), want)
	}
}

func TestLoadKeepsAbsoluteDirs(t *testing.T) {
	clearEnvOverrides(t)
	root := t.TempDir()
	abs := filepath.Join(t.TempDir(), "shared-cache")
	content := "accounts_dir = \"" + filepath.ToSlash(abs) + "\"\n"
	if err := os.WriteFile(filepath.Join(root, config.MarkerFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	ws, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ws.AccountsDir() != abs {
		t.Fatalf("AccountsDir = %q, want %q untouched", ws.AccountsDir(), abs)
	}
}

func TestFromWDRequiresMarkerInCWD(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, config.MarkerFile), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "sub")
	if err := os.Mkdir(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	// No upward walk: a subdirectory of a workspace is still the wrong place.
	chdir(t, nested)
	if _, err := FromWD(); !errors.Is(err, ErrWrongDirectory) {
		t.Fatalf("FromWD error = %v, want ErrWrongDirectory", err)
	}

	chdir(t, root)
	ws, err := FromWD()
	if err != nil {
		t.Fatalf("FromWD: %v", err)
	}
	if resolved, _ := filepath.EvalSymlinks(ws.Root); resolved != mustEval(t, root) {
		t.Fatalf("Root = %q, want %q", ws.Root, root)
	}
}

// chdir mirrors testing.T.Chdir for toolchains older than Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}

func mustEval(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatal(err)
	}
	return resolved
}
