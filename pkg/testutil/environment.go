// Package testutil provides isolated filesystem environments for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nvup/nvup/pkg/filesystem"
	"github.com/nvup/nvup/pkg/paths"
)

// Environment is a throwaway home-directory layout rooted in a temp dir
type Environment struct {
	HomeDir string
	Paths   *paths.Paths
	FS      filesystem.FS
}

// NewEnvironment creates an isolated environment under t.TempDir().
// Nothing is created on disk beyond the home directory itself.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	home := t.TempDir()
	return &Environment{
		HomeDir: home,
		Paths: paths.NewFrom(
			home,
			filepath.Join(home, ".config"),
			filepath.Join(home, ".local", "share"),
			filepath.Join(home, ".local", "state"),
		),
		FS: filesystem.NewOS(),
	}
}

// SeedConfig populates the environment with a pre-existing Neovim
// configuration, as if the user had one before running the tool
func (e *Environment) SeedConfig(t *testing.T) {
	t.Helper()

	if err := os.MkdirAll(e.Paths.ConfigRoot(), 0755); err != nil {
		t.Fatalf("seed config root: %v", err)
	}
	if err := os.WriteFile(e.Paths.InitFile(), []byte("-- preexisting\n"), 0644); err != nil {
		t.Fatalf("seed init file: %v", err)
	}
}
