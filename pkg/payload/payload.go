// Package payload produces the final directory tree: the lazy.nvim
// clone and the two configuration files.
package payload

import (
	"context"
	_ "embed"
	"os"

	"github.com/nvup/nvup/pkg/cmdexec"
	"github.com/nvup/nvup/pkg/config"
	"github.com/nvup/nvup/pkg/errors"
	"github.com/nvup/nvup/pkg/filesystem"
	"github.com/nvup/nvup/pkg/logging"
	"github.com/nvup/nvup/pkg/paths"
)

//go:embed assets/init.lua
var initLua []byte

//go:embed assets/colors.lua
var colorsLua []byte

// InitContent returns the fixed init.lua payload
func InitContent() []byte {
	return initLua
}

// ColorsContent returns the fixed colors.lua payload
func ColorsContent() []byte {
	return colorsLua
}

// Write creates the directory tree, resets and clones the plugin
// manager, and writes both payload files. Existing payload files are
// overwritten unconditionally; the writes are atomic so a partial file
// is never observable.
func Write(ctx context.Context, fsys filesystem.FS, p *paths.Paths, runner cmdexec.Runner, cfg *config.Config) error {
	logger := logging.GetLogger("payload")

	for _, dir := range []string{p.ConfigRoot(), p.PluginSpecDir()} {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
		}
	}

	if err := resetClone(ctx, fsys, p, runner, cfg); err != nil {
		return err
	}

	if err := WriteFileAtomic(fsys, p.InitFile(), initLua, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", p.InitFile())
	}
	if err := WriteFileAtomic(fsys, p.ColorsFile(), colorsLua, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", p.ColorsFile())
	}

	logger.Info().
		Str("init", p.InitFile()).
		Str("colors", p.ColorsFile()).
		Msg("Configuration written")
	return nil
}

// resetClone deletes any existing plugin-manager directory and performs
// a fresh blob-filtered clone
func resetClone(ctx context.Context, fsys filesystem.FS, p *paths.Paths, runner cmdexec.Runner, cfg *config.Config) error {
	logger := logging.GetLogger("payload")
	cloneDir := p.LazyCloneDir()

	if _, err := fsys.Stat(cloneDir); err == nil {
		logger.Debug().Str("path", cloneDir).Msg("Removing stale plugin manager clone")
		if err := fsys.RemoveAll(cloneDir); err != nil {
			return errors.Wrapf(err, errors.ErrRemove, "failed to remove %s", cloneDir)
		}
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", cloneDir)
	}

	cmd := cmdexec.Command{
		Name: "git",
		Args: []string{
			"clone", "--filter=blob:none",
			"--branch=" + cfg.Clone.Branch,
			cfg.Clone.URL, cloneDir,
		},
		Description: "clone plugin manager",
	}
	if err := runner.Run(ctx, cmd); err != nil {
		return errors.Wrapf(err, errors.ErrClone, "failed to clone %s", cfg.Clone.URL)
	}
	return nil
}
