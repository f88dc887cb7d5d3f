package filesystem

import (
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/nvup/nvup/pkg/logging"
)

// dryRunFS passes reads through to the real filesystem but logs
// mutations instead of performing them, so a preview run can walk the
// whole sequence without touching anything.
type dryRunFS struct {
	inner  FS
	logger zerolog.Logger
}

// NewDryRun wraps an FS so that every mutating operation becomes a log
// line and a no-op
func NewDryRun(inner FS) FS {
	return &dryRunFS{
		inner:  inner,
		logger: logging.GetLogger("filesystem"),
	}
}

func (d *dryRunFS) Stat(name string) (fs.FileInfo, error) {
	return d.inner.Stat(name)
}

func (d *dryRunFS) ReadFile(name string) ([]byte, error) {
	return d.inner.ReadFile(name)
}

func (d *dryRunFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return d.inner.ReadDir(name)
}

func (d *dryRunFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	d.logger.Info().Str("path", name).Int("bytes", len(data)).Msg("Dry run mode - file would be written")
	return nil
}

func (d *dryRunFS) MkdirAll(path string, perm fs.FileMode) error {
	d.logger.Info().Str("path", path).Msg("Dry run mode - directory would be created")
	return nil
}

func (d *dryRunFS) Remove(name string) error {
	d.logger.Info().Str("path", name).Msg("Dry run mode - file would be removed")
	return nil
}

func (d *dryRunFS) RemoveAll(path string) error {
	d.logger.Info().Str("path", path).Msg("Dry run mode - tree would be removed")
	return nil
}

func (d *dryRunFS) Rename(oldpath, newpath string) error {
	d.logger.Info().Str("from", oldpath).Str("to", newpath).Msg("Dry run mode - would be renamed")
	return nil
}
