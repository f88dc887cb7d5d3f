// Package migrate moves an existing Neovim configuration out of the way
// before the new one is written. The operator decides between a
// timestamped backup and deletion.
package migrate

import (
	"os"
	"time"

	"github.com/nvup/nvup/pkg/errors"
	"github.com/nvup/nvup/pkg/filesystem"
	"github.com/nvup/nvup/pkg/logging"
	"github.com/nvup/nvup/pkg/paths"
)

// Action describes what the migrator did with the existing config
type Action string

const (
	// ActionNone means no config directory existed
	ActionNone Action = "none"

	// ActionBackup means the config was renamed to a backup path
	ActionBackup Action = "backup"

	// ActionDelete means the config was removed
	ActionDelete Action = "delete"
)

// Result reports the migration outcome
type Result struct {
	Action     Action
	BackupPath string
}

// Run checks the config root and, when it exists, asks the confirmer
// whether to back it up. Any non-affirmative answer deletes the tree;
// that matches the tool's long-standing behavior and is deliberate.
// The backup timestamp is taken at the moment of the rename so two
// back-to-back runs cannot collide.
func Run(fsys filesystem.FS, p *paths.Paths, confirmer Confirmer, now func() time.Time) (Result, error) {
	if now == nil {
		now = time.Now
	}
	logger := logging.GetLogger("migrate")
	configRoot := p.ConfigRoot()

	if _, err := fsys.Stat(configRoot); err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", configRoot).Msg("No existing config, nothing to migrate")
			return Result{Action: ActionNone}, nil
		}
		return Result{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", configRoot)
	}

	keep, err := confirmer.Confirm("Existing Neovim config found at " + configRoot + ". Back it up?")
	if err != nil {
		return Result{}, errors.Wrap(err, errors.ErrInvalidInput, "failed to read answer")
	}

	if keep {
		backup := p.BackupPath(now().Format(paths.BackupTimeFormat))
		if err := fsys.Rename(configRoot, backup); err != nil {
			return Result{}, errors.Wrapf(err, errors.ErrBackup, "failed to back up %s", configRoot).
				WithDetail("to", backup)
		}
		logger.Info().Str("from", configRoot).Str("to", backup).Msg("Existing config backed up")
		return Result{Action: ActionBackup, BackupPath: backup}, nil
	}

	if err := fsys.RemoveAll(configRoot); err != nil {
		return Result{}, errors.Wrapf(err, errors.ErrRemove, "failed to remove %s", configRoot)
	}
	logger.Info().Str("path", configRoot).Msg("Existing config removed")
	return Result{Action: ActionDelete}, nil
}
