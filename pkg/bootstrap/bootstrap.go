// Package bootstrap orchestrates the four installation stages: detect,
// install, migrate, write. Stages run strictly in order and the first
// failure stops the run; completed stages are not rolled back.
package bootstrap

import (
	"context"
	"time"

	"github.com/nvup/nvup/pkg/cmdexec"
	"github.com/nvup/nvup/pkg/config"
	"github.com/nvup/nvup/pkg/detect"
	"github.com/nvup/nvup/pkg/errors"
	"github.com/nvup/nvup/pkg/filesystem"
	"github.com/nvup/nvup/pkg/installer"
	"github.com/nvup/nvup/pkg/logging"
	"github.com/nvup/nvup/pkg/migrate"
	"github.com/nvup/nvup/pkg/paths"
	"github.com/nvup/nvup/pkg/payload"
)

// Stage names passed to OnStage, in execution order
const (
	StageDetect  = "detect"
	StageInstall = "install"
	StageMigrate = "migrate"
	StageWrite   = "write"
)

// Options carries every dependency a run needs. All paths and
// collaborators are explicit so tests can run against temp directories
// with canned confirmers and recorded commands.
type Options struct {
	Paths     *paths.Paths
	Config    *config.Config
	FS        filesystem.FS
	Runner    cmdexec.Runner
	Confirmer migrate.Confirmer

	// DryRun previews the run: filesystem mutations are logged instead
	// of performed. The Runner must be dry as well; the orchestrator
	// only guards its own stages.
	DryRun bool

	// LookPath defaults to exec.LookPath
	LookPath detect.LookPathFunc

	// Now defaults to time.Now; injected for backup-timestamp tests
	Now func() time.Time

	// OnStage, when set, is called before each stage starts
	OnStage func(stage string)
}

// Result reports what a successful run did
type Result struct {
	Manager   detect.Manager
	Migration migrate.Result
}

// Run executes the full bootstrap sequence
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	logger := logging.GetLogger("bootstrap")
	start := time.Now()

	fsys := opts.FS
	if opts.DryRun {
		logger.Info().Msg("Dry run mode - no filesystem mutation will be performed")
		fsys = filesystem.NewDryRun(fsys)
	}

	opts.stage(StageDetect)
	manager, err := detect.Detect(opts.LookPath)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("manager", string(manager)).Msg("Package manager detected")

	opts.stage(StageInstall)
	pkgs := opts.Config.PackagesFor(string(manager))
	if err := installer.Install(ctx, opts.Runner, manager, pkgs); err != nil {
		return nil, err
	}

	opts.stage(StageMigrate)
	migration, err := migrate.Run(fsys, opts.Paths, opts.Confirmer, opts.Now)
	if err != nil {
		return nil, err
	}

	opts.stage(StageWrite)
	if err := payload.Write(ctx, fsys, opts.Paths, opts.Runner, opts.Config); err != nil {
		return nil, err
	}

	logging.LogDuration(start, "bootstrap")
	return &Result{Manager: manager, Migration: migration}, nil
}

func (o Options) validate() error {
	switch {
	case o.Paths == nil:
		return errors.New(errors.ErrInvalidInput, "bootstrap requires paths")
	case o.Config == nil:
		return errors.New(errors.ErrInvalidInput, "bootstrap requires config")
	case o.FS == nil:
		return errors.New(errors.ErrInvalidInput, "bootstrap requires a filesystem")
	case o.Runner == nil:
		return errors.New(errors.ErrInvalidInput, "bootstrap requires a command runner")
	case o.Confirmer == nil:
		return errors.New(errors.ErrInvalidInput, "bootstrap requires a confirmer")
	}
	return nil
}

func (o Options) stage(name string) {
	if o.OnStage != nil {
		o.OnStage(name)
	}
}
