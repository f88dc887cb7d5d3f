// Package cmdexec runs external commands on behalf of the installer and
// payload stages.
package cmdexec

import (
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	"github.com/nvup/nvup/pkg/errors"
	"github.com/nvup/nvup/pkg/logging"
)

// DefaultTimeout bounds a single external command. Package installs can
// be slow on a cold mirror.
const DefaultTimeout = 15 * time.Minute

// Command describes a single external command invocation
type Command struct {
	Name        string
	Args        []string
	WorkingDir  string
	Description string
}

// Runner executes external commands
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner runs commands via os/exec with the process's stdio attached,
// so package-manager and git output stays visible to the operator
type ExecRunner struct {
	logger  zerolog.Logger
	dryRun  bool
	timeout time.Duration
}

// NewExecRunner creates a runner. In dry-run mode commands are logged
// but not executed.
func NewExecRunner(dryRun bool) *ExecRunner {
	return &ExecRunner{
		logger:  logging.GetLogger("cmdexec"),
		dryRun:  dryRun,
		timeout: DefaultTimeout,
	}
}

// Run executes a single command, failing with ErrCommandRun on any
// non-zero exit
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	if cmd.Name == "" {
		return errors.New(errors.ErrInvalidInput, "command name is required")
	}

	r.logger.Info().
		Str("command", cmd.Name).
		Strs("args", cmd.Args).
		Str("description", cmd.Description).
		Msg("Executing command")

	if r.dryRun {
		r.logger.Info().Msg("Dry run mode - command would be executed")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	if cmd.WorkingDir != "" {
		c.Dir = cmd.WorkingDir
	}
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	start := time.Now()
	if err := c.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrCommandRun, "command failed: %s", cmd.Name).
			WithDetail("args", cmd.Args)
	}

	r.logger.Debug().
		Str("command", cmd.Name).
		Dur("duration", time.Since(start)).
		Msg("Command completed")
	return nil
}
