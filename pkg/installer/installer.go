// Package installer runs the detected package manager's non-interactive
// update/install sequence for the required tools.
package installer

import (
	"context"

	"github.com/nvup/nvup/pkg/cmdexec"
	"github.com/nvup/nvup/pkg/detect"
	"github.com/nvup/nvup/pkg/errors"
	"github.com/nvup/nvup/pkg/logging"
)

// Commands returns the install sequence for a manager and package list.
// Every command is non-interactive; elevated privilege is requested via
// sudo, matching how the tool is meant to be run.
func Commands(manager detect.Manager, packages []string) []cmdexec.Command {
	switch manager {
	case detect.Pacman:
		return []cmdexec.Command{
			{
				Name:        "sudo",
				Args:        append([]string{"pacman", "-Syu", "--noconfirm"}, packages...),
				Description: "update system and install required tools",
			},
		}
	case detect.Apt:
		return []cmdexec.Command{
			{
				Name:        "sudo",
				Args:        []string{"apt-get", "update"},
				Description: "refresh package index",
			},
			{
				Name:        "sudo",
				Args:        append([]string{"apt-get", "install", "-y"}, packages...),
				Description: "install required tools",
			},
		}
	default:
		return nil
	}
}

// Install runs the manager's sequence through the runner, stopping at
// the first failure. Later stages assume the tools are present and do
// not re-check.
func Install(ctx context.Context, runner cmdexec.Runner, manager detect.Manager, packages []string) error {
	logger := logging.GetLogger("installer")

	cmds := Commands(manager, packages)
	if len(cmds) == 0 {
		return errors.Newf(errors.ErrInvalidInput, "no install sequence for manager %q", manager)
	}

	logger.Info().
		Str("manager", string(manager)).
		Strs("packages", packages).
		Msg("Installing dependencies")

	for _, cmd := range cmds {
		if err := runner.Run(ctx, cmd); err != nil {
			return errors.Wrapf(err, errors.ErrPkgInstall,
				"dependency installation failed (%s)", cmd.Description)
		}
	}
	return nil
}
