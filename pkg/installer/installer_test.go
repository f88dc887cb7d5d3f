package installer_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/nvup/nvup/pkg/cmdexec"
	"github.com/nvup/nvup/pkg/detect"
	"github.com/nvup/nvup/pkg/errors"
	"github.com/nvup/nvup/pkg/installer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tools = []string{"neovim", "git", "curl", "unzip"}

func TestCommands_Pacman(t *testing.T) {
	cmds := installer.Commands(detect.Pacman, tools)
	require.Len(t, cmds, 1)
	assert.Equal(t, "sudo", cmds[0].Name)
	assert.Equal(t, []string{"pacman", "-Syu", "--noconfirm", "neovim", "git", "curl", "unzip"}, cmds[0].Args)
}

func TestCommands_Apt(t *testing.T) {
	cmds := installer.Commands(detect.Apt, tools)
	require.Len(t, cmds, 2)
	assert.Equal(t, []string{"apt-get", "update"}, cmds[0].Args)
	assert.Equal(t, []string{"apt-get", "install", "-y", "neovim", "git", "curl", "unzip"}, cmds[1].Args)
}

func TestInstall_RunsFullSequence(t *testing.T) {
	runner := &cmdexec.RecordingRunner{}

	err := installer.Install(context.Background(), runner, detect.Apt, tools)
	require.NoError(t, err)
	require.Len(t, runner.Commands, 2)
	assert.Equal(t, "sudo", runner.Commands[0].Name)
}

func TestInstall_FailFastOnFirstCommand(t *testing.T) {
	runner := &cmdexec.RecordingRunner{
		FailOn: func(cmd cmdexec.Command) error {
			return fmt.Errorf("exit status 100")
		},
	}

	err := installer.Install(context.Background(), runner, detect.Apt, tools)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPkgInstall))
	// the install command must not run after update failed
	assert.Len(t, runner.Commands, 1)
}

func TestInstall_UnknownManager(t *testing.T) {
	runner := &cmdexec.RecordingRunner{}

	err := installer.Install(context.Background(), runner, detect.Manager("brew"), tools)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Empty(t, runner.Commands)
}
