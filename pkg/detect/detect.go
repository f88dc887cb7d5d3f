// Package detect probes the host for a supported system package manager.
package detect

import (
	"os/exec"

	"github.com/nvup/nvup/pkg/errors"
	"github.com/nvup/nvup/pkg/logging"
)

// Manager identifies a supported system package manager
type Manager string

const (
	// Pacman is the Arch-style package manager
	Pacman Manager = "pacman"

	// Apt is the Debian-style package manager
	Apt Manager = "apt"
)

// Binary returns the executable probed for and invoked for this manager
func (m Manager) Binary() string {
	switch m {
	case Pacman:
		return "pacman"
	case Apt:
		return "apt-get"
	default:
		return string(m)
	}
}

// probeOrder is fixed: Arch-style wins when both are present
var probeOrder = []Manager{Pacman, Apt}

// LookPathFunc resolves an executable name to a path, exec.LookPath
// shaped so tests can fake the host
type LookPathFunc func(string) (string, error)

// Detect returns the first supported package manager found on the host.
// The probe has no side effects. If neither is found it returns
// ErrUnsupportedOS.
func Detect(lookPath LookPathFunc) (Manager, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	logger := logging.GetLogger("detect")

	for _, m := range probeOrder {
		if path, err := lookPath(m.Binary()); err == nil {
			logger.Debug().Str("manager", string(m)).Str("path", path).Msg("Package manager found")
			return m, nil
		}
	}

	return "", errors.New(errors.ErrUnsupportedOS,
		"no supported package manager found (looked for pacman, apt-get); install neovim, git, curl and unzip manually and re-run")
}
