// Package paths provides centralized path handling for nvup.
// All stages take a Paths value rather than reading the environment
// themselves, so tests can point the whole run at a temp directory.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nvup/nvup/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory
	EnvConfigDir = "NVUP_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory
	EnvDataDir = "NVUP_DATA_DIR"

	// EnvStateDir overrides the XDG state directory
	EnvStateDir = "NVUP_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Well-known names inside the directory tree this tool produces.
// These match what the Neovim runtime and lazy.nvim expect and are
// not user-configurable.
const (
	// NvimDirName is the editor's directory name under config and data homes
	NvimDirName = "nvim"

	// InitFileName is the configuration entry point
	InitFileName = "init.lua"

	// ColorsFileName is the colorscheme plugin manifest
	ColorsFileName = "colors.lua"

	// AppDirName is the directory name for nvup-specific files
	AppDirName = "nvup"

	// ConfigFileName is the name of the nvup configuration file
	ConfigFileName = "nvup.toml"

	// LogFileName is the name of the log file
	LogFileName = "nvup.log"

	// BackupInfix joins the config root name and the backup timestamp
	BackupInfix = "-backup-"

	// BackupTimeFormat sorts lexicographically by creation order
	BackupTimeFormat = "20060102-150405"
)

// Paths provides every filesystem location the bootstrap touches
type Paths struct {
	home       string
	configHome string
	dataHome   string
	stateHome  string
}

// New resolves paths from the environment: XDG base directories with
// NVUP_* overrides, home via the usual fallback chain.
func New() (*Paths, error) {
	home, err := GetHomeDirectory()
	if err != nil {
		return nil, err
	}

	return &Paths{
		home:       home,
		configHome: envOr(EnvConfigDir, xdg.ConfigHome),
		dataHome:   envOr(EnvDataDir, xdg.DataHome),
		stateHome:  envOr(EnvStateDir, xdg.StateHome),
	}, nil
}

// NewFrom builds a Paths over explicit directories. Used by tests.
func NewFrom(home, configHome, dataHome, stateHome string) *Paths {
	return &Paths{
		home:       home,
		configHome: configHome,
		dataHome:   dataHome,
		stateHome:  stateHome,
	}
}

// Home returns the user's home directory
func (p *Paths) Home() string {
	return p.home
}

// ConfigRoot returns the Neovim configuration directory,
// typically ~/.config/nvim
func (p *Paths) ConfigRoot() string {
	return filepath.Join(p.configHome, NvimDirName)
}

// PluginSpecDir returns the lazy.nvim plugin spec directory inside the
// config root
func (p *Paths) PluginSpecDir() string {
	return filepath.Join(p.ConfigRoot(), "lua", "plugins")
}

// InitFile returns the path of the configuration entry point
func (p *Paths) InitFile() string {
	return filepath.Join(p.ConfigRoot(), InitFileName)
}

// ColorsFile returns the path of the colorscheme plugin manifest
func (p *Paths) ColorsFile() string {
	return filepath.Join(p.PluginSpecDir(), ColorsFileName)
}

// LazyCloneDir returns where the lazy.nvim repository is cloned,
// typically ~/.local/share/nvim/lazy/lazy.nvim
func (p *Paths) LazyCloneDir() string {
	return filepath.Join(p.dataHome, NvimDirName, "lazy", "lazy.nvim")
}

// BackupPath returns the backup destination for the config root given a
// timestamp string in BackupTimeFormat
func (p *Paths) BackupPath(timestamp string) string {
	return p.ConfigRoot() + BackupInfix + timestamp
}

// AppConfigFile returns the path of the optional nvup config file
func (p *Paths) AppConfigFile() string {
	return filepath.Join(p.configHome, AppDirName, ConfigFileName)
}

// LogFile returns the path of the nvup log file
func (p *Paths) LogFile() string {
	return filepath.Join(p.stateHome, AppDirName, LogFileName)
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME
// environment variable. If both fail, it returns an error rather than
// using dangerous defaults.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv(EnvHome)
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrHomeResolve, "unable to determine home directory: neither os.UserHomeDir() nor HOME are available")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
