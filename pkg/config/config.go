// Package config loads nvup's layered configuration: embedded defaults
// overridden by an optional user file.
package config

import (
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/nvup/nvup/pkg/errors"
)

// Clone configures the plugin-manager clone
type Clone struct {
	URL    string `koanf:"url" toml:"url"`
	Branch string `koanf:"branch" toml:"branch"`
}

// Packages lists the tools installed per package manager
type Packages struct {
	Pacman []string `koanf:"pacman" toml:"pacman"`
	Apt    []string `koanf:"apt" toml:"apt"`
}

// Config is the effective nvup configuration
type Config struct {
	Clone    Clone    `koanf:"clone" toml:"clone"`
	Packages Packages `koanf:"packages" toml:"packages"`
}

// Load builds the effective configuration. Embedded defaults are loaded
// first, then userFile on top of them if it exists. Pass an empty
// userFile to load defaults only.
func Load(userFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	if userFile != "" {
		if _, err := os.Stat(userFile); err == nil {
			if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", userFile)
			}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	return &cfg, nil
}

// PackagesFor returns the package list for the given manager identifier
func (c *Config) PackagesFor(manager string) []string {
	switch manager {
	case "pacman":
		return c.Packages.Pacman
	case "apt":
		return c.Packages.Apt
	default:
		return nil
	}
}

// Render marshals the effective configuration back to TOML, for the
// config command
func (c *Config) Render() (string, error) {
	out, err := gotoml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal config")
	}
	return string(out), nil
}
