package main

import "github.com/nvup/nvup/pkg/bootstrap"

// Message constants
const (
	MsgRootShort = "Bootstrap a Neovim configuration"
	MsgRootLong  = `nvup bootstraps a complete Neovim setup on a fresh machine: it detects
the system package manager, installs the required tools, backs up or
removes any existing configuration, clones the lazy.nvim plugin manager
and writes a ready-to-use configuration with a curated set of color
themes and theme picker commands.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview the run: log commands and filesystem changes without performing them"

	MsgVersionShort = "Print version information"
	MsgConfigShort  = "Print the effective configuration as TOML"
	MsgFlagDefaults = "Print the built-in defaults instead of the effective configuration"
	MsgGuideShort   = "Show the post-install guide"

	MsgDone      = "Neovim is ready"
	MsgNextSteps = "Start nvim and run :ThemePick to choose a colorscheme, or see `nvup guide`."
)

// stageMessages are printed before each bootstrap stage
var stageMessages = map[string]string{
	bootstrap.StageDetect:  "Detecting package manager",
	bootstrap.StageInstall: "Installing dependencies",
	bootstrap.StageMigrate: "Checking for an existing configuration",
	bootstrap.StageWrite:   "Writing configuration",
}
