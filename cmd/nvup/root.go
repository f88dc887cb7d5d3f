package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nvup/nvup/internal/version"
	"github.com/nvup/nvup/pkg/bootstrap"
	"github.com/nvup/nvup/pkg/cmdexec"
	"github.com/nvup/nvup/pkg/config"
	"github.com/nvup/nvup/pkg/filesystem"
	"github.com/nvup/nvup/pkg/logging"
	"github.com/nvup/nvup/pkg/migrate"
	"github.com/nvup/nvup/pkg/paths"
	"github.com/nvup/nvup/pkg/style"
	"github.com/nvup/nvup/pkg/ui"
)

// NewRootCmd creates and returns the root command. Running nvup with no
// arguments performs the whole bootstrap sequence.
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
	)

	rootCmd := &cobra.Command{
		Use:     "nvup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// honor the state-dir override for the log destination;
			// console-only when home cannot be resolved
			logFile := ""
			if p, err := paths.New(); err == nil {
				logFile = p.LogFile()
			}
			logging.SetupLogger(verbosity, logFile)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap(cmd, dryRun)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runBootstrap(cmd *cobra.Command, dryRun bool) error {
	p, err := paths.New()
	if err != nil {
		printError(err)
		return err
	}

	cfg, err := config.Load(p.AppConfigFile())
	if err != nil {
		printError(err)
		return err
	}

	if !ui.IsInteractive(os.Stdin) {
		log.Debug().Msg("stdin is not a terminal; the migration prompt will read from it anyway")
	}

	opts := bootstrap.Options{
		Paths:     p,
		Config:    cfg,
		FS:        filesystem.NewOS(),
		Runner:    cmdexec.NewExecRunner(dryRun),
		Confirmer: &migrate.StdinConfirmer{In: os.Stdin, Out: os.Stdout},
		DryRun:    dryRun,
		OnStage:   printStage,
	}

	res, err := bootstrap.Run(cmd.Context(), opts)
	if err != nil {
		printError(err)
		return err
	}

	pterm.Success.Println(MsgDone)
	fmt.Printf("  manager:  %s\n", res.Manager)
	fmt.Printf("  config:   %s\n", style.PathStyle.Render(p.ConfigRoot()))
	fmt.Printf("  plugins:  %s\n", style.PathStyle.Render(p.LazyCloneDir()))
	if res.Migration.BackupPath != "" {
		fmt.Printf("  backup:   %s\n", style.PathStyle.Render(res.Migration.BackupPath))
	}
	fmt.Println()
	fmt.Println(MsgNextSteps)
	return nil
}

func printStage(stage string) {
	if msg, ok := stageMessages[stage]; ok {
		pterm.Info.Println(formatBold(msg))
	}
}

func printError(err error) {
	pterm.Error.Println(err.Error())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("nvup version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newConfigCmd() *cobra.Command {
	var showDefaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showDefaults {
				fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigContent())
				return nil
			}

			p, err := paths.New()
			if err != nil {
				return err
			}
			cfg, err := config.Load(p.AppConfigFile())
			if err != nil {
				return err
			}
			out, err := cfg.Render()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.MutedStyle.Render("# effective configuration (override in "+p.AppConfigFile()+")"))
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDefaults, "defaults", false, MsgFlagDefaults)
	return cmd
}
