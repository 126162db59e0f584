package cli

import (
	"fmt"
	"os"

	"github.com/jlrickert/cli-toolkit/mylog"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/spf13/cobra"

	"github.com/jlrickert/namefmt/pkg/namefmt"
)

// Deps carries the wiring shared by every command. The root command's
// PersistentPreRunE fills in the config and formatter so subcommands only
// read from it.
type Deps struct {
	Runtime *toolkit.Runtime

	ConfigPath string
	LogFile    string
	LogLevel   string
	LogJSON    bool

	// Resolved by PersistentPreRunE.
	ResolvedConfigPath string
	Config             *namefmt.Config
	Formatter          *namefmt.Formatter
}

func NewRootCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = &Deps{}
	}

	var inplace bool
	var timestamp bool

	cmd := &cobra.Command{
		Use:          "namefmt [path]",
		Short:        "format filenames according to configuration",
		Args:         cobra.MaximumNArgs(1),
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt := deps.Runtime
			if rt == nil {
				return fmt.Errorf("runtime is required")
			}

			if deps.LogFile != "" || deps.LogJSON || deps.LogLevel != "" {
				var out = os.Stderr
				if deps.LogFile != "" {
					f, err := os.OpenFile(deps.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
					if err != nil {
						return err
					}
					out = f
				}
				lg := mylog.NewLogger(mylog.LoggerConfig{
					Out:     out,
					Level:   mylog.ParseLevel(deps.LogLevel),
					JSON:    deps.LogJSON,
					Version: Version,
				})
				deps.Runtime.Logger = lg
			}
			ctx = mylog.WithLogger(ctx, deps.Runtime.Logger)

			path, err := namefmt.ConfigPath(deps.ConfigPath)
			if err != nil {
				return err
			}
			deps.ResolvedConfigPath = path
			deps.Config = namefmt.LoadConfig(ctx, rt, path, cmd.ErrOrStderr())

			formatter, err := namefmt.NewFormatter(namefmt.FormatterOptions{
				Config:  deps.Config,
				Runtime: rt,
			})
			if err != nil {
				return err
			}
			deps.Formatter = formatter

			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return deps.Formatter.Run(cmd.Context(), namefmt.RunOptions{
				Path:      path,
				InPlace:   inplace,
				Timestamp: timestamp,
				Out:       cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().BoolVarP(&inplace, "inplace", "i", false,
		"actually perform renames (default: dry-run mode)")
	cmd.Flags().BoolVar(&timestamp, "timestamp", false,
		"prefix YYYY_MM_DD__ to all filenames")

	cmd.PersistentFlags().StringVarP(&deps.ConfigPath, "config", "c", "",
		"override config file location")
	cmd.PersistentFlags().StringVar(&deps.LogFile, "log-file", "",
		"write logs to file (default stderr)")
	cmd.PersistentFlags().StringVar(&deps.LogLevel, "log-level", "info",
		"minimum log level")
	cmd.PersistentFlags().BoolVar(&deps.LogJSON, "log-json", false,
		"output logs as JSON")

	cmd.AddCommand(
		NewConfigCmd(deps),
		NewWatchCmd(deps),
	)

	return cmd
}
