package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/libcoords/internal/infra/fsworkspace"
	"github.com/aalvaropc/libcoords/internal/infra/logger"
	"github.com/aalvaropc/libcoords/internal/infra/workspacefinder"
	"github.com/aalvaropc/libcoords/internal/ui/theme"
	"github.com/aalvaropc/libcoords/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:           "libcoords",
		Short:         "libcoords: tagged coordinates, lengths and midpoints",
		Long:          "Run without a subcommand to browse and evaluate the workspace documents interactively.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.For("tui"),
				Debug:                debug,
			})
		},
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			root, ok := workspaceForLogs(c)
			if !ok {
				return nil
			}

			// A broken config surfaces in the command itself.
			cfg, _ := workspacefinder.LoadConfig(root)

			cleanup, _ = logger.Setup(logger.Config{
				Root:  root,
				Debug: debug || cfg.Debug,
				Text:  cfg.LogFormat == "text",
			})
			logger.L().Debug("cli.command", "cmd", c.CommandPath())
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .libcoords/logs/libcoords.log")

	cmd.AddCommand(
		lengthCmd(),
		midpointCmd(),
		evalCmd(),
		validateCmd(),
		documentsCmd(),
		queryCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// workspaceForLogs picks the workspace whose log file the command writes
// to. Commands that run outside a workspace do not log.
func workspaceForLogs(c *cobra.Command) (string, bool) {
	flag := ""
	if f := c.Flags().Lookup("workspace"); f != nil {
		flag = f.Value.String()
	}

	root, err := resolveWorkspaceRoot(flag)
	if err != nil {
		return "", false
	}
	if !fileExists(filepath.Join(root, workspacefinder.ConfigFileName)) {
		return "", false
	}
	return root, true
}

func printError(w io.Writer, err error) {
	th := themeFor(w)
	fmt.Fprintf(w, "%s %s\n", th.Fail.Render("error:"), theme.UserMessage(err))
	fmt.Fprintf(w, "  %s\n", th.Muted.Render(err.Error()))
}
