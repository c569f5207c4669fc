package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/libcoords/internal/buildinfo"
	"github.com/aalvaropc/libcoords/internal/infra/fsworkspace"
	"github.com/aalvaropc/libcoords/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a libcoords workspace with a sample document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())

			root, err := uc.Execute(path, force)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace initialized at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", ".", "Directory to initialize")
	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing template files")
	return c
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
