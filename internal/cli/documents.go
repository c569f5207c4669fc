package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func documentsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "documents",
		Short: "Manage documents in a workspace",
	}

	c.AddCommand(documentsListCmd())
	return c
}

func documentsListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents",
		RunE: func(c *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.documents.ListDocuments(ws.root)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no documents found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(out, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
