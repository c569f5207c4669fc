package cli

import (
	"fmt"

	"github.com/aalvaropc/libcoords/internal/usecase"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	var workspace string
	var document string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a document without evaluating it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			documentPath, err := resolveDocumentPath(ws, document)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateDocument(ws.documents)
			if err := uc.Execute(cmd.Context(), documentPath); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&document, "document", "d", "", "Document name or path (required)")

	_ = c.MarkFlagRequired("document")
	return c
}
