package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/libcoords/internal/usecase/query"
)

func queryCmd() *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "query <report-id> <jsonpath>",
		Short: `Read a value from a saved report, e.g. '$.midpoints[0].result'`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			doc, err := ws.store.LoadReport(args[0])
			if err != nil {
				return err
			}

			val, err := query.Eval(doc, args[1])
			if err != nil {
				return err
			}

			out, err := query.Render(val)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return c
}
