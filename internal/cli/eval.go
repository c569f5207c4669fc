package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/libcoords/internal/domain"
	"github.com/aalvaropc/libcoords/internal/infra/logger"
	"github.com/aalvaropc/libcoords/internal/usecase"
)

func evalCmd() *cobra.Command {
	var workspace string
	var document string
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate every location and midpoint of a document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			if format == "" {
				format = ws.cfg.Format
			}
			if err := checkFormat(format); err != nil {
				return err
			}

			documentPath, err := resolveDocumentPath(ws, document)
			if err != nil {
				return err
			}

			uc := usecase.NewEvaluateDocument(ws.documents, usecase.WithLogger(logger.For("evaluate")))

			report, err := uc.Execute(cmd.Context(), documentPath)
			if err != nil {
				return err
			}

			var reportID string
			if ws.cfg.Reports.Save && !noSave {
				reportID, err = ws.store.SaveReport(report)
				if err != nil {
					// Still show what was computed.
					_ = printReport(cmd.OutOrStdout(), report, "", format)
					return err
				}
			}

			if err := printReport(cmd.OutOrStdout(), report, reportID, format); err != nil {
				return err
			}

			if fails := report.Failures(); fails > 0 {
				return fmt.Errorf("evaluation failed (%d failed entr(ies))", fails)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&document, "document", "d", "", "Document name or path (required)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the report under reports/")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (defaults to workspace config)")

	_ = c.MarkFlagRequired("document")
	return c
}

func printReport(w io.Writer, report domain.Report, reportID string, format string) error {
	switch format {
	case "json":
		return writeJSON(w, map[string]any{
			"report_id": reportID,
			"report":    report,
		})
	case "pretty", "":
		printPrettyReport(w, report, reportID)
		return nil
	default:
		return checkFormat(format)
	}
}

func printPrettyReport(w io.Writer, report domain.Report, reportID string) {
	th := themeFor(w)

	total := report.EndedAt.Sub(report.StartedAt)
	if report.StartedAt.IsZero() || report.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "%s\n", th.Title.Render("Document: "+report.DocumentName))
	fmt.Fprintf(w, "Path:      %s\n", report.DocumentPath)
	fmt.Fprintf(w, "Started:   %s\n", report.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration:  %s\n", total)
	if reportID != "" {
		fmt.Fprintf(w, "Report ID: %s\n", reportID)
	}
	fmt.Fprintln(w)

	if len(report.Lengths) > 0 {
		fmt.Fprintln(w, th.Subtitle.Render("Lengths"))
		for _, l := range report.Lengths {
			fmt.Fprintf(w, "- [%s] %s %s = %g\n", th.Status(l.Failed()), l.Name, l.Coordinate, l.Length)
			printAssertions(w, l.Assertions)
		}
		fmt.Fprintln(w)
	}

	if len(report.Midpoints) > 0 {
		fmt.Fprintln(w, th.Subtitle.Render("Midpoints"))
		for _, m := range report.Midpoints {
			fmt.Fprintf(w, "- [%s] %s: %s + %s -> %s\n", th.Status(m.Failed()), m.Name, m.X, m.Y, m.Result)
			if m.Error != nil {
				note := ""
				if m.Expected {
					note = " (expected)"
				}
				fmt.Fprintf(w, "  error: %s code=%d %s%s\n", m.Error.Domain, m.Error.Code, m.Error.Name, note)
			}
			printAssertions(w, m.Assertions)
		}
		fmt.Fprintln(w)
	}

	summary := fmt.Sprintf("%d length(s), %d midpoint(s), %d failure(s)", len(report.Lengths), len(report.Midpoints), report.Failures())
	if report.Failures() > 0 {
		fmt.Fprintln(w, th.Fail.Render(summary))
	} else {
		fmt.Fprintln(w, th.Pass.Render(summary))
	}
}

func printAssertions(w io.Writer, in []domain.AssertionResult) {
	if len(in) == 0 {
		return
	}
	th := themeFor(w)

	pass, fail := countAssertionPassFail(in)
	fmt.Fprintf(w, "  assertions: %d pass / %d fail\n", pass, fail)
	for _, a := range in {
		fmt.Fprintf(w, "    %s %s: %s\n", th.Mark(a.Passed), a.Name, a.Message)
	}
}

func countAssertionPassFail(in []domain.AssertionResult) (pass int, fail int) {
	for _, a := range in {
		if a.Passed {
			pass++
		} else {
			fail++
		}
	}
	return pass, fail
}
