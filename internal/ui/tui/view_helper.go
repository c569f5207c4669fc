package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/libcoords/internal/domain"
	"github.com/aalvaropc/libcoords/internal/infra/notation"
	"github.com/aalvaropc/libcoords/internal/ui/theme"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// clampLines trims s to maxLines lines of at most maxWidth runes. A
// non-positive limit leaves that dimension alone.
func clampLines(s string, maxLines, maxWidth int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = append(lines[:maxLines-1], "…")
	}
	if maxWidth > 0 {
		for i, l := range lines {
			lines[i] = clampString(l, maxWidth)
		}
	}
	return strings.Join(lines, "\n")
}

func renderPreview(doc domain.Document) string {
	var b strings.Builder
	b.WriteString("Document: ")
	b.WriteString(doc.Name)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Tolerance: %g\n\n", doc.Tolerance)

	b.WriteString("Locations:\n")
	if len(doc.Locations) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, l := range doc.Locations {
		fmt.Fprintf(&b, "  - %s  %s", l.Location.Name(), notation.Format(l.Location.Coordinate()))
		if l.ExpectLength != nil {
			fmt.Fprintf(&b, "  (length %g)", *l.ExpectLength)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nMidpoints:\n")
	if len(doc.Midpoints) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, m := range doc.Midpoints {
		fmt.Fprintf(&b, "  - %s  %s + %s", m.Name, notation.Format(m.X), notation.Format(m.Y))
		switch {
		case m.ExpectError != nil:
			fmt.Fprintf(&b, "  (expect error %s)", m.ExpectError.Name())
		case m.Expect != nil:
			fmt.Fprintf(&b, "  (expect %s)", notation.Format(*m.Expect))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderReport(th theme.Theme, r domain.Report, id string) string {
	var b strings.Builder

	b.WriteString(th.Title.Render("Document: " + r.DocumentName))
	b.WriteString("\n")
	if id != "" {
		b.WriteString(th.Muted.Render("Report ID: " + id))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(r.Lengths) > 0 {
		b.WriteString(th.Subtitle.Render("Lengths"))
		b.WriteString("\n")
		for _, l := range r.Lengths {
			fmt.Fprintf(&b, "[%s] %s %s = %g\n", th.Status(l.Failed()), l.Name, l.Coordinate, l.Length)
			renderAssertions(&b, th, l.Assertions)
		}
		b.WriteString("\n")
	}

	if len(r.Midpoints) > 0 {
		b.WriteString(th.Subtitle.Render("Midpoints"))
		b.WriteString("\n")
		for _, m := range r.Midpoints {
			fmt.Fprintf(&b, "[%s] %s: %s + %s -> %s\n", th.Status(m.Failed()), m.Name, m.X, m.Y, m.Result)
			if m.Error != nil {
				note := ""
				if m.Expected {
					note = " (expected)"
				}
				fmt.Fprintf(&b, "    error: %s code=%d %s%s\n", m.Error.Domain, m.Error.Code, m.Error.Name, note)
			}
			renderAssertions(&b, th, m.Assertions)
		}
		b.WriteString("\n")
	}

	summary := fmt.Sprintf("%d length(s), %d midpoint(s), %d failure(s)", len(r.Lengths), len(r.Midpoints), r.Failures())
	if r.Failures() > 0 {
		b.WriteString(th.Fail.Render(summary))
	} else {
		b.WriteString(th.Pass.Render(summary))
	}
	return b.String()
}

func renderAssertions(b *strings.Builder, th theme.Theme, in []domain.AssertionResult) {
	for _, a := range in {
		fmt.Fprintf(b, "    %s %s %s\n", th.Mark(a.Passed), a.Name, a.Message)
	}
}
