package theme

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/libcoords/internal/bridge"
	"github.com/aalvaropc/libcoords/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// UserMessage turns an error into a one-line summary for the terminal.
// Details stay in the log file.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var be *bridge.Error
	if errors.As(err, &be) {
		return "Midpoint failed: " + be.Code.String()
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			switch {
			case strings.Contains(oe.Op, "yamldocument"):
				return "Document not found"
			case strings.Contains(oe.Op, "reportstore"):
				return "Report not found"
			case strings.Contains(oe.Op, "workspacefinder.findroot"):
				return "Workspace not found (run `libcoords init`)"
			case strings.Contains(oe.Op, "query"):
				return "No value at path"
			}
			return "Not found"

		case domain.KindInvalidConfig, domain.KindInvalidDocument:
			base := "config"
			if oe.Kind == domain.KindInvalidDocument {
				base = "document"
			}
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			if oe.Kind == domain.KindInvalidDocument {
				return "Invalid document " + base
			}
			return "Invalid config"

		case domain.KindInvalidNotation:
			if strings.Contains(oe.Op, "query") {
				return "Invalid jsonpath expression"
			}
			return "Invalid coordinate notation"

		case domain.KindInvalidCoordinate:
			return "Invalid coordinate"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
