package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/aalvaropc/libcoords/internal/ui/theme"
)

// themeFor styles output only when it goes to a terminal.
func themeFor(w io.Writer) theme.Theme {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return theme.DefaultTheme()
	}
	return theme.PlainTheme()
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "json", "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
