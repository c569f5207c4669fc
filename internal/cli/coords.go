package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/libcoords/internal/bridge"
	"github.com/aalvaropc/libcoords/internal/infra/logger"
	"github.com/aalvaropc/libcoords/internal/infra/notation"
)

func lengthCmd() *cobra.Command {
	var name string
	var format string

	c := &cobra.Command{
		Use:   "length <coordinate>",
		Short: `Print the length of a coordinate such as "A(3) 4"`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			coord, err := notation.Parse(args[0])
			if err != nil {
				return err
			}

			loc, err := bridge.NewFlatLocation(bridge.EncodeCoordinate(coord), name)
			if err != nil {
				return err
			}

			logger.For("cli").Debug("length", "coordinate", coord.String(), "length", loc.Length())
			return printLength(cmd.OutOrStdout(), loc, format)
		},
	}

	c.Flags().StringVarP(&name, "name", "n", "", "Location name")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func midpointCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "midpoint <x> <y>",
		Short: "Combine two coordinates of the same case",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			x, err := notation.Parse(args[0])
			if err != nil {
				return err
			}
			y, err := notation.Parse(args[1])
			if err != nil {
				return err
			}

			var slot bridge.Error
			res := bridge.Midpoint(bridge.EncodeCoordinate(x), bridge.EncodeCoordinate(y), &slot)

			var failed *bridge.Error
			if slot.Domain != "" {
				failed = &slot
				logger.For("cli").Info("midpoint.failed", "x", x.String(), "y", y.String(), "code", int64(slot.Code))
			}

			if err := printMidpoint(cmd.OutOrStdout(), res, failed, format); err != nil {
				return err
			}
			if failed != nil {
				return failed
			}
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printLength(w io.Writer, loc bridge.FlatLocation, format string) error {
	coord, err := bridge.DecodeCoordinate(loc.Coordinate())
	if err != nil {
		return err
	}

	if format == "json" {
		return writeJSON(w, map[string]any{
			"name":       loc.Name(),
			"coordinate": notation.Format(coord),
			"tag":        loc.Coordinate().Position.Tag.String(),
			"length":     loc.Length(),
		})
	}

	th := themeFor(w)
	label := notation.Format(coord)
	if loc.Name() != "" {
		label = th.Title.Render(loc.Name()) + " " + label
	}
	fmt.Fprintf(w, "%s  length %g\n", label, loc.Length())
	return nil
}

// printMidpoint always shows the returned value, which is the sentinel
// when the slot is filled.
func printMidpoint(w io.Writer, res bridge.FlatCoordinate, slot *bridge.Error, format string) error {
	coord, err := bridge.DecodeCoordinate(res)
	if err != nil {
		return err
	}

	if format == "json" {
		payload := map[string]any{
			"result": notation.Format(coord),
			"tag":    res.Position.Tag.String(),
		}
		if slot != nil {
			payload["error"] = map[string]any{
				"domain": slot.Domain,
				"code":   int64(slot.Code),
				"name":   slot.Code.String(),
			}
		}
		return writeJSON(w, payload)
	}

	th := themeFor(w)
	fmt.Fprintln(w, notation.Format(coord))
	if slot != nil {
		fmt.Fprintf(w, "%s %s code=%d (%s)\n", th.Fail.Render("error:"), slot.Domain, int64(slot.Code), slot.Code)
	}
	return nil
}
