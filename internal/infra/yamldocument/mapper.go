package yamldocument

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/libcoords/internal/domain"
	"github.com/aalvaropc/libcoords/internal/infra/notation"
)

type yamlDocument struct {
	Name      string         `yaml:"name"`
	Tolerance float64        `yaml:"tolerance"`
	Locations []yamlLocation `yaml:"locations"`
	Midpoints []yamlMidpoint `yaml:"midpoints"`
}

type yamlLocation struct {
	Name         string   `yaml:"name"`
	At           string   `yaml:"at"`
	ExpectLength *float64 `yaml:"expect_length"`
}

type yamlMidpoint struct {
	Name        string `yaml:"name"`
	X           string `yaml:"x"`
	Y           string `yaml:"y"`
	Expect      string `yaml:"expect"`
	ExpectError string `yaml:"expect_error"`
}

func mapAndValidate(path string, yd yamlDocument) (domain.Document, error) {
	if strings.TrimSpace(yd.Name) == "" {
		return domain.Document{}, invalidField(path, "name", "document name is required")
	}

	doc := domain.Document{
		Name:      yd.Name,
		Tolerance: yd.Tolerance,
		Locations: make([]domain.LocationEntry, 0, len(yd.Locations)),
		Midpoints: make([]domain.MidpointJob, 0, len(yd.Midpoints)),
	}
	if doc.Tolerance <= 0 {
		doc.Tolerance = domain.DefaultTolerance
	}

	seen := map[string]bool{}
	for i, yl := range yd.Locations {
		fieldPrefix := fmt.Sprintf("locations[%d]", i)

		name := strings.TrimSpace(yl.Name)
		if name == "" {
			return domain.Document{}, invalidField(path, fieldPrefix+".name", "location name is required")
		}
		if seen[name] {
			return domain.Document{}, invalidField(path, fieldPrefix+".name", fmt.Sprintf("duplicate location %q", name))
		}
		seen[name] = true

		c, err := notation.Parse(yl.At)
		if err != nil {
			return domain.Document{}, invalidField(path, fieldPrefix+".at", err.Error())
		}

		doc.Locations = append(doc.Locations, domain.LocationEntry{
			Location:     domain.NewLocation(c, name),
			ExpectLength: yl.ExpectLength,
		})
	}

	seen = map[string]bool{}
	for i, ym := range yd.Midpoints {
		fieldPrefix := fmt.Sprintf("midpoints[%d]", i)

		name := strings.TrimSpace(ym.Name)
		if name == "" {
			return domain.Document{}, invalidField(path, fieldPrefix+".name", "midpoint name is required")
		}
		if seen[name] {
			return domain.Document{}, invalidField(path, fieldPrefix+".name", fmt.Sprintf("duplicate midpoint %q", name))
		}
		seen[name] = true

		x, err := notation.Parse(ym.X)
		if err != nil {
			return domain.Document{}, invalidField(path, fieldPrefix+".x", err.Error())
		}
		y, err := notation.Parse(ym.Y)
		if err != nil {
			return domain.Document{}, invalidField(path, fieldPrefix+".y", err.Error())
		}

		job := domain.MidpointJob{Name: name, X: x, Y: y}

		if strings.TrimSpace(ym.Expect) != "" && strings.TrimSpace(ym.ExpectError) != "" {
			return domain.Document{}, invalidField(path, fieldPrefix, "expect and expect_error are mutually exclusive")
		}
		if strings.TrimSpace(ym.Expect) != "" {
			want, err := notation.Parse(ym.Expect)
			if err != nil {
				return domain.Document{}, invalidField(path, fieldPrefix+".expect", err.Error())
			}
			job.Expect = &want
		}
		if strings.TrimSpace(ym.ExpectError) != "" {
			code, err := parseCoordinateError(ym.ExpectError)
			if err != nil {
				return domain.Document{}, invalidField(path, fieldPrefix+".expect_error", err.Error())
			}
			job.ExpectError = &code
		}

		doc.Midpoints = append(doc.Midpoints, job)
	}

	return doc, nil
}

func parseCoordinateError(s string) (domain.CoordinateError, error) {
	switch strings.TrimSpace(s) {
	case domain.WrongDimensions.Name():
		return domain.WrongDimensions, nil
	case domain.CantExist.Name():
		return domain.CantExist, nil
	default:
		return 0, fmt.Errorf("unknown coordinate error %q", s)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamldocument.validate",
		Kind: domain.KindInvalidDocument,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidDocument),
	}
}
