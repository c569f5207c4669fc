package bridge

import "github.com/aalvaropc/libcoords/internal/domain"

// FlatLocation exposes a domain.Location to the host through read-only
// accessors. It has no mutation entry points.
type FlatLocation struct {
	location domain.Location
}

// NewFlatLocation decodes c and wraps the resulting location.
func NewFlatLocation(c FlatCoordinate, name string) (FlatLocation, error) {
	dc, err := DecodeCoordinate(c)
	if err != nil {
		return FlatLocation{}, err
	}
	return FlatLocation{location: domain.NewLocation(dc, name)}, nil
}

// WrapLocation exposes an existing location without copying through the
// flat form.
func WrapLocation(l domain.Location) FlatLocation {
	return FlatLocation{location: l}
}

func (l FlatLocation) Coordinate() FlatCoordinate {
	return EncodeCoordinate(l.location.Coordinate())
}

func (l FlatLocation) Name() string { return l.location.Name() }

func (l FlatLocation) Length() float64 { return l.location.Length() }

// Unwrap returns the domain value behind l.
func (l FlatLocation) Unwrap() domain.Location { return l.location }
