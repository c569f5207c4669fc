package domain

// DefaultTolerance bounds the relative error accepted by numeric
// expectations when a document does not set its own.
const DefaultTolerance = 1e-9

// LocationEntry is a location plus an optional expected length.
type LocationEntry struct {
	Location     Location
	ExpectLength *float64
}

// MidpointJob names a pair of coordinates to combine. Expect and
// ExpectError are optional and mutually exclusive.
type MidpointJob struct {
	Name string
	X    Coordinate
	Y    Coordinate

	Expect      *Coordinate
	ExpectError *CoordinateError
}

// Document is a named batch of locations and midpoint jobs, usually loaded
// from a YAML file.
type Document struct {
	Name      string
	Tolerance float64
	Locations []LocationEntry
	Midpoints []MidpointJob
}

// DocumentRef is a lightweight reference to a document file on disk.
type DocumentRef struct {
	Name string
	Path string
}

// WorkspaceSpec describes where a workspace is initialized.
type WorkspaceSpec struct {
	Root string
}
