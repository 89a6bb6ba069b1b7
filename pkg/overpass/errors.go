package overpass

import "errors"

var (
	// ErrNoQualifyingOverpass is returned when no date group satisfies both
	// the time-difference cutoff and the overlap floor.
	ErrNoQualifyingOverpass = errors.New("no qualifying overpass among entries")

	// ErrZeroAreaAOI is returned when the supplied AOI geometry has zero
	// area, making fractional overlap undefined.
	ErrZeroAreaAOI = errors.New("AOI has zero area")
)
