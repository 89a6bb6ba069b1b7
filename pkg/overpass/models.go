// Package overpass selects, from a set of satellite-sensor overpass records
// covering a region of interest, the group of records that best matches a
// reference acquisition date, subject to a minimum spatial overlap and a
// maximum time difference. It is used to pick auxiliary-data overpasses
// (e.g. atmospheric correction inputs) compatible with a primary scene.
package overpass

import (
	"time"

	"github.com/rkm/overpass-select/pkg/geometry"
)

// Entry is one sensor pass record supplied by the catalog-query
// collaborator. Entries are read-only inputs; the selection core never
// mutates them.
type Entry struct {
	// ID identifies the record in diagnostics. It has no effect on
	// selection.
	ID string

	// Start and End bound the acquisition interval.
	Start time.Time
	End   time.Time

	// Footprint is the ground area observed during the pass, in the same
	// coordinate space as the AOI.
	Footprint geometry.Geometry
}

// OverpassDate returns the midpoint of the acquisition interval. Entries
// captured during the same pass share it; it is the grouping key.
func (e Entry) OverpassDate() time.Time {
	return e.Start.Add(e.End.Sub(e.Start) / 2)
}

// DateGroup is the ordered set of entries sharing one overpass date.
type DateGroup struct {
	Date    time.Time
	Entries []Entry
}
