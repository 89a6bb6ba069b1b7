package overpass

import (
	"fmt"

	"github.com/rkm/overpass-select/pkg/geometry"
)

// overlapValue returns the fraction of the AOI covered by the footprint's
// intersection with it: 1 for a footprint covering the whole AOI, close to
// 0 for hardly any overlap. Values are per entry; footprints within a group
// are never unioned, so summing over a group can double-count area where
// footprints overlap each other.
func (s *Selector) overlapValue(footprint, aoi geometry.Geometry) (float64, error) {
	aoiArea := aoi.Area()
	if aoiArea == 0 {
		return 0, ErrZeroAreaAOI
	}
	intersection, err := aoi.Intersection(footprint)
	if err != nil {
		return 0, fmt.Errorf("failed to intersect footprint with AOI: %w", err)
	}
	pct := intersection.Area() / aoiArea
	s.logger.Debug("computed overlap fraction", "overlap_pct", pct)
	return pct, nil
}
