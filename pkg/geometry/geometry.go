// Package geometry provides the planar geometry operations the overpass
// selection core needs: parsing, area, and pairwise intersection.
//
// All geometries are assumed to share one planar or WGS coordinate space;
// no CRS handling is performed.
package geometry

import (
	"fmt"

	"github.com/peterstace/simplefeatures/geom"
)

// Geometry is a planar geometry, typically a footprint or AOI polygon.
// The zero value is an empty geometry.
type Geometry struct {
	g geom.Geometry
}

// FromWKT parses a WKT string such as "POLYGON((0 0,1 0,1 1,0 1,0 0))".
func FromWKT(wkt string) (Geometry, error) {
	g, err := geom.UnmarshalWKT(wkt)
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to parse WKT: %w", err)
	}
	return Geometry{g: g}, nil
}

// FromGeoJSON parses a GeoJSON geometry object.
func FromGeoJSON(data []byte) (Geometry, error) {
	g, err := geom.UnmarshalGeoJSON(data)
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to parse GeoJSON: %w", err)
	}
	return Geometry{g: g}, nil
}

// Area returns the planar area of the geometry. Non-areal geometries have
// area 0.
func (g Geometry) Area() float64 {
	return g.g.Area()
}

// Intersection computes the geometric intersection of g and other.
func (g Geometry) Intersection(other Geometry) (Geometry, error) {
	out, err := geom.Intersection(g.g, other.g)
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to intersect geometries: %w", err)
	}
	return Geometry{g: out}, nil
}

// IsEmpty reports whether the geometry contains no points.
func (g Geometry) IsEmpty() bool {
	return g.g.IsEmpty()
}

// String returns the WKT representation of the geometry.
func (g Geometry) String() string {
	return g.g.AsText()
}
