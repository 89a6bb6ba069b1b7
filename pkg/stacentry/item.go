// Package stacentry adapts decoded STAC Items into overpass selection
// entries. It only maps already-parsed items onto the selection data model;
// querying a catalog and decoding raw responses belong to the catalog
// collaborator.
package stacentry

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/planetlabs/go-stac"

	"github.com/rkm/overpass-select/pkg/geometry"
	"github.com/rkm/overpass-select/pkg/overpass"
)

// FromItem maps a STAC Item onto an overpass Entry. The acquisition
// interval comes from the start_datetime/end_datetime properties, falling
// back to datetime for instantaneous acquisitions; the footprint comes
// from the item geometry.
func FromItem(item *stac.Item) (overpass.Entry, error) {
	if item == nil {
		return overpass.Entry{}, fmt.Errorf("item is nil")
	}

	start, err := propertyTime(item, "start_datetime")
	if err != nil {
		return overpass.Entry{}, fmt.Errorf("item %s: %w", item.Id, err)
	}

	end, err := propertyTime(item, "end_datetime")
	if err != nil {
		return overpass.Entry{}, fmt.Errorf("item %s: %w", item.Id, err)
	}

	if item.Geometry == nil {
		return overpass.Entry{}, fmt.Errorf("item %s has no geometry", item.Id)
	}

	// item.Geometry is untyped; round-trip through JSON to reach the
	// geometry layer regardless of the decoded representation.
	raw, err := json.Marshal(item.Geometry)
	if err != nil {
		return overpass.Entry{}, fmt.Errorf("item %s: failed to marshal geometry: %w", item.Id, err)
	}

	footprint, err := geometry.FromGeoJSON(raw)
	if err != nil {
		return overpass.Entry{}, fmt.Errorf("item %s: %w", item.Id, err)
	}

	return overpass.Entry{
		ID:        item.Id,
		Start:     start,
		End:       end,
		Footprint: footprint,
	}, nil
}

// FromItems maps items in input order, failing on the first invalid item.
func FromItems(items []*stac.Item) ([]overpass.Entry, error) {
	entries := make([]overpass.Entry, 0, len(items))
	for _, item := range items {
		e, err := FromItem(item)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// propertyTime reads a datetime property, falling back to the "datetime"
// property when the named one is absent or null.
func propertyTime(item *stac.Item, key string) (time.Time, error) {
	v, ok := item.Properties[key]
	if !ok || v == nil {
		v, ok = item.Properties["datetime"]
		if !ok || v == nil {
			return time.Time{}, fmt.Errorf("missing %s property", key)
		}
	}
	return parseTime(v)
}
