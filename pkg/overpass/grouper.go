package overpass

import "time"

// GroupByDate partitions entries by overpass date (the start/end midpoint)
// so that entries captured together are scored as a unit. Groups appear in
// the order their dates are first encountered in the input, and entries
// keep their input order within a group. No entries are dropped, merged
// across midpoints, or deduplicated.
//
// Grouping is exact time.Time equality on the computed midpoint: two
// entries whose midpoints differ by even a microsecond form distinct
// groups. This sensitivity is deliberate.
func GroupByDate(entries []Entry) []DateGroup {
	index := make(map[time.Time]int, len(entries))
	groups := make([]DateGroup, 0, len(entries))
	for _, e := range entries {
		date := e.OverpassDate()
		i, ok := index[date]
		if !ok {
			i = len(groups)
			index[date] = i
			groups = append(groups, DateGroup{Date: date})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}
