package overpass

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rkm/overpass-select/pkg/geometry"
)

// Selector picks the overpass group best matching a reference date. Use
// NewSelector; the zero value has no usable tunables.
//
// A Selector holds no mutable state, so a single instance is safe for
// concurrent use as long as each call supplies its own arguments.
type Selector struct {
	params Params
	logger *slog.Logger
}

// NewSelector returns a Selector with the given tunables.
func NewSelector(params Params) *Selector {
	return &Selector{
		params: params,
		logger: slog.Default(),
	}
}

// WithLogger sets the logger used for diagnostics and returns the Selector.
func (s *Selector) WithLogger(logger *slog.Logger) *Selector {
	s.logger = logger
	return s
}

// Select returns the entries of the date group that best matches
// targetDate.
//
// Entries are grouped by overpass date. A group competes only if its
// temporal value is non-zero (within MaxDiffHours of the target) and the
// sum of its entries' AOI overlap fractions reaches MinOverlapPct. Among
// competing groups the one with the highest temporal value wins; spatial
// overlap is a pass/fail gate, never a ranking criterion. On an exact
// temporal-value tie the group whose date was encountered first in the
// input keeps the win.
//
// Returns ErrNoQualifyingOverpass (wrapped) when no group competes. A
// zero-area AOI or a geometry failure aborts selection with the underlying
// error.
func (s *Selector) Select(entries []Entry, aoi geometry.Geometry, targetDate time.Time) ([]Entry, error) {
	groups := GroupByDate(entries)
	s.logger.Info("grouped entries by overpass date", "groups", len(groups), "entries", len(entries))

	bestValue := 0.0
	var bestEntries []Entry
	for _, group := range groups {
		dateValue := s.temporalValue(group.Date, targetDate)
		if dateValue == 0 {
			s.logger.Debug("skipping date: outside time cutoff", "date", group.Date)
			continue
		}

		overlapSum := 0.0
		for _, e := range group.Entries {
			pct, err := s.overlapValue(e.Footprint, aoi)
			if err != nil {
				return nil, err
			}
			overlapSum += pct
		}
		if overlapSum < s.params.MinOverlapPct {
			s.logger.Debug("skipping date: insufficient overlap", "date", group.Date, "overlap_sum", overlapSum)
			continue
		}

		if dateValue > bestValue {
			bestValue = dateValue
			bestEntries = group.Entries
		}
	}

	if bestEntries == nil {
		return nil, fmt.Errorf("no date group within %v hours and %v overlap of %s: %w",
			s.params.MaxDiffHours, s.params.MinOverlapPct,
			targetDate.Format(time.RFC3339), ErrNoQualifyingOverpass)
	}
	return bestEntries, nil
}
