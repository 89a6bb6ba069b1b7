package overpass

import "time"

// temporalValue scores the closeness of an overpass date to the target
// date: 1 at zero difference, decaying linearly to 0 at MaxDiffHours, and
// exactly 0 beyond the cutoff. A return of exactly 0 means "excluded", not
// a valid low score.
//
// When the two timestamps carry different locations, both wall-clock
// readings are re-interpreted in UTC before differencing. Both sides are
// assumed to express the same absolute-time convention; this is a
// compatibility path for mixed catalog metadata, not a timezone
// conversion.
func (s *Selector) temporalValue(overpassDate, targetDate time.Time) float64 {
	if overpassDate.Location() != targetDate.Location() {
		overpassDate = stripLocation(overpassDate)
		targetDate = stripLocation(targetDate)
	}
	diffHours := overpassDate.Sub(targetDate).Abs().Hours()
	s.logger.Debug("computed time difference", "diff_hours", diffHours)
	if diffHours > s.params.MaxDiffHours {
		return 0.0
	}
	return (s.params.MaxDiffHours - diffHours) / s.params.MaxDiffHours
}

// stripLocation reinterprets the wall-clock reading of t in UTC.
func stripLocation(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return time.Date(year, month, day, hour, min, sec, t.Nanosecond(), time.UTC)
}
