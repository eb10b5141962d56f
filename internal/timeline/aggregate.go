package timeline

// CountFor returns the observation count for the current selection.
//
// Year mode sums all twelve buckets of the cursor's year; buckets for
// other years are excluded and missing months count as zero. Month and
// Season modes return the single bucket for (year, month), with an
// unset month read as January. Season mode deliberately reports only
// the representative month's count rather than a season-wide sum; the
// under-count for multi-month seasons is an accepted approximation.
func CountFor(a *Axis, c Cursor, mode Mode) int {
	if mode == ModeYear {
		total := 0
		for m := 1; m <= 12; m++ {
			total += a.Count(c.Year, m)
		}
		return total
	}
	return a.Count(c.Year, c.monthOrJanuary())
}

// PeakMonth returns the month of the given year with the strictly
// greatest count. Months are scanned in order 1→12 so ties resolve to
// the earliest month. The second return is false when every month of
// the year has zero observations.
func PeakMonth(a *Axis, year int) (int, bool) {
	best, bestCount := 0, 0
	for m := 1; m <= 12; m++ {
		if n := a.Count(year, m); n > bestCount {
			best, bestCount = m, n
		}
	}
	if best == 0 {
		return 0, false
	}
	return best, true
}
