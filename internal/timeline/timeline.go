// Package timeline implements the temporal core of the observation
// navigator: the immutable time axis, the cursor that marks the current
// selection, and the pure step/wraparound arithmetic that moves it.
//
// Nothing in this package holds mutable state. Every navigation call
// takes the full axis, cursor and mode and returns a new cursor, so the
// engine can be tested and replayed deterministically; the surrounding
// state owner (internal/navigator) keeps the authoritative cursor.
package timeline

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects the step granularity and aggregation path.
type Mode int

const (
	ModeMonth Mode = iota
	ModeYear
	ModeSeason
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeMonth:
		return "month"
	case ModeYear:
		return "year"
	case ModeSeason:
		return "season"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts a config string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "month":
		return ModeMonth, nil
	case "year":
		return ModeYear, nil
	case "season":
		return ModeSeason, nil
	default:
		return ModeMonth, fmt.Errorf("timeline: unknown mode %q", s)
	}
}

// Bucket is a single (year, month) time unit keying observation counts.
type Bucket struct {
	Year  int
	Month int
}

// Key returns the canonical "YYYY-MM" form of the bucket.
func (b Bucket) Key() string {
	return fmt.Sprintf("%04d-%02d", b.Year, b.Month)
}

// ParseBucketKey parses a "YYYY-MM" string into a Bucket.
func ParseBucketKey(key string) (Bucket, error) {
	y, m, ok := strings.Cut(key, "-")
	if !ok {
		return Bucket{}, fmt.Errorf("timeline: %w: %q", ErrBadBucketKey, key)
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return Bucket{}, fmt.Errorf("timeline: %w: %q", ErrBadBucketKey, key)
	}
	month, err := strconv.Atoi(m)
	if err != nil || month < 1 || month > 12 {
		return Bucket{}, fmt.Errorf("timeline: %w: %q", ErrBadBucketKey, key)
	}
	return Bucket{Year: year, Month: month}, nil
}

// Axis is the immutable set of available years plus the bucket-count
// index. It is supplied once at navigator construction and never mutated;
// a missing bucket always reads as zero observations.
type Axis struct {
	years  []int
	counts map[Bucket]int
}

// NewAxis builds an axis from an ordered year list and a "YYYY-MM"-keyed
// count mapping. Years must be non-empty and strictly ascending, counts
// must be non-negative, and keys must parse; keys whose year is not on
// the axis are ignored rather than rejected.
func NewAxis(years []int, counts map[string]int) (*Axis, error) {
	if len(years) == 0 {
		return nil, fmt.Errorf("timeline: %w", ErrNoYears)
	}
	for i := 1; i < len(years); i++ {
		if years[i] <= years[i-1] {
			return nil, fmt.Errorf("timeline: %w: %d after %d", ErrYearsNotAscending, years[i], years[i-1])
		}
	}

	onAxis := make(map[int]bool, len(years))
	for _, y := range years {
		onAxis[y] = true
	}

	a := &Axis{
		years:  append([]int(nil), years...),
		counts: make(map[Bucket]int, len(counts)),
	}
	for key, n := range counts {
		if n < 0 {
			return nil, fmt.Errorf("timeline: %w: %s = %d", ErrNegativeCount, key, n)
		}
		b, err := ParseBucketKey(key)
		if err != nil {
			return nil, err
		}
		if !onAxis[b.Year] {
			continue
		}
		a.counts[b] = n
	}
	return a, nil
}

// Years returns the available years in ascending order. The returned
// slice is a copy.
func (a *Axis) Years() []int {
	return append([]int(nil), a.years...)
}

// FirstYear returns the earliest year on the axis.
func (a *Axis) FirstYear() int { return a.years[0] }

// LastYear returns the latest year on the axis.
func (a *Axis) LastYear() int { return a.years[len(a.years)-1] }

// HasYear reports whether year is on the axis.
func (a *Axis) HasYear(year int) bool {
	_, ok := a.yearIndex(year)
	return ok
}

// Count returns the observation count for the bucket, zero when absent.
func (a *Axis) Count(year, month int) int {
	return a.counts[Bucket{Year: year, Month: month}]
}

// yearIndex returns the position of year in the ascending year list.
func (a *Axis) yearIndex(year int) (int, bool) {
	for i, y := range a.years {
		if y == year {
			return i, true
		}
	}
	return 0, false
}

// nextYear returns the year after the given one, wrapping from the last
// axis year back to the first. Wraparound is deliberate: continuous
// playback loops forever instead of stopping at the end.
func (a *Axis) nextYear(year int) int {
	i, _ := a.yearIndex(year)
	return a.years[(i+1)%len(a.years)]
}

// prevYear mirrors nextYear, wrapping from the first year to the last.
func (a *Axis) prevYear(year int) int {
	i, _ := a.yearIndex(year)
	return a.years[(i-1+len(a.years))%len(a.years)]
}

// Cursor is the currently selected point in time. Month 0 means unset,
// which is valid only under ModeYear; navigation in the other modes
// normalizes an unset month to January before stepping.
type Cursor struct {
	Year  int
	Month int
}

// Validate checks the cursor preconditions against the axis: the year
// must be on the axis and the month in [0,12]. Violations are surfaced
// rather than clamped, since silent clamping would corrupt the
// wraparound arithmetic.
func (c Cursor) Validate(a *Axis) error {
	if !a.HasYear(c.Year) {
		return fmt.Errorf("timeline: %w: %d", ErrUnknownYear, c.Year)
	}
	if c.Month < 0 || c.Month > 12 {
		return fmt.Errorf("timeline: %w: %d", ErrMonthOutOfRange, c.Month)
	}
	return nil
}

// monthOrJanuary returns the cursor month, treating unset as January.
func (c Cursor) monthOrJanuary() int {
	if c.Month == 0 {
		return 1
	}
	return c.Month
}
