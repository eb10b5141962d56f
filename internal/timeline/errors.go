package timeline

import "errors"

// Sentinel errors for axis construction and cursor preconditions.
var (
	// ErrNoYears indicates the axis was built with an empty year list.
	ErrNoYears = errors.New("axis has no available years")
	// ErrYearsNotAscending indicates the year list is not strictly increasing.
	ErrYearsNotAscending = errors.New("available years must be strictly ascending")
	// ErrNegativeCount indicates an observation count below zero.
	ErrNegativeCount = errors.New("observation count is negative")
	// ErrBadBucketKey indicates a count key that does not parse as YYYY-MM.
	ErrBadBucketKey = errors.New("bucket key is not in YYYY-MM form")
	// ErrMonthOutOfRange indicates a cursor month outside [1,12] (or 0 for unset).
	ErrMonthOutOfRange = errors.New("month out of range")
	// ErrUnknownYear indicates a cursor year that is not on the axis.
	ErrUnknownYear = errors.New("year is not on the axis")
)
