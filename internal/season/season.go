// Package season provides the static four-season calendar table used by
// the timeline navigator. The four seasons partition the twelve months
// exactly once each; December is grouped with January and February, so
// winter spans the year boundary for display purposes only.
package season

import "fmt"

// Season is one of the four fixed season buckets. The zero value is Winter.
type Season int

const (
	Winter Season = iota
	Spring
	Summer
	Fall
)

// Count is the number of seasons in a full cycle.
const Count = 4

// Info carries the display metadata for a season.
type Info struct {
	Name   string
	Months [3]int // constituent months in calendar order
	Color  string // lipgloss-compatible hex color
	Icon   string
}

// table is the authoritative season metadata, indexed by Season.
// Winter's months are listed December-first so Middle lands on January.
var table = [Count]Info{
	Winter: {Name: "Winter", Months: [3]int{12, 1, 2}, Color: "#7FDBFF", Icon: "❄"},
	Spring: {Name: "Spring", Months: [3]int{3, 4, 5}, Color: "#2ECC40", Icon: "✿"},
	Summer: {Name: "Summer", Months: [3]int{6, 7, 8}, Color: "#FFDC00", Icon: "☀"},
	Fall:   {Name: "Fall", Months: [3]int{9, 10, 11}, Color: "#FF851B", Icon: "🍂"},
}

// byMonth maps each calendar month 1..12 to its season.
var byMonth = func() [13]Season {
	var m [13]Season
	for s := Winter; s < Count; s++ {
		for _, mo := range table[s].Months {
			m[mo] = s
		}
	}
	return m
}()

// Of returns the season containing the given calendar month. It is total
// for months 1 through 12 and panics on anything else; callers validate
// month range before reaching the season table.
func Of(month int) Season {
	if month < 1 || month > 12 {
		panic(fmt.Sprintf("season: month %d out of range", month))
	}
	return byMonth[month]
}

// Next returns the season following s in the fixed cyclic order
// Winter→Spring→Summer→Fall→Winter.
func (s Season) Next() Season {
	return (s + 1) % Count
}

// Prev returns the season preceding s in cyclic order.
func (s Season) Prev() Season {
	return (s + Count - 1) % Count
}

// Middle returns the season's middle constituent month, the representative
// month the navigator lands on when cycling seasons (Winter→1, Spring→4,
// Summer→7, Fall→10).
func (s Season) Middle() int {
	return table[s].Months[1]
}

// Months returns the season's three constituent months in calendar order.
func (s Season) Months() [3]int {
	return table[s].Months
}

// Name returns the season's display name.
func (s Season) Name() string {
	return table[s].Name
}

// Color returns the season's display color as a hex string.
func (s Season) Color() string {
	return table[s].Color
}

// Icon returns the season's display icon.
func (s Season) Icon() string {
	return table[s].Icon
}

// String implements fmt.Stringer.
func (s Season) String() string {
	return table[s].Name
}
