package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fernvale/bloomwatch/internal/navigator"
	"github.com/fernvale/bloomwatch/internal/season"
	"github.com/fernvale/bloomwatch/internal/timeline"
)

// monthAbbrevs indexes three-letter month names by calendar month.
var monthAbbrevs = [13]string{
	"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// renderStatusBar draws the top bar: garden, mode, playback state.
func (m AppModel) renderStatusBar(cursor timeline.Cursor, mode timeline.Mode) string {
	var parts []string
	parts = append(parts, styleStatusLabel.Render("bloomwatch"))
	parts = append(parts, styleStatusValue.Render(m.gardenLabel()))
	parts = append(parts, styleStatusLabel.Render("mode:")+styleStatusValue.Render(mode.String()))

	if m.Nav.Playing() {
		parts = append(parts, stylePlaying.Render(fmt.Sprintf("%s %dms", iconPlaying, m.Nav.IntervalMs())))
	} else {
		parts = append(parts, stylePaused.Render(iconPaused))
	}

	return styleStatusBar.Render(strings.Join(parts, "  "))
}

// renderYearRow draws the axis years with the cursor year highlighted.
func renderYearRow(axis *timeline.Axis, cursor timeline.Cursor) string {
	var b strings.Builder
	for _, y := range axis.Years() {
		label := fmt.Sprintf("%d", y)
		if y == cursor.Year {
			b.WriteString(styleYearSelected.Render(label))
		} else {
			b.WriteString(styleYearNormal.Render(label))
		}
	}
	return b.String()
}

// renderMonthStrip draws the twelve months of the cursor year with
// their counts, highlighting the selected month and marking the peak.
func renderMonthStrip(nav *navigator.Navigator, cursor timeline.Cursor, mode timeline.Mode) string {
	axis := nav.Axis()
	peak, hasPeak := timeline.PeakMonth(axis, cursor.Year)

	cells := make([]string, 0, 12)
	for mo := 1; mo <= 12; mo++ {
		label := fmt.Sprintf("%s %d", monthAbbrevs[mo], axis.Count(cursor.Year, mo))
		if hasPeak && mo == peak {
			label += peakMarker
		}

		switch {
		case mode != timeline.ModeYear && mo == cursor.Month:
			cells = append(cells, styleCellSelected.Render(label))
		case hasPeak && mo == peak:
			cells = append(cells, styleCellPeak.Render(label))
		default:
			cells = append(cells, styleCellNormal.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderSelection draws the current selection summary: what is selected
// and how many observations it holds.
func renderSelection(nav *navigator.Navigator, cursor timeline.Cursor, mode timeline.Mode) string {
	count := nav.Count()

	var what string
	switch mode {
	case timeline.ModeYear:
		what = fmt.Sprintf("%d", cursor.Year)
	case timeline.ModeSeason:
		s := season.Of(monthOr(cursor.Month, 1))
		badge := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color())).Bold(true)
		what = fmt.Sprintf("%s %s %d", badge.Render(s.Icon()+" "+s.Name()), monthAbbrevs[monthOr(cursor.Month, 1)], cursor.Year)
	default:
		what = fmt.Sprintf("%s %d", monthAbbrevs[monthOr(cursor.Month, 1)], cursor.Year)
	}

	return fmt.Sprintf("%s  %s observations",
		what, styleCount.Render(fmt.Sprintf("%d", count)))
}

// monthOr returns month, or fallback when month is unset.
func monthOr(month, fallback int) int {
	if month == 0 {
		return fallback
	}
	return month
}

// renderFooter draws the key help line.
func (m AppModel) renderFooter() string {
	bindings := []struct{ keys, label string }{
		{"←/→", "step"},
		{"space", "play"},
		{"m/y/s", "mode"},
		{"+/-", "speed"},
		{"g", "garden"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, fmt.Sprintf("%s %s", b.keys, b.label))
	}
	return styleFooter.Render(strings.Join(parts, " · "))
}
