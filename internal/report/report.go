// Package report renders habitat certificates and notes for registered
// gardens. Renderers are pure: they consume an already-computed summary
// and stitch fixed lookup tables into a document, with no dependency on
// the timeline navigator.
package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/fernvale/bloomwatch/internal/garden"
)

// Summary is the finished record a report is rendered from.
type Summary struct {
	Garden            garden.Garden
	Score             int
	Tier              garden.Tier
	TotalObservations int
	PeakMonth         int // 1..12, 0 when the garden has no peak
}

// Summarize builds a Summary from a garden and its observation totals.
func Summarize(g garden.Garden, totalObservations, peakMonth int) Summary {
	return Summary{
		Garden:            g,
		Score:             g.Score(),
		Tier:              g.Tier(),
		TotalObservations: totalObservations,
		PeakMonth:         peakMonth,
	}
}

// Format renders a summary into a document string.
type Format interface {
	Render(s Summary) (string, error)
}

// FormatByName returns the Format implementation for the given name.
// Supported names: html, text.
func FormatByName(name string) (Format, error) {
	switch name {
	case "html":
		return &HTMLReport{}, nil
	case "text":
		return &TextReport{}, nil
	default:
		return nil, fmt.Errorf("report: unknown format %q", name)
	}
}

// FormatNames returns the list of supported report format names.
func FormatNames() []string {
	return []string{"html", "text"}
}

// monthNames indexes display names by calendar month.
var monthNames = [13]string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the display name for a month, "—" for 0 (none).
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return "—"
	}
	return monthNames[month]
}

// tierBlurbs are the fixed certificate texts per tier.
var tierBlurbs = map[garden.Tier]string{
	garden.TierSeedling: "This garden is just getting started. Every habitat begins somewhere.",
	garden.TierSprout:   "This garden provides meaningful forage and is on its way to a full habitat.",
	garden.TierBloom:    "This garden is an established pollinator habitat with diverse plantings.",
	garden.TierMeadow:   "This garden is an exemplary habitat and a model for its neighborhood.",
}

// TextReport renders a plain-text certificate.
type TextReport struct{}

// Render produces the plain-text document.
func (r *TextReport) Render(s Summary) (string, error) {
	var b strings.Builder

	b.WriteString("POLLINATOR HABITAT REPORT\n")
	b.WriteString("=========================\n\n")
	fmt.Fprintf(&b, "Garden:  %s (%s)\n", s.Garden.Name, s.Garden.City)
	fmt.Fprintf(&b, "Size:    %d sq ft\n", s.Garden.SizeSqFt)
	fmt.Fprintf(&b, "Score:   %d\n", s.Score)
	fmt.Fprintf(&b, "Tier:    %s\n\n", s.Tier)
	b.WriteString(tierBlurbs[s.Tier])
	b.WriteString("\n\n")

	if len(s.Garden.Plants) > 0 {
		b.WriteString("Plants:\n")
		for _, p := range s.Garden.Plants {
			fmt.Fprintf(&b, "  - %s\n", p)
		}
		b.WriteString("\n")
	}
	if len(s.Garden.Features) > 0 {
		b.WriteString("Habitat features:\n")
		for _, f := range s.Garden.Features {
			fmt.Fprintf(&b, "  - %s\n", f)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Observations recorded: %d\n", s.TotalObservations)
	fmt.Fprintf(&b, "Peak activity month:   %s\n", MonthName(s.PeakMonth))

	if notes := Notes(s.Garden); len(notes) > 0 {
		b.WriteString("\nNotes:\n")
		for _, note := range notes {
			fmt.Fprintf(&b, "  * %s\n", note)
		}
	}

	if grants := garden.EligibleGrants(s.Tier); len(grants) > 0 {
		b.WriteString("\nEligible grant programs:\n")
		for _, g := range grants {
			fmt.Fprintf(&b, "  - %s (up to $%d)\n", g.Name, g.MaxAwardUSD)
		}
	}

	return b.String(), nil
}

// HTMLReport renders an HTML certificate.
type HTMLReport struct{}

// Render produces the HTML document. All garden-supplied strings are
// escaped.
func (r *HTMLReport) Render(s Summary) (string, error) {
	esc := html.EscapeString

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>Habitat Report — %s</title>\n", esc(s.Garden.Name))
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>Pollinator Habitat Report</h1>\n")
	fmt.Fprintf(&b, "<h2>%s <small>(%s)</small></h2>\n", esc(s.Garden.Name), esc(s.Garden.City))
	fmt.Fprintf(&b, "<p class=\"tier tier-%s\">Tier: <strong>%s</strong> — score %d</p>\n",
		strings.ToLower(string(s.Tier)), s.Tier, s.Score)
	fmt.Fprintf(&b, "<p>%s</p>\n", tierBlurbs[s.Tier])

	if len(s.Garden.Plants) > 0 {
		b.WriteString("<h3>Plants</h3>\n<ul>\n")
		for _, p := range s.Garden.Plants {
			fmt.Fprintf(&b, "<li>%s</li>\n", esc(p))
		}
		b.WriteString("</ul>\n")
	}
	if len(s.Garden.Features) > 0 {
		b.WriteString("<h3>Habitat features</h3>\n<ul>\n")
		for _, f := range s.Garden.Features {
			fmt.Fprintf(&b, "<li>%s</li>\n", esc(f))
		}
		b.WriteString("</ul>\n")
	}

	fmt.Fprintf(&b, "<p>Observations recorded: %d<br>\n", s.TotalObservations)
	fmt.Fprintf(&b, "Peak activity month: %s</p>\n", MonthName(s.PeakMonth))

	if notes := Notes(s.Garden); len(notes) > 0 {
		b.WriteString("<h3>Notes</h3>\n<ul>\n")
		for _, note := range notes {
			fmt.Fprintf(&b, "<li>%s</li>\n", esc(note))
		}
		b.WriteString("</ul>\n")
	}

	if grants := garden.EligibleGrants(s.Tier); len(grants) > 0 {
		b.WriteString("<h3>Eligible grant programs</h3>\n<ul>\n")
		for _, g := range grants {
			fmt.Fprintf(&b, "<li>%s (up to $%d)</li>\n", esc(g.Name), g.MaxAwardUSD)
		}
		b.WriteString("</ul>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}
