package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold — peak marker
	colorSuccess     = lipgloss.Color("#00E676") // Green — playing
	colorDanger      = lipgloss.Color("#FF5252") // Red — errors
	colorMuted       = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray — normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white — emphatic text
	colorSurface     = lipgloss.Color("#1E1E2E") // Dark surface — status bar bg
	colorSurfaceDim  = lipgloss.Color("#181825") // Darkest surface — footer bg
)

// Playback indicators.
const (
	iconPlaying = "▶"
	iconPaused  = "⏸"
	peakMarker  = "▲"
)

// Status bar styles.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Foreground(colorWhite)

	stylePlaying = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	stylePaused = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)

// Month strip styles.
var (
	styleCellNormal = lipgloss.NewStyle().
			Foreground(colorMutedLight).
			Padding(0, 1)

	styleCellSelected = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Bold(true).
				Reverse(true).
				Padding(0, 1)

	styleCellPeak = lipgloss.NewStyle().
			Foreground(colorAccent).
			Padding(0, 1)

	styleCount = lipgloss.NewStyle().
			Foreground(colorWhite)
)

// Year row styles.
var (
	styleYearNormal = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	styleYearSelected = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Bold(true).
				Underline(true).
				Padding(0, 1)
)

// Footer and message styles.
var (
	styleFooter = lipgloss.NewStyle().
			Background(colorSurfaceDim).
			Foreground(colorMuted).
			Padding(0, 1)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger)
)
