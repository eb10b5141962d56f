package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fernvale/bloomwatch/internal/garden"
	"github.com/fernvale/bloomwatch/internal/navigator"
	"github.com/fernvale/bloomwatch/internal/timeline"
)

// AxisLoader loads a garden's observation axis; *store.Store satisfies it.
type AxisLoader interface {
	LoadAxis(ctx context.Context, gardenID string) (*timeline.Axis, error)
}

// speedPresets are the playback intervals the speed keys cycle through,
// fastest first.
var speedPresets = []int{500, 1000, 1500, 2000}

// AppModel is the root BubbleTea model for the observation dashboard.
type AppModel struct {
	Nav      *navigator.Navigator
	Bridge   *Bridge
	Loader   AxisLoader
	Keys     KeyMap
	Registry *garden.Registry

	GardenIDs []string
	GardenIdx int

	Width  int
	Height int
	ErrMsg string
}

// NewAppModel creates the root model for the given garden selection.
func NewAppModel(nav *navigator.Navigator, bridge *Bridge, loader AxisLoader, reg *garden.Registry, gardenIDs []string, gardenIdx int) AppModel {
	return AppModel{
		Nav:       nav,
		Bridge:    bridge,
		Loader:    loader,
		Keys:      DefaultKeyMap(),
		Registry:  reg,
		GardenIDs: gardenIDs,
		GardenIdx: gardenIdx,
	}
}

// Init implements tea.Model. The playback scheduler drives animation
// through the bridge, so there is no tick command to start here.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgYearChanged, MsgMonthChanged, MsgPlayingChanged:
		// The view reads navigator state directly; the message exists to
		// trigger a re-render in the program's serialized update loop.

	case MsgRegistryReloaded:
		m.Registry = &garden.Registry{Gardens: msg.Gardens}

	case MsgError:
		m.ErrMsg = msg.Err
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ErrMsg = ""

	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Nav.Close()
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Next):
		if err := m.Nav.Advance(); err != nil {
			m.ErrMsg = err.Error()
		}

	case key.Matches(msg, m.Keys.Prev):
		if err := m.Nav.Retreat(); err != nil {
			m.ErrMsg = err.Error()
		}

	case key.Matches(msg, m.Keys.MonthMode):
		if err := m.Nav.SetMode(timeline.ModeMonth); err != nil {
			m.ErrMsg = err.Error()
		}

	case key.Matches(msg, m.Keys.YearMode):
		if err := m.Nav.SetMode(timeline.ModeYear); err != nil {
			m.ErrMsg = err.Error()
		}

	case key.Matches(msg, m.Keys.SeasonMod):
		if err := m.Nav.SetMode(timeline.ModeSeason); err != nil {
			m.ErrMsg = err.Error()
		}

	case key.Matches(msg, m.Keys.Play):
		if err := m.Nav.TogglePlay(); err != nil {
			m.ErrMsg = err.Error()
		}

	case key.Matches(msg, m.Keys.Faster):
		m.setSpeed(-1)

	case key.Matches(msg, m.Keys.Slower):
		m.setSpeed(+1)

	case key.Matches(msg, m.Keys.Garden):
		return m.nextGarden()
	}
	return m, nil
}

// setSpeed moves one step through the preset intervals; dir -1 is
// faster (shorter interval), +1 slower.
func (m *AppModel) setSpeed(dir int) {
	cur := m.Nav.IntervalMs()
	idx := 0
	for i, p := range speedPresets {
		if p == cur {
			idx = i
			break
		}
		if p > cur {
			idx = i
			break
		}
	}
	idx += dir
	if idx < 0 || idx >= len(speedPresets) {
		return
	}
	if err := m.Nav.SetIntervalMs(speedPresets[idx]); err != nil {
		m.ErrMsg = err.Error()
	}
}

// nextGarden cycles to the next garden with observations, rebuilding the
// navigator over the new axis. Playback does not carry across gardens.
func (m AppModel) nextGarden() (tea.Model, tea.Cmd) {
	if len(m.GardenIDs) < 2 {
		return m, nil
	}

	idx := (m.GardenIdx + 1) % len(m.GardenIDs)
	axis, err := m.Loader.LoadAxis(context.Background(), m.GardenIDs[idx])
	if err != nil {
		m.ErrMsg = err.Error()
		return m, nil
	}

	mode := m.Nav.Mode()
	intervalMs := m.Nav.IntervalMs()
	m.Nav.Close()

	nav, err := navigator.New(axis, timeline.Cursor{Year: axis.LastYear()}, mode, m.Bridge.Events())
	if err != nil {
		m.ErrMsg = err.Error()
		return m, nil
	}
	// The interval is one of the presets, so this cannot be out of range.
	_ = nav.SetIntervalMs(intervalMs)

	m.Nav = nav
	m.GardenIdx = idx
	return m, nil
}

// gardenLabel returns the display name of the selected garden.
func (m AppModel) gardenLabel() string {
	id := ""
	if len(m.GardenIDs) > 0 {
		id = m.GardenIDs[m.GardenIdx]
	}
	if m.Registry != nil {
		if g, ok := m.Registry.Find(id); ok {
			if c, known := garden.Cities[g.City]; known {
				return fmt.Sprintf("%s · %s (zone %s)", g.Name, c.Name, c.Zone)
			}
			return g.Name
		}
	}
	return id
}

// View renders the dashboard.
func (m AppModel) View() string {
	cursor := m.Nav.Cursor()
	mode := m.Nav.Mode()

	sections := []string{
		m.renderStatusBar(cursor, mode),
		"",
		renderYearRow(m.Nav.Axis(), cursor),
		renderMonthStrip(m.Nav, cursor, mode),
		renderSelection(m.Nav, cursor, mode),
	}
	if m.ErrMsg != "" {
		sections = append(sections, styleError.Render(m.ErrMsg))
	}
	sections = append(sections, "", m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
