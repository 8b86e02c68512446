package monitor

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/statboard/internal/filter"
	"github.com/rileyhilliard/statboard/internal/settings"
)

// ViewMode defines the current display mode of the dashboard.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

// Key bindings as constants for consistency.
const (
	KeyQuit          = "q"
	KeyQuitAlt       = "ctrl+c"
	KeyRefresh       = "r"
	KeyCycleSort     = "s"
	KeyFlipDirection = "d"
	KeyCycleWindow   = "w"
	KeyToggleChart   = "c"
	KeyToggleUnits   = "u"
	KeyCycleTheme    = "T"
	KeyCycleLocale   = "l"
	KeyToggleDisplay = "v"
	KeyToggleSummary = "S"
	KeyToggleFilters = "f"
	KeyCycleStatus   = "o"
	KeyCycleLocation = "L"
	KeyCycleType     = "t"
	KeySelectPrev    = "up"
	KeySelectPrevK   = "k"
	KeySelectNext    = "down"
	KeySelectNextJ   = "j"
	KeySelectFirst   = "home"
	KeySelectLast    = "end"
	KeyExpand        = "enter"
	KeySelectLeft    = "left"
	KeySelectRight   = "right"
	KeyCollapse      = "esc"
	KeyToggleHelp    = "?"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp && key == KeyCollapse {
		m.showHelp = false
		return true, nil
	}

	if m.viewMode == ViewDetail {
		switch key {
		case KeyCollapse:
			m.viewMode = ViewList
			return true, nil
		case KeyQuit, KeyQuitAlt:
			m.quitting = true
			return true, tea.Quit
		case KeyRefresh:
			return true, m.pollCmd()
		}
		// Everything else scrolls the viewport.
		return false, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyRefresh:
		return true, m.pollCmd()

	case KeyCycleSort:
		m.updateSettings(func(s *settings.Settings) { s.SortKey = s.SortKey.Next() })
		return true, nil

	case KeyFlipDirection:
		m.updateSettings(func(s *settings.Settings) { s.SortDirection = s.SortDirection.Flip() })
		return true, nil

	case KeyCycleWindow:
		m.updateSettings(func(s *settings.Settings) { s.CPUChartDuration = s.CPUChartDuration.Next() })
		return true, nil

	case KeyToggleChart:
		m.updateSettings(func(s *settings.Settings) { s.ShowCPUChart = !s.ShowCPUChart })
		return true, nil

	case KeyToggleUnits:
		m.updateSettings(func(s *settings.Settings) {
			if s.UnitType == settings.UnitBinary {
				s.UnitType = settings.UnitDecimal
			} else {
				s.UnitType = settings.UnitBinary
			}
		})
		return true, nil

	case KeyCycleTheme:
		m.updateSettings(func(s *settings.Settings) { s.Theme = settings.NextTheme(s.Theme) })
		return true, nil

	case KeyCycleLocale:
		m.updateSettings(func(s *settings.Settings) { s.Locale = s.Locale.Next() })
		return true, nil

	case KeyToggleDisplay:
		m.updateSettings(func(s *settings.Settings) {
			if s.DisplayMode == settings.DisplayCard {
				s.DisplayMode = settings.DisplayRow
			} else {
				s.DisplayMode = settings.DisplayCard
			}
		})
		return true, nil

	case KeyToggleSummary:
		m.updateSettings(func(s *settings.Settings) { s.ShowSummary = !s.ShowSummary })
		return true, nil

	case KeyToggleFilters:
		m.updateSettings(func(s *settings.Settings) { s.ShowFilters = !s.ShowFilters })
		return true, nil

	case KeyCycleStatus:
		m.criteria.Status = m.criteria.Status.Next()
		m.refreshVisible()
		return true, nil

	case KeyCycleLocation:
		m.criteria.Location = filter.Cycle(filter.Locations(m.hosts), m.criteria.Location)
		m.refreshVisible()
		return true, nil

	case KeyCycleType:
		m.criteria.Type = filter.Cycle(filter.Types(m.hosts), m.criteria.Type)
		m.refreshVisible()
		return true, nil

	case KeySelectPrev, KeySelectPrevK:
		m.moveSelection(-m.stride())
		return true, nil

	case KeySelectNext, KeySelectNextJ:
		m.moveSelection(m.stride())
		return true, nil

	case KeySelectLeft:
		m.moveSelection(-1)
		return true, nil

	case KeySelectRight:
		m.moveSelection(1)
		return true, nil

	case KeySelectFirst:
		m.selected = 0
		return true, nil

	case KeySelectLast:
		if len(m.visible) > 0 {
			m.selected = len(m.visible) - 1
		}
		return true, nil

	case KeyExpand:
		if len(m.visible) > 0 {
			m.viewMode = ViewDetail
			m.detailViewport.GotoTop()
			m.updateDetailViewportContent()
		}
		return true, nil

	case KeyCollapse:
		return true, nil
	}

	return false, nil
}

// moveSelection shifts the selection by delta, clamped to the visible hosts.
func (m *Model) moveSelection(delta int) {
	if len(m.visible) == 0 {
		m.selected = 0
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected > len(m.visible)-1 {
		m.selected = len(m.visible) - 1
	}
}

// stride is how far up/down moves: one grid row of cards, or one table row.
func (m Model) stride() int {
	if m.prefs.DisplayMode == settings.DisplayRow {
		return 1
	}
	return m.cardsPerRow()
}
