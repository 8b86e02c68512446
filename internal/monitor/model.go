package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/statboard/internal/config"
	"github.com/rileyhilliard/statboard/internal/filter"
	"github.com/rileyhilliard/statboard/internal/format"
	"github.com/rileyhilliard/statboard/internal/history"
	"github.com/rileyhilliard/statboard/internal/i18n"
	"github.com/rileyhilliard/statboard/internal/logger"
	"github.com/rileyhilliard/statboard/internal/ranking"
	"github.com/rileyhilliard/statboard/internal/settings"
	"github.com/rileyhilliard/statboard/internal/stats"
)

// Width breakpoints for layout modes
const (
	BreakpointCompact  = 80
	BreakpointStandard = 120
)

// Options tunes a Model beyond its collaborators.
type Options struct {
	// Timeout bounds a single poll. Zero uses 10s.
	Timeout time.Duration

	Thresholds config.ThresholdConfig

	// DarkBackground resolves the auto theme. Nil uses lipgloss.HasDarkBackground.
	DarkBackground func() bool

	// Now is the clock used for relative times. Nil uses time.Now.
	Now func() time.Time

	Logger logger.Logger
}

// Model is the Bubble Tea model for the status dashboard.
type Model struct {
	poller   *stats.Poller
	history  *history.Buffer
	settings *settings.Manager
	sub      *subscription
	log      logger.Logger
	now      func() time.Time
	timeout  time.Duration

	thresholds config.ThresholdConfig
	darkBg     bool

	prefs  settings.Settings
	tr     *i18n.Translator
	fmt    format.Formatter
	sorter *ranking.Sorter
	styles Styles

	hosts     []stats.HostStatus // Last accepted snapshot, server order
	visible   []stats.HostStatus // Filtered and sorted view of hosts
	criteria  filter.Criteria
	updated   time.Time // Server-side snapshot time
	fetchedAt time.Time
	err       error
	loaded    bool

	selected int
	viewMode ViewMode
	showHelp bool
	width    int
	height   int
	quitting bool

	spinner        spinner.Model
	detailViewport viewport.Model
	viewportReady  bool
}

// subscription bridges settings.Manager callbacks into Bubble Tea messages.
// Only the newest pending value is kept.
type subscription struct {
	ch     chan settings.Settings
	cancel func()
}

func newSubscription(mgr *settings.Manager) *subscription {
	s := &subscription{ch: make(chan settings.Settings, 1)}
	s.cancel = mgr.Subscribe(func(v settings.Settings) {
		select {
		case <-s.ch:
		default:
		}
		select {
		case s.ch <- v:
		default:
		}
	})
	return s
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// pollMsg carries one poll outcome.
type pollMsg stats.Result

// settingsMsg carries settings published by the Manager.
type settingsMsg settings.Settings

// NewModel creates a dashboard model. The Manager should already be loaded.
func NewModel(p *stats.Poller, buf *history.Buffer, mgr *settings.Manager, opts Options) Model {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	if opts.Thresholds == (config.ThresholdConfig{}) {
		opts.Thresholds = config.DefaultConfig().Monitor.Thresholds
	}

	if opts.DarkBackground == nil {
		opts.DarkBackground = lipgloss.HasDarkBackground
	}

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"◐", "◓", "◑", "◒"},
		FPS:    time.Second / 10,
	}

	m := Model{
		poller:     p,
		history:    buf,
		settings:   mgr,
		sub:        newSubscription(mgr),
		log:        opts.Logger,
		now:        opts.Now,
		timeout:    opts.Timeout,
		thresholds: opts.Thresholds,
		darkBg:     opts.DarkBackground(),
		criteria:   filter.Criteria{Status: filter.StatusAll},
		spinner:    sp,
	}
	m.applySettings(mgr.Get())
	return m
}

// Close releases the settings subscription. Call it after the program exits.
func (m Model) Close() {
	if m.sub != nil && m.sub.cancel != nil {
		m.sub.cancel()
	}
}

// Init starts the tick timer, the first poll, the spinner and the settings listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.pollCmd(),
		m.tickCmd(),
		m.spinner.Tick,
		m.waitSettingsCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.detailViewport = viewport.New(m.width, viewportHeight)
			m.detailViewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.detailViewport.Width = m.width
			m.detailViewport.Height = viewportHeight
		}

		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case tickMsg:
		return m, tea.Batch(m.tickCmd(), m.pollCmd())

	case pollMsg:
		m.applyResult(stats.Result(msg))
		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case settingsMsg:
		m.applySettings(settings.Settings(msg))
		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}
		return m, m.waitSettingsCmd()

	case spinner.TickMsg:
		if m.loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.viewMode == ViewDetail && m.viewportReady {
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	if m.viewMode == ViewDetail {
		return m.renderDetailView()
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.prefs.RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// pollCmd fetches one snapshot off the UI goroutine.
func (m Model) pollCmd() tea.Cmd {
	poller, timeout := m.poller, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return pollMsg(poller.Poll(ctx))
	}
}

// waitSettingsCmd blocks until the Manager publishes a change.
func (m Model) waitSettingsCmd() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	ch := m.sub.ch
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return settingsMsg(s)
	}
}

// applyResult folds a poll result into the model. Results older than the
// newest one already applied are dropped.
func (m *Model) applyResult(r stats.Result) {
	if !m.poller.Accept(r) {
		return
	}
	if r.Err != nil {
		m.err = r.Err
		m.log.Warn("poll %d failed: %v", r.Generation, r.Err)
		return
	}

	m.err = nil
	m.loaded = true
	m.fetchedAt = r.FetchedAt
	m.updated = r.Snapshot.UpdatedAt()
	m.hosts = r.Snapshot.Servers

	for _, h := range m.hosts {
		if !h.IsOnline() {
			continue
		}
		if cpu, ok := h.CPUValue(); ok {
			m.history.AddAt(h.ID(), cpu, r.FetchedAt)
		}
	}

	m.refreshVisible()
}

// applySettings rebuilds everything derived from preferences.
func (m *Model) applySettings(s settings.Settings) {
	localeChanged := m.tr == nil || m.tr.Locale() != s.Locale
	themeChanged := m.prefs.Theme != s.Theme || m.styles.Palette.Name == ""

	m.prefs = s
	if localeChanged {
		m.tr = i18n.New(s.Locale)
		m.sorter = ranking.NewSorter(s.Locale.Tag())
	}
	m.fmt = format.New(format.Units(s.UnitType), m.tr)
	if themeChanged {
		m.styles = NewStyles(ResolvePalette(s.Theme, m.darkBg))
	}
	m.refreshVisible()
}

// updateSettings persists a change through the Manager and applies it
// locally right away. The Manager's notification re-applies the same value.
func (m *Model) updateSettings(fn func(*settings.Settings)) {
	if err := m.settings.Update(fn); err != nil {
		m.log.Warn("saving settings: %v", err)
	}
	m.applySettings(m.settings.Get())
}

// refreshVisible re-filters and re-sorts hosts, keeping the selected host
// selected when it is still visible.
func (m *Model) refreshVisible() {
	selectedID := m.SelectedHostID()

	m.visible = m.sorter.Sort(filter.Apply(m.hosts, m.criteria), m.prefs.Sort())

	m.selected = 0
	if selectedID != "" {
		for i, h := range m.visible {
			if h.ID() == selectedID {
				m.selected = i
				break
			}
		}
	}
	if len(m.visible) == 0 && m.viewMode == ViewDetail {
		m.viewMode = ViewList
	}
}

// OnlineCount returns the number of online hosts in the last snapshot.
func (m Model) OnlineCount() int {
	return filter.Summarize(m.hosts).Online
}

// SelectedHost returns the currently selected host.
func (m Model) SelectedHost() (stats.HostStatus, bool) {
	if m.selected >= 0 && m.selected < len(m.visible) {
		return m.visible[m.selected], true
	}
	return stats.HostStatus{}, false
}

// SelectedHostID returns the ID of the selected host, or "".
func (m Model) SelectedHostID() string {
	h, ok := m.SelectedHost()
	if !ok {
		return ""
	}
	return h.ID()
}

// Visible returns the filtered and sorted hosts in display order.
func (m Model) Visible() []stats.HostStatus {
	return m.visible
}

// Settings returns the preferences the model is rendering with.
func (m Model) Settings() settings.Settings {
	return m.prefs
}

// Criteria returns the active filter.
func (m Model) Criteria() filter.Criteria {
	return m.criteria
}

// Err returns the error from the newest poll, or nil.
func (m Model) Err() error {
	return m.err
}

// cpuSeries returns the CPU history for a host over the configured window.
func (m Model) cpuSeries(h stats.HostStatus) []history.Point {
	return m.history.History(h.ID(), m.prefs.CPUChartDuration)
}
