package cli

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/statboard/internal/config"
	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/rileyhilliard/statboard/internal/history"
	"github.com/rileyhilliard/statboard/internal/logger"
	"github.com/rileyhilliard/statboard/internal/monitor"
	"github.com/rileyhilliard/statboard/internal/settings"
	"github.com/rileyhilliard/statboard/internal/stats"
	"github.com/spf13/cobra"
)

// MonitorFlags are the dashboard overrides. Interval, sort and display are
// written through to settings, the same as pressing the matching keys.
type MonitorFlags struct {
	Endpoint string
	Interval string
	Display  string
	Sort     SortFlags
}

var monitorFlags MonitorFlags

// monitorCmd starts the TUI dashboard. The root command runs the same thing.
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Live dashboard of every host on the status endpoint",
	Long: `Start an interactive TUI dashboard that polls the status endpoint and
shows each host's CPU, memory, disk, network and uptime.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Refresh now
  s / d       Cycle sort key / flip direction
  v           Toggle cards and rows
  up/k        Select previous host
  down/j      Select next host
  Enter       Open host detail
  Esc         Go back
  ?           Show all shortcuts

Examples:
  statboard monitor
  statboard monitor --endpoint https://status.example.com
  statboard monitor --interval 5s --display row`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand(monitorFlags)
	},
}

func init() {
	addMonitorFlags(monitorCmd, &monitorFlags)
	rootCmd.AddCommand(monitorCmd)
}

// addMonitorFlags registers the dashboard flags. The root command and the
// monitor subcommand share one MonitorFlags.
func addMonitorFlags(cmd *cobra.Command, flags *MonitorFlags) {
	cmd.Flags().StringVar(&flags.Endpoint, "endpoint", "", "status page base URL (overrides config)")
	cmd.Flags().StringVar(&flags.Interval, "interval", "", "refresh interval: 1s, 2s, 5s, 10s")
	cmd.Flags().StringVar(&flags.Display, "display", "", "layout: card or row")
	AddSortFlags(cmd, &flags.Sort)
}

// applyMonitorFlags writes flag overrides into settings in one update.
// Invalid values are rejected before anything changes. A save failure is
// only logged, since the overrides still apply for this session.
func applyMonitorFlags(mgr *settings.Manager, flags MonitorFlags, log logger.Logger) error {
	if flags.Interval == "" && flags.Display == "" && flags.Sort.Key == "" && flags.Sort.Order == "" {
		return nil
	}

	interval, err := ParseInterval(flags.Interval)
	if err != nil {
		return err
	}
	spec, err := flags.Sort.Resolve(mgr.Get().Sort())
	if err != nil {
		return err
	}

	apply := func(s *settings.Settings) {
		if interval > 0 {
			s.RefreshInterval = interval
		}
		if flags.Display != "" {
			s.DisplayMode = settings.DisplayMode(flags.Display)
		}
		s.SortKey = spec.Key
		s.SortDirection = spec.Direction
	}

	next := mgr.Get()
	apply(&next)
	if err := next.Validate(); err != nil {
		return err
	}

	if err := mgr.Update(apply); err != nil {
		log.Warn("saving flag overrides: %s", errors.Summary(err))
	}
	return nil
}

// newDashboard wires the poller, history buffer and settings into a model.
func newDashboard(cfg *config.Config, mgr *settings.Manager, log logger.Logger) monitor.Model {
	client := stats.NewClient(cfg.StatsURL(),
		stats.WithTimeout(cfg.Timeout),
		stats.WithUserAgent(cfg.UserAgent),
		stats.WithLogger(log),
	)
	poller := stats.NewPoller(client, log)

	return monitor.NewModel(poller, history.NewBuffer(), mgr, monitor.Options{
		Timeout:    cfg.Timeout,
		Thresholds: cfg.Monitor.Thresholds,
		Logger:     log,
	})
}

// debugLogPath is where the dashboard logs while it owns the terminal.
func debugLogPath() string {
	return filepath.Join(os.TempDir(), "statboard-debug.log")
}

// monitorCommand runs the dashboard until the user quits.
func monitorCommand(flags MonitorFlags) error {
	cfg, err := loadConfig(flags.Endpoint)
	if err != nil {
		return err
	}

	// Bubble Tea owns stdout, so debug logging goes to a file.
	if logger.DebugEnabled() {
		f, err := tea.LogToFile(debugLogPath(), "statboard")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot open debug log "+debugLogPath(),
				"Unset STATBOARD_DEBUG or check the temp directory is writable")
		}
		defer f.Close()
	}
	log := logger.NewEnvLogger("[monitor]")

	mgr, _ := openSettings(cfg, log)
	if err := applyMonitorFlags(mgr, flags, log); err != nil {
		return err
	}

	model := newDashboard(cfg, mgr, log)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
