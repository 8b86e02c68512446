package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/rileyhilliard/statboard/internal/filter"
	"github.com/rileyhilliard/statboard/internal/format"
	"github.com/rileyhilliard/statboard/internal/i18n"
	"github.com/rileyhilliard/statboard/internal/logger"
	"github.com/rileyhilliard/statboard/internal/ranking"
	"github.com/rileyhilliard/statboard/internal/stats"
	"github.com/rileyhilliard/statboard/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Output formats for `statboard list`.
const (
	FormatTable      = "table"
	FormatJSON       = "json"
	FormatPrometheus = "prometheus"
)

// ListOptions holds options for the list command.
type ListOptions struct {
	Endpoint string
	Format   string
	Sort     SortFlags
	Filter   FilterFlags
}

var listOpts ListOptions

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print a one-shot snapshot of every host",
	Long: `Fetch the status endpoint once, filter and sort the hosts, and print them.

Sorting defaults to the dashboard's saved sort. Formats:
  table       aligned columns (default)
  json        the JSON envelope, same as --json
  prometheus  text exposition, e.g. for node_exporter's textfile collector

Examples:
  statboard list
  statboard list --sort cpu --order desc --status online
  statboard list --location Tokyo --json
  statboard list --format prometheus > /var/lib/node_exporter/statboard.prom`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCommand(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), listOpts)
	},
}

func init() {
	listCmd.Flags().StringVar(&listOpts.Endpoint, "endpoint", "", "status page base URL (overrides config)")
	listCmd.Flags().StringVar(&listOpts.Format, "format", FormatTable, "output format: table, json, prometheus")
	AddSortFlags(listCmd, &listOpts.Sort)
	AddFilterFlags(listCmd, &listOpts.Filter)
	rootCmd.AddCommand(listCmd)
}

// ListOutput is the JSON payload of `statboard list --json`.
type ListOutput struct {
	Endpoint string             `json:"endpoint"`
	Updated  int64              `json:"updated"`
	Sort     string             `json:"sort"`
	Summary  ListSummary        `json:"summary"`
	Hosts    []stats.HostStatus `json:"hosts"`
}

// ListSummary counts the whole fleet, before filtering.
type ListSummary struct {
	Total        int      `json:"total"`
	Online       int      `json:"online"`
	Offline      int      `json:"offline"`
	OfflineHosts []string `json:"offline_hosts,omitempty"`
}

// resolveFormat reconciles --format with the global --json flag.
func resolveFormat(flag string) (string, error) {
	if MachineMode() {
		return FormatJSON, nil
	}
	switch f := strings.ToLower(strings.TrimSpace(flag)); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatPrometheus:
		return f, nil
	}
	return "", errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown format '%s'", flag),
		"Use table, json, or prometheus")
}

// listCommand fetches one snapshot and prints it.
func listCommand(ctx context.Context, stdout, stderr io.Writer, opts ListOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	outFormat, err := resolveFormat(opts.Format)
	if err != nil {
		return err
	}
	criteria, err := opts.Filter.Criteria()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.Endpoint)
	if err != nil {
		return err
	}

	log := logger.NewEnvLogger("[list]")
	mgr, _ := openSettings(cfg, log)
	prefs := mgr.Get()

	spec, err := opts.Sort.Resolve(prefs.Sort())
	if err != nil {
		return err
	}

	client := stats.NewClient(cfg.StatsURL(),
		stats.WithTimeout(cfg.Timeout),
		stats.WithUserAgent(cfg.UserAgent),
		stats.WithLogger(log),
	)

	fetchCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	var spinner *ui.Spinner
	if outFormat == FormatTable && isTerminal(stderr) {
		spinner = ui.NewSpinner("Fetching " + cfg.StatsURL())
		spinner.SetWriter(stderr)
		spinner.Start()
	}

	snap, err := client.Fetch(fetchCtx)
	if spinner != nil {
		if err != nil {
			spinner.Fail()
		} else {
			spinner.SetLabel(fmt.Sprintf("Fetched %d hosts from %s", len(snap.Servers), cfg.StatsURL()))
			spinner.Success()
		}
	}
	if err != nil {
		return err
	}

	sorter := ranking.NewSorter(prefs.Locale.Tag())
	hosts := sorter.Sort(filter.Apply(snap.Servers, criteria), spec)
	summary := filter.Summarize(snap.Servers)

	switch outFormat {
	case FormatJSON:
		return WriteJSONSuccess(stdout, ListOutput{
			Endpoint: cfg.StatsURL(),
			Updated:  snap.Updated,
			Sort:     spec.String(),
			Summary: ListSummary{
				Total:        summary.Total,
				Online:       summary.Online,
				Offline:      summary.Offline,
				OfflineHosts: summary.OfflineNames,
			},
			Hosts: hosts,
		})
	case FormatPrometheus:
		return stats.WriteExposition(stdout, hosts)
	}

	tr := i18n.New(prefs.Locale)
	fm := format.New(format.Units(prefs.UnitType), tr)

	if len(hosts) == 0 {
		fmt.Fprintln(stdout, ui.MutedStyle().Render(tr.T("dashboard.noServers")))
	} else {
		titles, rows := hostTable(hosts, tr, fm)
		fmt.Fprintln(stdout, ui.RenderSimpleTable(ui.AutoColumns(titles, rows), rows))
	}
	fmt.Fprint(stdout, ui.RenderFleetSummary(ui.FleetSummary{
		Total:        summary.Total,
		Online:       summary.Online,
		Offline:      summary.Offline,
		OfflineNames: summary.OfflineNames,
	}))
	return nil
}

// hostTable builds localized column titles and one row per host.
func hostTable(hosts []stats.HostStatus, tr *i18n.Translator, fm format.Formatter) ([]string, [][]string) {
	titles := []string{
		tr.T("sort.name"),
		tr.T("filters.location"),
		tr.T("filters.type"),
		tr.T("filters.status"),
		tr.T("server.uptime"),
		tr.T("server.load"),
		tr.T("server.cpu"),
		tr.T("server.memory"),
		tr.T("server.disk"),
		tr.T("server.network"),
	}

	rows := make([][]string, 0, len(hosts))
	for _, h := range hosts {
		status := ui.SymbolSuccess + " " + tr.T("status.online")
		if !h.IsOnline() {
			status = ui.SymbolFail + " " + tr.T("status.offline")
		}

		cpu := "-"
		if v, ok := h.CPUValue(); ok {
			cpu = format.CPU(v)
		}
		load := "-"
		if h.HasLoad() {
			load = format.Load(h.Load1, h.Load5, h.Load15)
		}
		uptime := h.Uptime
		if uptime == "" {
			uptime = "-"
		}

		rows = append(rows, []string{
			h.DisplayName(),
			h.Location,
			h.Type,
			status,
			uptime,
			load,
			cpu,
			format.Percent(h.MemoryPercent()),
			format.Percent(h.DiskPercent()),
			"↓" + fm.Speed(h.NetworkRx) + " ↑" + fm.Speed(h.NetworkTx),
		})
	}
	return titles, rows
}

// isTerminal reports whether w is a terminal, for deciding on spinners.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
