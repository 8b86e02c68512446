package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/rileyhilliard/statboard/internal/history"
	"github.com/rileyhilliard/statboard/internal/i18n"
	"github.com/rileyhilliard/statboard/internal/logger"
	"github.com/rileyhilliard/statboard/internal/ranking"
	"github.com/rileyhilliard/statboard/internal/settings"
	"github.com/rileyhilliard/statboard/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var settingsResetYes bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change dashboard preferences",
	Long: `Show and change the display preferences the dashboard saves between runs:
units, refresh interval, layout, panels, chart window, language, theme and sort.

With no subcommand, prints every setting.

Examples:
  statboard settings
  statboard settings get locale
  statboard settings set refresh_interval 5s
  statboard settings edit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSettings(func(mgr *settings.Manager, _ *settings.FileStore) error {
			return settingsGet(cmd.OutOrStdout(), mgr, "")
		})
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one setting, or all of them",
	Args:  cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return settings.Keys(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		key := ""
		if len(args) == 1 {
			key = args[0]
		}
		return withSettings(func(mgr *settings.Manager, _ *settings.FileStore) error {
			return settingsGet(cmd.OutOrStdout(), mgr, key)
		})
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting. Values are validated before anything is saved.

Keys:
  unit_type           binary, decimal
  refresh_interval    1s, 2s, 5s, 10s
  display_mode        card, row
  show_summary        true, false
  show_filters        true, false
  show_cpu_chart      true, false
  cpu_chart_duration  1, 3, 5 (minutes)
  locale              zh-CN, zh-TW, en-US
  theme               auto, dark, light
  sort_key            default, name, location, cpu, memory, disk, uptime, load
  sort_direction      asc, desc`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSettings(func(mgr *settings.Manager, _ *settings.FileStore) error {
			return settingsSet(cmd.OutOrStdout(), mgr, args[0], args[1])
		})
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings (keeps the language)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSettings(func(mgr *settings.Manager, _ *settings.FileStore) error {
			if !settingsResetYes && !MachineMode() {
				confirmed, err := confirmReset()
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			return settingsReset(cmd.OutOrStdout(), mgr)
		})
	},
}

var settingsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit settings in an interactive form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSettings(func(mgr *settings.Manager, _ *settings.FileStore) error {
			return settingsEdit(cmd.OutOrStdout(), mgr)
		})
	},
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettingsConfig()
		if err != nil {
			return err
		}
		return settingsPath(cmd.OutOrStdout(), settings.NewFileStore(cfg.SettingsFile))
	},
}

func init() {
	settingsResetCmd.Flags().BoolVarP(&settingsResetYes, "yes", "y", false, "skip the confirmation prompt")

	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsEditCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

// withSettings loads config and settings, then runs fn.
func withSettings(fn func(*settings.Manager, *settings.FileStore) error) error {
	cfg, err := loadSettingsConfig()
	if err != nil {
		return err
	}
	mgr, store := openSettings(cfg, logger.NewEnvLogger("[settings]"))
	return fn(mgr, store)
}

// settingsGet prints one key, or every key when key is empty.
func settingsGet(w io.Writer, mgr *settings.Manager, key string) error {
	current := mgr.Get()

	if key != "" {
		value, err := current.Get(key)
		if err != nil {
			return err
		}
		if MachineMode() {
			return WriteJSONSuccess(w, map[string]string{key: value})
		}
		fmt.Fprintln(w, value)
		return nil
	}

	pairs := current.Pairs()
	if MachineMode() {
		data := make(map[string]string, len(pairs))
		for _, p := range pairs {
			data[p[0]] = p[1]
		}
		return WriteJSONSuccess(w, data)
	}

	rows := make([][]string, len(pairs))
	for i, p := range pairs {
		rows[i] = []string{p[0], p[1]}
	}
	fmt.Fprintln(w, ui.RenderSimpleTable(ui.AutoColumns([]string{"Setting", "Value"}, rows), rows))
	return nil
}

// settingsSet validates and saves one key.
func settingsSet(w io.Writer, mgr *settings.Manager, key, value string) error {
	if err := mgr.Set(key, value); err != nil {
		return err
	}
	saved, _ := mgr.Get().Get(key)
	if MachineMode() {
		return WriteJSONSuccess(w, map[string]string{key: saved})
	}
	fmt.Fprintf(w, "%s %s = %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), key, saved)
	return nil
}

// settingsReset restores defaults.
func settingsReset(w io.Writer, mgr *settings.Manager) error {
	if err := mgr.Reset(); err != nil {
		return err
	}
	if MachineMode() {
		return settingsGet(w, mgr, "")
	}
	fmt.Fprintf(w, "%s Settings restored to defaults\n", ui.SuccessStyle().Render(ui.SymbolSuccess))
	return nil
}

// settingsPath prints where settings are stored.
func settingsPath(w io.Writer, store *settings.FileStore) error {
	if MachineMode() {
		return WriteJSONSuccess(w, map[string]string{"path": store.Path()})
	}
	fmt.Fprintln(w, store.Path())
	return nil
}

func confirmReset() (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, errors.New(errors.ErrSettings,
			"Reset needs confirmation",
			"Pass --yes to reset without a prompt")
	}

	var confirm bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Restore default settings?").
				Description("Your language choice is kept").
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, errors.WrapWithCode(err, errors.ErrSettings,
			"Couldn't get your input",
			"Try again or pass --yes")
	}
	return confirm, nil
}

// settingsForm builds the edit form over s. Submitting writes into s.
func settingsForm(s *settings.Settings) *huh.Form {
	locales := make([]huh.Option[i18n.Locale], len(i18n.Locales))
	for i, l := range i18n.Locales {
		info := l.Info()
		locales[i] = huh.NewOption(info.Flag+" "+info.Name, l)
	}

	intervals := make([]huh.Option[time.Duration], len(settings.RefreshIntervals))
	for i, d := range settings.RefreshIntervals {
		intervals[i] = huh.NewOption(d.String(), d)
	}

	windows := make([]huh.Option[history.Window], len(history.Windows))
	for i, win := range history.Windows {
		windows[i] = huh.NewOption(fmt.Sprintf("%d min", int(win)), win)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[i18n.Locale]().
				Title("Language").
				Options(locales...).
				Value(&s.Locale),
			huh.NewSelect[settings.Theme]().
				Title("Theme").
				Description("auto follows the terminal background").
				Options(huh.NewOptions(settings.Themes...)...).
				Value(&s.Theme),
			huh.NewSelect[settings.UnitType]().
				Title("Byte units").
				Options(
					huh.NewOption("binary (KiB, MiB, GiB)", settings.UnitBinary),
					huh.NewOption("decimal (KB, MB, GB)", settings.UnitDecimal),
				).
				Value(&s.UnitType),
			huh.NewSelect[settings.DisplayMode]().
				Title("Layout").
				Options(
					huh.NewOption("cards", settings.DisplayCard),
					huh.NewOption("rows", settings.DisplayRow),
				).
				Value(&s.DisplayMode),
		),
		huh.NewGroup(
			huh.NewSelect[time.Duration]().
				Title("Refresh interval").
				Options(intervals...).
				Value(&s.RefreshInterval),
			huh.NewSelect[ranking.Key]().
				Title("Sort by").
				Options(huh.NewOptions(ranking.Keys...)...).
				Value(&s.SortKey),
			huh.NewSelect[ranking.Direction]().
				Title("Sort direction").
				Options(huh.NewOptions(ranking.Desc, ranking.Asc)...).
				Value(&s.SortDirection),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show CPU chart").
				Value(&s.ShowCPUChart),
			huh.NewSelect[history.Window]().
				Title("CPU chart window").
				Options(windows...).
				Value(&s.CPUChartDuration),
			huh.NewConfirm().
				Title("Show summary panel").
				Value(&s.ShowSummary),
			huh.NewConfirm().
				Title("Show filter bar").
				Value(&s.ShowFilters),
		),
	)
}

// settingsEdit runs the form and saves the result in one update.
func settingsEdit(w io.Writer, mgr *settings.Manager) error {
	if MachineMode() || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New(errors.ErrSettings,
			"settings edit needs an interactive terminal",
			"Use 'statboard settings set <key> <value>' instead")
	}

	edited := mgr.Get()
	if err := settingsForm(&edited).Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrSettings,
			"Couldn't get your input",
			"Try again or use 'statboard settings set'")
	}

	if err := mgr.Update(func(s *settings.Settings) { *s = edited }); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s Settings saved\n", ui.SuccessStyle().Render(ui.SymbolSuccess))
	return nil
}
