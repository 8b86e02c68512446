package cli

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/statboard/internal/config"
	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/rileyhilliard/statboard/internal/filter"
	"github.com/rileyhilliard/statboard/internal/logger"
	"github.com/rileyhilliard/statboard/internal/ranking"
	"github.com/rileyhilliard/statboard/internal/settings"
	"github.com/rileyhilliard/statboard/internal/ui"
	"github.com/spf13/cobra"
)

// SortFlags holds --sort and --order.
type SortFlags struct {
	Key   string
	Order string
}

// AddSortFlags registers --sort and --order on a command.
func AddSortFlags(cmd *cobra.Command, flags *SortFlags) {
	cmd.Flags().StringVar(&flags.Key, "sort", "", "sort key: default, name, location, cpu, memory, disk, uptime, load")
	cmd.Flags().StringVar(&flags.Order, "order", "", "sort direction: asc or desc")
}

// Resolve overlays the flags on base. Unset flags keep base's values.
func (f SortFlags) Resolve(base ranking.Spec) (ranking.Spec, error) {
	spec := base
	if f.Key != "" {
		k, err := ranking.ParseKey(f.Key)
		if err != nil {
			return spec, err
		}
		spec.Key = k
	}
	if f.Order != "" {
		d, err := ranking.ParseDirection(f.Order)
		if err != nil {
			return spec, err
		}
		spec.Direction = d
	}
	return spec, nil
}

// FilterFlags holds --status, --location and --type.
type FilterFlags struct {
	Status   string
	Location string
	Type     string
}

// AddFilterFlags registers --status, --location and --type on a command.
func AddFilterFlags(cmd *cobra.Command, flags *FilterFlags) {
	cmd.Flags().StringVar(&flags.Status, "status", "all", "status filter: all, online, offline")
	cmd.Flags().StringVar(&flags.Location, "location", "", "only hosts in this location")
	cmd.Flags().StringVar(&flags.Type, "type", "", "only hosts of this virtualization type (case-insensitive)")
}

// Criteria converts the flags into filter criteria.
func (f FilterFlags) Criteria() (filter.Criteria, error) {
	status, err := filter.ParseStatus(f.Status)
	if err != nil {
		return filter.Criteria{}, err
	}
	return filter.Criteria{Status: status, Location: f.Location, Type: f.Type}, nil
}

// ParseInterval parses an interval flag into a duration.
// Returns zero duration if the flag is empty.
func ParseInterval(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	duration, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Use one of 1s, 2s, 5s, or 10s.")
	}
	return duration, nil
}

// loadConfig loads the config named by --config (or the discovered one),
// applies an --endpoint override and validates the result.
func loadConfig(endpoint string) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return nil, err
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSettings builds a Manager over the settings file named in cfg.
// A corrupt file is reported as a warning; the Manager falls back to defaults.
func openSettings(cfg *config.Config, log logger.Logger) (*settings.Manager, *settings.FileStore) {
	store := settings.NewFileStore(cfg.SettingsFile)
	mgr := settings.NewManager(store, settings.WithLogger(log))
	if err := mgr.Load(); err != nil && !MachineMode() {
		ui.PrintWarning(fmt.Sprintf("Ignoring saved settings in %s: %s", store.Path(), errors.Summary(err)))
	}
	return mgr, store
}

// loadSettingsConfig loads the config for commands that only need the
// settings file location, so they work before an endpoint is configured.
func loadSettingsConfig() (*config.Config, error) {
	return config.LoadOrDefault(Config())
}
