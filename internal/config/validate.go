package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rileyhilliard/statboard/internal/errors"
)

var validColorModes = map[string]bool{"auto": true, "always": true, "never": true}

var validDownloaders = map[string]bool{"curl": true, "wget": true}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but statboard only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade statboard to read this config")
	}

	if err := ValidateEndpoint(cfg.Endpoint); err != nil {
		return err
	}

	if !strings.HasPrefix(cfg.StatsPath, "/") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("stats_path '%s' must start with /", cfg.StatsPath),
			"Use the default: "+DefaultStatsPath)
	}

	if cfg.Timeout <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("timeout must be positive, got %s", cfg.Timeout),
			"Set timeout to a duration like 10s")
	}

	if cfg.Install.BaseURL != "" {
		if err := validateURL("install.base_url", cfg.Install.BaseURL); err != nil {
			return err
		}
	}

	if !validDownloaders[cfg.Install.Downloader] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("install.downloader '%s' isn't supported", cfg.Install.Downloader),
			"Use curl or wget")
	}

	if !validColorModes[cfg.Output.Color] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("output.color '%s' isn't valid", cfg.Output.Color),
			"Use auto, always, or never")
	}

	thresholds := []struct {
		name string
		t    MetricThreshold
	}{
		{"cpu", cfg.Monitor.Thresholds.CPU},
		{"ram", cfg.Monitor.Thresholds.RAM},
		{"disk", cfg.Monitor.Thresholds.Disk},
	}
	for _, th := range thresholds {
		if err := validateThreshold(th.name, th.t); err != nil {
			return err
		}
	}

	return nil
}

// ValidateEndpoint checks that the status endpoint is an absolute http(s) URL.
func ValidateEndpoint(endpoint string) error {
	if endpoint == "" {
		return errors.New(errors.ErrConfig,
			"No status endpoint configured",
			"Set endpoint in "+ConfigFileName+", export STATBOARD_ENDPOINT, or pass --endpoint")
	}
	return validateURL("endpoint", endpoint)
}

func validateURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("%s '%s' isn't a valid URL", field, raw),
			"Use a full URL like https://status.example.com")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s '%s' must use http or https", field, raw),
			"Use a full URL like https://status.example.com")
	}
	if u.Host == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s '%s' has no host", field, raw),
			"Use a full URL like https://status.example.com")
	}
	return nil
}

func validateThreshold(name string, t MetricThreshold) error {
	if t.Warning < 0 || t.Critical > 100 || t.Warning >= t.Critical {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("monitor.thresholds.%s must satisfy 0 <= warning < critical <= 100 (got %d/%d)", name, t.Warning, t.Critical),
			"Try warning: 70 and critical: 90")
	}
	return nil
}
