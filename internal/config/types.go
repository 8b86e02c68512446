package config

import (
	"strings"
	"time"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// DefaultStatsPath is where ServerStatus publishes its host snapshot.
const DefaultStatsPath = "/json/stats.json"

// Config represents the complete .statboard.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Endpoint is the base URL of the status page, e.g. https://status.example.com.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// StatsPath is appended to Endpoint to build the poll URL.
	StatsPath string `yaml:"stats_path" mapstructure:"stats_path"`

	// Timeout bounds a single poll request.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// SettingsFile is where display preferences are persisted.
	// Supports ~, ${HOME} and ${USER}.
	SettingsFile string `yaml:"settings_file" mapstructure:"settings_file"`

	Install InstallConfig `yaml:"install" mapstructure:"install"`
	Monitor MonitorConfig `yaml:"monitor" mapstructure:"monitor"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
}

// InstallConfig controls the one-click agent command builder.
type InstallConfig struct {
	// BaseURL is the server the agent script is served from. Defaults to Endpoint.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Downloader is "curl" or "wget".
	Downloader string `yaml:"downloader" mapstructure:"downloader"`

	Sudo bool `yaml:"sudo" mapstructure:"sudo"`
}

// MonitorConfig controls dashboard rendering.
type MonitorConfig struct {
	Thresholds ThresholdConfig `yaml:"thresholds" mapstructure:"thresholds"`
}

// ThresholdConfig holds warning/critical percentages per resource.
type ThresholdConfig struct {
	CPU  MetricThreshold `yaml:"cpu" mapstructure:"cpu"`
	RAM  MetricThreshold `yaml:"ram" mapstructure:"ram"`
	Disk MetricThreshold `yaml:"disk" mapstructure:"disk"`
}

// MetricThreshold defines when a gauge turns amber or red.
type MetricThreshold struct {
	Warning  int `yaml:"warning" mapstructure:"warning"`
	Critical int `yaml:"critical" mapstructure:"critical"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:      CurrentConfigVersion,
		StatsPath:    DefaultStatsPath,
		Timeout:      10 * time.Second,
		UserAgent:    "statboard",
		SettingsFile: "~/" + GlobalConfigDir + "/settings.yaml",
		Install: InstallConfig{
			Downloader: "curl",
			Sudo:       true,
		},
		Monitor: MonitorConfig{
			Thresholds: ThresholdConfig{
				CPU:  MetricThreshold{Warning: 60, Critical: 80},
				RAM:  MetricThreshold{Warning: 70, Critical: 90},
				Disk: MetricThreshold{Warning: 70, Critical: 90},
			},
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// StatsURL returns the full poll URL.
func (c *Config) StatsURL() string {
	return strings.TrimRight(c.Endpoint, "/") + c.StatsPath
}

// InstallBaseURL returns the base for agent install links, falling back to
// the status endpoint.
func (c *Config) InstallBaseURL() string {
	if c.Install.BaseURL != "" {
		return c.Install.BaseURL
	}
	return c.Endpoint
}
