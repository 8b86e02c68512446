package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".statboard.yaml"
	// GlobalConfigDir is the directory for global config, relative to home.
	GlobalConfigDir = ".config/statboard"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. STATBOARD_ENDPOINT.
	EnvPrefix = "STATBOARD"
)

// Load reads config from the specified path. An empty path loads defaults
// plus environment overrides only.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found",
					"Create "+ConfigFileName+" or specify one with --config")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .statboard.yaml in current directory
// 3. ~/.config/statboard/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	if home, _ := os.UserHomeDir(); home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault finds and loads the config, or returns defaults (with env
// overrides applied) when no file exists.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		source := path
		if source == "" {
			source = "environment overrides"
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the values in "+source)
	}

	cfg.SettingsFile = ExpandPath(cfg.SettingsFile)

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it during
// Unmarshal; viper only consults the environment for keys it knows about.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("endpoint", d.Endpoint)
	v.SetDefault("stats_path", d.StatsPath)
	v.SetDefault("timeout", d.Timeout.String())
	v.SetDefault("user_agent", d.UserAgent)
	v.SetDefault("settings_file", d.SettingsFile)
	v.SetDefault("install.base_url", d.Install.BaseURL)
	v.SetDefault("install.downloader", d.Install.Downloader)
	v.SetDefault("install.sudo", d.Install.Sudo)
	v.SetDefault("monitor.thresholds.cpu.warning", d.Monitor.Thresholds.CPU.Warning)
	v.SetDefault("monitor.thresholds.cpu.critical", d.Monitor.Thresholds.CPU.Critical)
	v.SetDefault("monitor.thresholds.ram.warning", d.Monitor.Thresholds.RAM.Warning)
	v.SetDefault("monitor.thresholds.ram.critical", d.Monitor.Thresholds.RAM.Critical)
	v.SetDefault("monitor.thresholds.disk.warning", d.Monitor.Thresholds.Disk.Warning)
	v.SetDefault("monitor.thresholds.disk.critical", d.Monitor.Thresholds.Disk.Critical)
	v.SetDefault("output.color", d.Output.Color)
}
