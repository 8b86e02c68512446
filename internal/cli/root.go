package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rileyhilliard/statboard/internal/config"
	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/rileyhilliard/statboard/internal/logger"
	"github.com/rileyhilliard/statboard/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile   string
	noColor   bool
	colorFlag string
)

// rootCmd is the dashboard itself; every other command is a subcommand.
var rootCmd = &cobra.Command{
	Use:   "statboard",
	Short: "Terminal dashboard for ServerStatus hosts",
	Long: `statboard polls a ServerStatus endpoint and shows every host's CPU,
memory, disk, network and uptime in a live terminal dashboard.

Running statboard with no subcommand starts the dashboard.

Examples:
  statboard --endpoint https://status.example.com
  statboard list --sort cpu --order desc
  statboard settings set locale en-US`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyGlobalFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand(monitorFlags)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.statboard.yaml, then ~/.config/statboard/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&machineMode, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "color mode: auto, always, never (default from output.color)")

	addMonitorFlags(rootCmd, &monitorFlags)
}

// Config returns the --config flag value.
func Config() string {
	return cfgFile
}

// applyGlobalFlags resolves the color mode before any command prints.
// Precedence: --no-color, NO_COLOR (handled by auto), --color, output.color.
func applyGlobalFlags(cmd *cobra.Command, args []string) error {
	if noColor {
		return ui.ApplyColorMode(ui.ColorModeNever)
	}
	mode := colorFlag
	if mode == "" {
		// A broken config is reported by the command that needs it.
		if cfg, err := config.LoadOrDefault(cfgFile); err == nil {
			mode = cfg.Output.Color
		}
	}
	return ui.ApplyColorMode(mode)
}

// Execute runs the root command and exits with the right status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(handleError(err, os.Stdout, os.Stderr))
	}
}

// handleError reports err and returns the process exit code.
func handleError(err error, stdout, stderr io.Writer) int {
	if code, ok := errors.GetExitCode(err); ok {
		return code
	}

	logger.Default().Debug("command failed: %v", err)

	if MachineMode() {
		if jsonErr := WriteJSONFromError(stdout, err); jsonErr != nil {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}

	if isUnknownCommandError(err) {
		msg := err.Error()
		if name := extractUnknownCommand(err); name != "" {
			msg = fmt.Sprintf("Unknown command '%s'", name)
		}
		fmt.Fprintln(stderr, errors.New(errors.ErrConfig, msg, "Run 'statboard --help' to see available commands").Error())
		return 1
	}

	fmt.Fprintln(stderr, err)
	return 1
}

// isUnknownCommandError reports whether cobra rejected the command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "statboard"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
