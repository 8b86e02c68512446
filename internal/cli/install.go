package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/statboard/internal/config"
	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/rileyhilliard/statboard/internal/install"
	"github.com/rileyhilliard/statboard/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// InstallOptions holds options for the install command.
type InstallOptions struct {
	Form        install.Form
	BaseURL     string
	Downloader  string
	Sudo        bool
	SudoSet     bool // --sudo was given explicitly
	Interactive bool
}

var installOpts = InstallOptions{Form: install.Defaults()}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Print the one-click agent install command",
	Long: `Build the shell command that installs and registers the status agent on
a new host. Run the printed command on that host.

A host identifies itself either by --uid, or by --gid and --alias together.
--pass is always required. Only values that differ from the agent's
defaults are added to the URL.

Examples:
  statboard install --uid 42 --pass s3cret
  statboard install --gid hk --alias hk-01 --pass s3cret --loc "Hong Kong" --type kvm
  statboard install --interactive`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := installOpts
		opts.SudoSet = cmd.Flags().Changed("sudo")
		return installCommand(cmd.OutOrStdout(), opts)
	},
}

func init() {
	f := installCmd.Flags()
	form := &installOpts.Form

	f.StringVar(&form.UID, "uid", form.UID, "host uid (alternative to --gid + --alias)")
	f.StringVar(&form.GID, "gid", form.GID, "group id, used with --alias")
	f.StringVar(&form.Pass, "pass", form.Pass, "agent password (required)")
	f.StringVar(&form.Alias, "alias", form.Alias, "host alias, used with --gid")
	f.StringVar(&form.Type, "type", form.Type, "virtualization type shown on the card, e.g. kvm")
	f.StringVar(&form.Loc, "loc", form.Loc, "location shown on the card")
	f.IntVar(&form.Interval, "interval", form.Interval, "report interval in seconds")
	f.IntVar(&form.Weight, "weight", form.Weight, "sort weight; higher sorts first")
	f.BoolVar(&form.Vnstat, "vnstat", form.Vnstat, "use vnstat for monthly traffic")
	f.IntVar(&form.VnstatMR, "vnstat-mr", form.VnstatMR, "vnstat month rotate day")
	f.BoolVar(&form.Ping, "ping", form.Ping, "report carrier latency")
	f.BoolVar(&form.Tupd, "tupd", form.Tupd, "report TCP/UDP/process/thread counts")
	f.BoolVar(&form.Extra, "extra", form.Extra, "report extra host details")
	f.BoolVar(&form.Notify, "notify", form.Notify, "enable notifications for this host")
	f.BoolVar(&form.CN, "cn", form.CN, "use mainland China mirrors")
	f.StringVar(&form.CM, "cm", form.CM, "China Mobile probe target")
	f.StringVar(&form.CT, "ct", form.CT, "China Telecom probe target")
	f.StringVar(&form.CU, "cu", form.CU, "China Unicom probe target")
	f.StringVar(&form.Iface, "iface", form.Iface, "only count traffic on these interfaces")
	f.StringVar(&form.ExcludeIface, "exclude-iface", form.ExcludeIface, "skip traffic on these interfaces")
	f.StringVar(&form.IPSource, "ip-source", form.IPSource, "service used to look up the public IP")

	f.StringVar(&installOpts.BaseURL, "base-url", "", "server the agent script is served from (default install.base_url, then endpoint)")
	f.StringVar(&installOpts.Downloader, "downloader", "", "curl or wget (default install.downloader)")
	f.BoolVar(&installOpts.Sudo, "sudo", true, "prefix bash with sudo (default install.sudo)")
	f.BoolVarP(&installOpts.Interactive, "interactive", "i", false, "fill in the fields with a form")

	rootCmd.AddCommand(installCmd)
}

// InstallOutput is the JSON payload of `statboard install --json`.
type InstallOutput struct {
	Command string `json:"command"`
	URL     string `json:"url"`
}

// resolveInstallOptions fills unset flags from config.
func resolveInstallOptions(cfg *config.Config, opts InstallOptions) (string, install.Options, error) {
	base := opts.BaseURL
	if base == "" {
		base = cfg.InstallBaseURL()
	}
	if strings.TrimSpace(base) == "" {
		return "", install.Options{}, errors.New(errors.ErrInstall,
			"No install base URL",
			"Pass --base-url, or set install.base_url or endpoint in "+config.ConfigFileName)
	}

	downloaderName := opts.Downloader
	if downloaderName == "" {
		downloaderName = cfg.Install.Downloader
	}
	downloader, err := install.ParseDownloader(downloaderName)
	if err != nil {
		return "", install.Options{}, err
	}

	sudo := cfg.Install.Sudo
	if opts.SudoSet {
		sudo = opts.Sudo
	}

	return base, install.Options{Sudo: sudo, Downloader: downloader}, nil
}

// installCommand validates the form and prints the command.
func installCommand(w io.Writer, opts InstallOptions) error {
	cfg, err := loadSettingsConfig()
	if err != nil {
		return err
	}

	base, buildOpts, err := resolveInstallOptions(cfg, opts)
	if err != nil {
		return err
	}

	form := opts.Form
	if opts.Interactive {
		if MachineMode() || !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New(errors.ErrInstall,
				"--interactive needs a terminal",
				"Pass the fields as flags instead")
		}
		cancelled, err := runInstallForm(&form)
		if err != nil {
			return err
		}
		if cancelled {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	if err := form.Validate(); err != nil {
		return err
	}

	command, err := install.Build(base, form, buildOpts)
	if err != nil {
		return err
	}

	if MachineMode() {
		u, _ := install.URL(base, form)
		return WriteJSONSuccess(w, InstallOutput{Command: command, URL: u})
	}

	fmt.Fprintln(w, ui.MutedStyle().Render("Run this on the new host:"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, command)
	return nil
}

// markLabel describes a field's requirement for form descriptions.
func markLabel(f *install.Form, param string) string {
	switch f.RequiredMark(param) {
	case install.Required:
		return "Required"
	case install.Either:
		return "Required: uid, or gid with alias"
	}
	return "Optional"
}

func validateInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

// installForm builds the interactive form. Numeric fields are edited as
// strings and parsed back by applyNumbers.
func installForm(f *install.Form, interval, weight *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("UID").
				DescriptionFunc(func() string { return markLabel(f, "uid") }, f).
				Value(&f.UID),
			huh.NewInput().
				Title("Group ID").
				DescriptionFunc(func() string { return markLabel(f, "gid") }, f).
				Value(&f.GID),
			huh.NewInput().
				Title("Alias").
				DescriptionFunc(func() string { return markLabel(f, "alias") }, f).
				Value(&f.Alias),
			huh.NewInput().
				Title("Password").
				Description("Required").
				EchoMode(huh.EchoModePassword).
				Value(&f.Pass).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("password is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().Title("Location").Placeholder("Tokyo").Value(&f.Loc),
			huh.NewInput().Title("Type").Placeholder("kvm").Value(&f.Type),
			huh.NewInput().Title("Weight").Description("Higher sorts first").Value(weight).Validate(validateInt),
			huh.NewInput().Title("Report interval (seconds)").Value(interval).Validate(validateInt),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Report latency").Value(&f.Ping),
			huh.NewConfirm().Title("Report TCP/UDP/process counts").Value(&f.Tupd),
			huh.NewConfirm().Title("Report extra details").Value(&f.Extra),
			huh.NewConfirm().Title("Notifications").Value(&f.Notify),
			huh.NewConfirm().Title("Use vnstat for monthly traffic").Value(&f.Vnstat),
			huh.NewConfirm().Title("Use mainland China mirrors").Value(&f.CN),
		),
	)
}

// applyNumbers parses the string-edited numeric fields back into f.
func applyNumbers(f *install.Form, interval, weight string) {
	if n, err := strconv.Atoi(strings.TrimSpace(interval)); err == nil {
		f.Interval = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(weight)); err == nil {
		f.Weight = n
	}
}

// runInstallForm edits f in place. It reports cancelled when the user aborts.
func runInstallForm(f *install.Form) (cancelled bool, err error) {
	interval := strconv.Itoa(f.Interval)
	weight := strconv.Itoa(f.Weight)

	if err := installForm(f, &interval, &weight).Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return true, nil
		}
		return false, errors.WrapWithCode(err, errors.ErrInstall,
			"Couldn't get your input",
			"Try again or pass the fields as flags")
	}
	applyNumbers(f, interval, weight)
	return false, nil
}
