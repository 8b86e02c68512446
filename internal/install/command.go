// Package install builds the one-click shell command that deploys the
// status agent on a new host.
package install

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	sberrors "github.com/rileyhilliard/statboard/internal/errors"
)

// Downloader names the tool the generated command fetches the script with.
type Downloader string

const (
	Curl Downloader = "curl"
	Wget Downloader = "wget"
)

// ParseDownloader accepts "curl" or "wget" (case-insensitive).
func ParseDownloader(s string) (Downloader, error) {
	switch d := Downloader(strings.ToLower(strings.TrimSpace(s))); d {
	case Curl, Wget:
		return d, nil
	case "":
		return Curl, nil
	}
	return "", sberrors.New(sberrors.ErrInstall,
		fmt.Sprintf("Unknown downloader %q", s),
		"Use curl or wget")
}

// Form holds the agent parameters. Zero-value fields are not meaningful;
// start from Defaults.
type Form struct {
	UID          string
	GID          string
	Pass         string
	Vnstat       bool
	Ping         bool
	Tupd         bool
	Extra        bool
	Notify       bool
	Alias        string
	Type         string
	Loc          string
	Interval     int
	Weight       int
	CN           bool
	VnstatMR     int
	CM           string
	CT           string
	CU           string
	Iface        string
	ExcludeIface string
	IPSource     string
}

// Defaults returns the values the agent script assumes when a parameter is
// absent from the URL.
func Defaults() Form {
	return Form{
		Ping:     true,
		Tupd:     true,
		Extra:    true,
		Notify:   true,
		Interval: 1,
		VnstatMR: 1,
		IPSource: "ip-api.com",
	}
}

// Options controls the shell wrapper around the install URL.
type Options struct {
	Sudo       bool
	Downloader Downloader
}

// Mark describes how a field is required given the rest of the form.
type Mark int

const (
	// Optional fields never block the command.
	Optional Mark = iota
	// Either marks a field on one of the two identity paths before the user
	// has picked one.
	Either
	// Required fields must be filled.
	Required
)

func (m Mark) String() string {
	switch m {
	case Either:
		return "either"
	case Required:
		return "required"
	default:
		return "optional"
	}
}

// RequiredMark reports the requirement level of a field, named by its URL
// parameter. A host identifies itself either by uid, or by gid plus alias.
func (f Form) RequiredMark(param string) Mark {
	uid := strings.TrimSpace(f.UID)
	gid := strings.TrimSpace(f.GID)
	alias := strings.TrimSpace(f.Alias)

	var path string
	switch {
	case uid != "":
		path = "uid"
	case gid != "" || alias != "":
		path = "group"
	}

	switch param {
	case "pass":
		return Required
	case "uid":
		switch path {
		case "":
			return Either
		case "uid":
			return Required
		}
		return Optional
	case "gid", "alias":
		switch path {
		case "":
			return Either
		case "group":
			return Required
		}
		return Optional
	}
	return Optional
}

// Valid reports whether the form carries enough to register a host.
func (f Form) Valid() bool {
	return f.Validate() == nil
}

// Validate checks that pass is set and that the host is identified by uid,
// or by gid and alias together.
func (f Form) Validate() error {
	if strings.TrimSpace(f.Pass) == "" {
		return sberrors.New(sberrors.ErrInstall,
			"Password is required",
			"Pass --pass with the agent password")
	}
	uid := strings.TrimSpace(f.UID)
	gid := strings.TrimSpace(f.GID)
	alias := strings.TrimSpace(f.Alias)
	if uid == "" && (gid == "" || alias == "") {
		return sberrors.New(sberrors.ErrInstall,
			"Host identity is incomplete",
			"Pass --uid, or both --gid and --alias")
	}
	return nil
}

// param is one URL query entry in declaration order.
type param struct {
	name  string
	value func(Form) any
}

var params = []param{
	{"uid", func(f Form) any { return f.UID }},
	{"gid", func(f Form) any { return f.GID }},
	{"pass", func(f Form) any { return f.Pass }},
	{"vnstat", func(f Form) any { return f.Vnstat }},
	{"ping", func(f Form) any { return f.Ping }},
	{"tupd", func(f Form) any { return f.Tupd }},
	{"extra", func(f Form) any { return f.Extra }},
	{"notify", func(f Form) any { return f.Notify }},
	{"alias", func(f Form) any { return f.Alias }},
	{"type", func(f Form) any { return f.Type }},
	{"loc", func(f Form) any { return f.Loc }},
	{"interval", func(f Form) any { return f.Interval }},
	{"weight", func(f Form) any { return f.Weight }},
	{"cn", func(f Form) any { return f.CN }},
	{"vnstat-mr", func(f Form) any { return f.VnstatMR }},
	{"cm", func(f Form) any { return f.CM }},
	{"ct", func(f Form) any { return f.CT }},
	{"cu", func(f Form) any { return f.CU }},
	{"iface", func(f Form) any { return f.Iface }},
	{"exclude-iface", func(f Form) any { return f.ExcludeIface }},
	{"ip-source", func(f Form) any { return f.IPSource }},
}

// Params lists the URL parameter names in the order they are emitted.
func Params() []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.name
	}
	return names
}

// Query returns the encoded query string holding every field that differs
// from Defaults, in declaration order.
func (f Form) Query() string {
	defaults := Defaults()
	var parts []string
	for _, p := range params {
		v := p.value(f)
		if v == p.value(defaults) {
			continue
		}
		var s string
		switch tv := v.(type) {
		case bool:
			s = "0"
			if tv {
				s = "1"
			}
		case int:
			s = strconv.Itoa(tv)
		case string:
			// ip-source keeps whatever differs from the default; other
			// strings are dropped when blank.
			if p.name != "ip-source" && strings.TrimSpace(tv) == "" {
				continue
			}
			s = tv
		}
		parts = append(parts, url.QueryEscape(p.name)+"="+url.QueryEscape(s))
	}
	return strings.Join(parts, "&")
}

// URL resolves the install script path against base and attaches the form's
// query. An empty base resolves against http://localhost.
func URL(base string, f Form) (string, error) {
	if strings.TrimSpace(base) == "" {
		base = "http://localhost"
	}
	b, err := url.Parse(base)
	if err != nil || b.Scheme == "" || b.Host == "" {
		if err == nil {
			err = fmt.Errorf("missing scheme or host")
		}
		return "", sberrors.WrapWithCode(err, sberrors.ErrInstall,
			fmt.Sprintf("Invalid install base URL %q", base),
			"Set install.base_url to an absolute URL such as https://status.example.com")
	}
	u := b.ResolveReference(&url.URL{Path: "i"})
	u.RawQuery = f.Query()
	return u.String(), nil
}

// Build returns the full shell command. It does not validate the form, so a
// partially filled form still previews a command; call Validate first when
// the result is meant to be run.
func Build(base string, f Form, opts Options) (string, error) {
	u, err := URL(base, f)
	if err != nil {
		return "", err
	}

	prefix := ""
	if opts.Sudo {
		prefix = "sudo "
	}

	if opts.Downloader == Wget {
		return fmt.Sprintf(`wget -qO- "%s" | %sbash`, u, prefix), nil
	}
	return fmt.Sprintf(`curl -fsSL "%s" | %sbash`, u, prefix), nil
}
