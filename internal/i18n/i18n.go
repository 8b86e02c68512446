// Package i18n holds the dashboard's message tables and picks a locale from
// the environment.
package i18n

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported UI language.
type Locale string

const (
	ZhCN Locale = "zh-CN"
	ZhTW Locale = "zh-TW"
	EnUS Locale = "en-US"
)

// DefaultLocale is used when nothing else matches.
const DefaultLocale = ZhCN

// Locales lists supported locales in cycling order.
var Locales = []Locale{ZhCN, ZhTW, EnUS}

// Info is a locale's display name and flag.
type Info struct {
	Name string
	Flag string
}

var localeInfo = map[Locale]Info{
	ZhCN: {Name: "简体中文", Flag: "🇨🇳"},
	ZhTW: {Name: "繁體中文", Flag: "🇹🇼"},
	EnUS: {Name: "English", Flag: "🇺🇸"},
}

// Valid reports whether l is supported.
func (l Locale) Valid() bool {
	return slices.Contains(Locales, l)
}

// Info returns the locale's display name and flag.
func (l Locale) Info() Info {
	return localeInfo[l]
}

// Next returns the locale after l, wrapping around.
func (l Locale) Next() Locale {
	i := slices.Index(Locales, l)
	return Locales[(i+1)%len(Locales)]
}

// Tag returns the language tag for collation.
func (l Locale) Tag() language.Tag {
	if !l.Valid() {
		return language.Und
	}
	return language.MustParse(string(l))
}

var matcher = language.NewMatcher([]language.Tag{
	language.MustParse(string(ZhCN)),
	language.MustParse(string(ZhTW)),
	language.MustParse(string(EnUS)),
})

// Match picks the closest supported locale for a BCP 47 or POSIX locale
// string such as "en_GB.UTF-8" or "zh-HK". It returns DefaultLocale when
// nothing is close enough.
func Match(raw string) Locale {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" || raw == "C" || raw == "POSIX" {
		return DefaultLocale
	}

	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return DefaultLocale
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultLocale
	}
	return Locales[idx]
}

// Detect reads LC_ALL, LC_MESSAGES and LANG in precedence order.
func Detect() Locale {
	return DetectFrom(os.Getenv)
}

// DetectFrom is Detect with an injectable environment lookup.
func DetectFrom(getenv func(string) string) Locale {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := getenv(key); v != "" {
			return Match(v)
		}
	}
	return DefaultLocale
}

// Translator looks up messages for one locale.
type Translator struct {
	locale Locale
}

// New creates a Translator. Unsupported locales fall back to DefaultLocale.
func New(l Locale) *Translator {
	if !l.Valid() {
		l = DefaultLocale
	}
	return &Translator{locale: l}
}

// Locale returns the translator's locale.
func (t *Translator) Locale() Locale {
	return t.locale
}

// T returns the message for key, falling back to English and then the key.
func (t *Translator) T(key string) string {
	if msg, ok := messages[t.locale][key]; ok {
		return msg
	}
	if msg, ok := messages[EnUS][key]; ok {
		return msg
	}
	return key
}

// Tf formats the message for key with args.
func (t *Translator) Tf(key string, args ...interface{}) string {
	return fmt.Sprintf(t.T(key), args...)
}
