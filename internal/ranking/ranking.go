// Package ranking orders host records for display.
//
// The default order puts heavier weights first, then online hosts, then sorts
// by display name. Keyed orders compare one extracted value per host. Numeric
// keys use -1 as a "no data" sentinel, and hosts without data always sort
// last whichever direction is chosen.
package ranking

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/rileyhilliard/statboard/internal/stats"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Key selects what hosts are compared by.
type Key string

const (
	KeyDefault  Key = "default"
	KeyName     Key = "name"
	KeyLocation Key = "location"
	KeyCPU      Key = "cpu"
	KeyMemory   Key = "memory"
	KeyDisk     Key = "disk"
	KeyUptime   Key = "uptime"
	KeyLoad     Key = "load"
)

// Keys lists every key in the order the dashboard cycles through them.
var Keys = []Key{KeyDefault, KeyName, KeyLocation, KeyCPU, KeyMemory, KeyDisk, KeyUptime, KeyLoad}

// Direction is ascending or descending. It is ignored by KeyDefault.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Spec is a sort key plus direction.
type Spec struct {
	Key       Key
	Direction Direction
}

// Default is the spec used when nothing is configured.
var Default = Spec{Key: KeyDefault, Direction: Desc}

// Missing is the sentinel returned by numeric extractors when a host has no data.
const Missing = -1.0

// Next returns the key after k, wrapping around.
func (k Key) Next() Key {
	i := slices.Index(Keys, k)
	return Keys[(i+1)%len(Keys)]
}

// Numeric reports whether k compares extracted numbers.
func (k Key) Numeric() bool {
	return numericExtractors[k] != nil
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// Arrow returns a one-character indicator for headers.
func (d Direction) Arrow() string {
	if d == Asc {
		return "↑"
	}
	return "↓"
}

// String renders the spec as "cpu desc", or "default".
func (s Spec) String() string {
	if s.Key == KeyDefault {
		return string(KeyDefault)
	}
	return fmt.Sprintf("%s %s", s.Key, s.Direction)
}

// ParseKey parses a sort key name, case-insensitively.
func ParseKey(s string) (Key, error) {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Keys, k) {
		return k, nil
	}
	names := make([]string, len(Keys))
	for i, key := range Keys {
		names[i] = string(key)
	}
	return "", errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown sort key '%s'", s),
		"Use one of: "+strings.Join(names, ", "))
}

// ParseDirection parses "asc" or "desc", case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Asc, Desc:
		return d, nil
	}
	return "", errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown sort direction '%s'", s),
		"Use asc or desc")
}

var (
	dayPattern  = regexp.MustCompile(`(\d+) ?(?:天|days?)`)
	timePattern = regexp.MustCompile(`(\d{2}):(\d{2}):(\d{2})`)
)

// ParseUptime converts an uptime string to seconds. It understands "N 天",
// "N days" and "HH:MM:SS". Anything else, including "", returns Missing.
func ParseUptime(uptime string) float64 {
	if strings.TrimSpace(uptime) == "" {
		return Missing
	}
	if m := dayPattern.FindStringSubmatch(uptime); m != nil {
		days, err := strconv.Atoi(m[1])
		if err != nil {
			return Missing
		}
		return float64(days) * 86400
	}
	if m := timePattern.FindStringSubmatch(uptime); m != nil {
		h, _ := strconv.Atoi(m[1])
		mi, _ := strconv.Atoi(m[2])
		s, _ := strconv.Atoi(m[3])
		return float64(h*3600 + mi*60 + s)
	}
	return Missing
}

// CPUPercent returns the CPU gauge or Missing.
func CPUPercent(h stats.HostStatus) float64 {
	if v, ok := h.CPUValue(); ok {
		return v
	}
	return Missing
}

// MemoryPercent returns memory usage or Missing when total is unknown.
func MemoryPercent(h stats.HostStatus) float64 {
	if h.MemoryTotal <= 0 || math.IsNaN(h.MemoryTotal) {
		return Missing
	}
	return h.MemoryUsed / h.MemoryTotal * 100
}

// DiskPercent returns disk usage or Missing when total is unknown.
func DiskPercent(h stats.HostStatus) float64 {
	if h.HDDTotal <= 0 || math.IsNaN(h.HDDTotal) {
		return Missing
	}
	return h.HDDUsed / h.HDDTotal * 100
}

// LoadValue returns the 1-minute load or Missing.
func LoadValue(h stats.HostStatus) float64 {
	if v, ok := h.LoadValue(); ok {
		return v
	}
	return Missing
}

var numericExtractors = map[Key]func(stats.HostStatus) float64{
	KeyCPU:    CPUPercent,
	KeyMemory: MemoryPercent,
	KeyDisk:   DiskPercent,
	KeyUptime: func(h stats.HostStatus) float64 { return ParseUptime(h.Uptime) },
	KeyLoad:   LoadValue,
}

// Sorter orders hosts using locale-aware string comparison for one language.
// It is safe for concurrent use.
type Sorter struct {
	mu       sync.Mutex
	collator *collate.Collator
}

// NewSorter creates a Sorter that compares names with the given language's
// collation rules.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{collator: collate.New(tag)}
}

// Sort returns a sorted copy of hosts. The input slice is not modified and
// hosts that compare equal keep their input order.
func (s *Sorter) Sort(hosts []stats.HostStatus, spec Spec) []stats.HostStatus {
	sorted := slices.Clone(hosts)
	if sorted == nil {
		sorted = []stats.HostStatus{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slices.SortStableFunc(sorted, s.comparator(spec))
	return sorted
}

func (s *Sorter) compareStrings(a, b string) int {
	return s.collator.CompareString(a, b)
}

func (s *Sorter) comparator(spec Spec) func(a, b stats.HostStatus) int {
	if spec.Key == KeyDefault || spec.Key == "" {
		return s.compareDefault
	}

	sign := 1
	if spec.Direction == Desc {
		sign = -1
	}

	switch spec.Key {
	case KeyName:
		return func(a, b stats.HostStatus) int {
			return sign * s.compareStrings(a.DisplayName(), b.DisplayName())
		}
	case KeyLocation:
		return func(a, b stats.HostStatus) int {
			return sign * s.compareStrings(a.Location, b.Location)
		}
	}

	extract, ok := numericExtractors[spec.Key]
	if !ok {
		// Unknown keys leave the input order untouched.
		return func(a, b stats.HostStatus) int { return 0 }
	}
	return func(a, b stats.HostStatus) int {
		return compareWithMissing(extract(a), extract(b), sign)
	}
}

// compareDefault orders by weight desc, then online first, then display name.
func (s *Sorter) compareDefault(a, b stats.HostStatus) int {
	if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
		return c
	}
	if ao, bo := a.IsOnline(), b.IsOnline(); ao != bo {
		if ao {
			return -1
		}
		return 1
	}
	return s.compareStrings(a.DisplayName(), b.DisplayName())
}

// compareWithMissing applies direction only when both values are present.
// A Missing value always sorts after a present one.
func compareWithMissing(a, b float64, sign int) int {
	aMissing, bMissing := a == Missing, b == Missing
	switch {
	case aMissing && bMissing:
		return 0
	case aMissing:
		return 1
	case bMissing:
		return -1
	}
	return sign * cmp.Compare(a, b)
}

var rootSorter = NewSorter(language.Und)

// Sort orders hosts with root-locale collation. See Sorter.Sort.
func Sort(hosts []stats.HostStatus, spec Spec) []stats.HostStatus {
	return rootSorter.Sort(hosts, spec)
}
