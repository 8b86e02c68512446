package settings

import (
	"sync"

	"github.com/rileyhilliard/statboard/internal/errors"
	"github.com/rileyhilliard/statboard/internal/i18n"
	"github.com/rileyhilliard/statboard/internal/logger"
)

// Manager holds the current settings and fans out changes to subscribers.
type Manager struct {
	mu      sync.RWMutex
	store   Store
	current Settings
	subs    map[int]func(Settings)
	nextID  int
	detect  func() i18n.Locale
	log     logger.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLocaleDetector sets how the first-run locale is chosen.
func WithLocaleDetector(detect func() i18n.Locale) ManagerOption {
	return func(m *Manager) { m.detect = detect }
}

// WithLogger sets the manager's logger.
func WithLogger(l logger.Logger) ManagerOption {
	return func(m *Manager) { m.log = l }
}

// NewManager creates a Manager holding Defaults. Call Load to read the store.
func NewManager(store Store, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:   store,
		current: Defaults(),
		subs:    make(map[int]func(Settings)),
		detect:  i18n.Detect,
		log:     logger.Noop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load reads the store. On first run the locale is detected from the
// environment and persisted. A store error or invalid saved values leave
// defaults in place; the error is logged and returned for reporting.
func (m *Manager) Load() error {
	saved, err := m.store.Load()
	if err != nil {
		m.log.Warn("loading settings: %s", errors.Summary(err))
		m.set(Defaults())
		return err
	}

	if saved == nil {
		first := Defaults()
		first.Locale = m.detect()
		m.set(first)
		if err := m.store.Save(&first); err != nil {
			m.log.Warn("saving first-run settings: %s", errors.Summary(err))
		}
		return nil
	}

	if err := saved.Validate(); err != nil {
		m.log.Warn("saved settings are invalid, using defaults: %s", errors.Summary(err))
		m.set(Defaults())
		return err
	}

	m.set(*saved)
	return nil
}

func (m *Manager) set(s Settings) {
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Update applies fn to a copy of the settings, validates the result, makes
// it current and saves it. Invalid results are rejected without any change.
// A save failure still applies and notifies the new settings, since the
// session should keep working on a read-only disk; the error is returned.
func (m *Manager) Update(fn func(*Settings)) error {
	m.mu.Lock()
	next := m.current
	fn(&next)
	if err := next.Validate(); err != nil {
		m.mu.Unlock()
		return err
	}
	m.current = next
	subs := m.subscribers()
	m.mu.Unlock()

	saveErr := m.store.Save(&next)
	if saveErr != nil {
		m.log.Warn("saving settings: %s", errors.Summary(saveErr))
	}

	for _, fn := range subs {
		fn(next)
	}
	return saveErr
}

// Set parses and applies a single key, as `statboard settings set` does.
// A value that doesn't parse changes nothing and saves nothing.
func (m *Manager) Set(key, value string) error {
	trial := m.Get()
	if err := trial.Set(key, value); err != nil {
		return err
	}
	return m.Update(func(s *Settings) {
		_ = s.Set(key, value)
	})
}

// Reset restores defaults, keeping the current locale so the UI language
// doesn't change under the user.
func (m *Manager) Reset() error {
	return m.Update(func(s *Settings) {
		locale := s.Locale
		*s = Defaults()
		s.Locale = locale
	})
}

// Subscribe registers fn to be called with the new settings after every
// successful Update. Calls happen synchronously on the updating goroutine,
// in subscription order. The returned func unsubscribes.
func (m *Manager) Subscribe(fn func(Settings)) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

// subscribers returns subscriber funcs ordered by id. Must be called with m.mu held.
func (m *Manager) subscribers() []func(Settings) {
	out := make([]func(Settings), 0, len(m.subs))
	for id := 0; id < m.nextID; id++ {
		if fn, ok := m.subs[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}
