package lang

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/text/language"
)

// FallbackLocale is used when a requested locale has no match in the catalog.
const FallbackLocale = "en"

// Option configures a Manager.
type Option func(*Manager)

// WithFallback sets the locale consulted when the requested one has no
// usable match.
func WithFallback(locale string) Option {
	return func(m *Manager) {
		if locale != "" {
			m.fallback = locale
		}
	}
}

// WithLogger sets the logger used to report missing templates.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMissingLog enables logging of template lookups that found nothing.
func WithMissingLog(enabled bool) Option {
	return func(m *Manager) {
		m.missingLog = enabled
	}
}

// Manager answers localized template lookups against a loaded Catalog.
// It is safe for concurrent use once created.
type Manager struct {
	mu         sync.RWMutex
	catalog    Catalog
	locales    []string
	matcher    language.Matcher
	fallback   string
	missingLog bool
	logger     *slog.Logger
}

// NewManager loads the adapter's catalog and builds a locale matcher over it.
func NewManager(ctx context.Context, adapter CatalogAdapter, options ...Option) (*Manager, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	m := &Manager{
		fallback: FallbackLocale,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}
	for _, option := range options {
		option(m)
	}

	catalog, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	m.catalog = catalog
	m.locales = make([]string, 0, len(catalog))
	for locale := range catalog {
		m.locales = append(m.locales, locale)
	}
	sort.Strings(m.locales)

	tags := make([]language.Tag, 0, len(m.locales))
	for _, locale := range m.locales {
		tags = append(tags, language.Make(locale))
	}
	m.matcher = language.NewMatcher(tags)

	return m, nil
}

// Locales returns the locale codes present in the catalog, sorted.
func (m *Manager) Locales() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.locales))
	copy(out, m.locales)
	return out
}

// HasLocale reports whether the catalog carries templates for the exact locale.
func (m *Manager) HasLocale(locale string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.catalog[locale]
	return ok
}

// Template resolves a message template for the requested locale, trying the
// given keys in order (callers pass the explicit error code first and the
// validator's default key after it). When the locale itself has no match,
// the fallback locale is consulted with the same key order. The second
// return value reports whether a template was found.
func (m *Manager) Template(locale string, keys ...string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if tmpl, ok := m.lookup(m.resolveLocale(locale), keys); ok {
		return tmpl, true
	}
	if tmpl, ok := m.lookup(m.fallback, keys); ok {
		return tmpl, true
	}

	if m.missingLog {
		m.logger.Warn("Template not found", "locale", locale, "keys", keys)
	}
	return "", false
}

// resolveLocale maps a requested locale onto a catalog locale. Exact hits
// win; otherwise the x/text matcher picks the closest supported tag, so
// "en-GB" lands on "en".
func (m *Manager) resolveLocale(locale string) string {
	if locale == "" {
		return m.fallback
	}
	if _, ok := m.catalog[locale]; ok {
		return locale
	}

	_, idx, conf := m.matcher.Match(language.Make(locale))
	if conf == language.No || idx >= len(m.locales) {
		return m.fallback
	}
	return m.locales[idx]
}

func (m *Manager) lookup(locale string, keys []string) (string, bool) {
	templates, ok := m.catalog[locale]
	if !ok {
		return "", false
	}
	for _, key := range keys {
		if key == "" {
			continue
		}
		if tmpl, ok := templates[key]; ok {
			return tmpl, true
		}
	}
	return "", false
}
