package lang_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/lang"
)

func testCatalog() lang.Catalog {
	return lang.Catalog{
		"en": {
			"not_empty":    "%{PropertyName} must not be empty.",
			"ERR_REQUIRED": "%{PropertyName} is required.",
		},
		"de": {
			"not_empty": "%{PropertyName} darf nicht leer sein.",
		},
	}
}

func newTestManager(t *testing.T, options ...lang.Option) *lang.Manager {
	t.Helper()
	m, err := lang.NewManager(context.Background(), &lang.MapAdapter{Data: testCatalog()}, options...)
	require.NoError(t, err)
	return m
}

func TestNewManager(t *testing.T) {
	t.Run("rejects nil adapter", func(t *testing.T) {
		_, err := lang.NewManager(context.Background(), nil)
		assert.ErrorIs(t, err, lang.ErrNilAdapter)
	})

	t.Run("rejects empty catalog", func(t *testing.T) {
		_, err := lang.NewManager(context.Background(), &lang.MapAdapter{})
		assert.ErrorIs(t, err, lang.ErrEmptyCatalog)
	})

	t.Run("exposes sorted locales", func(t *testing.T) {
		m := newTestManager(t)
		assert.Equal(t, []string{"de", "en"}, m.Locales())
		assert.True(t, m.HasLocale("de"))
		assert.False(t, m.HasLocale("fr"))
	})
}

func TestManager_Template(t *testing.T) {
	t.Run("exact locale and key", func(t *testing.T) {
		m := newTestManager(t)
		tmpl, ok := m.Template("de", "not_empty")
		require.True(t, ok)
		assert.Equal(t, "%{PropertyName} darf nicht leer sein.", tmpl)
	})

	t.Run("keys are tried in order", func(t *testing.T) {
		m := newTestManager(t)
		tmpl, ok := m.Template("en", "ERR_REQUIRED", "not_empty")
		require.True(t, ok)
		assert.Equal(t, "%{PropertyName} is required.", tmpl)
	})

	t.Run("empty keys are skipped", func(t *testing.T) {
		m := newTestManager(t)
		tmpl, ok := m.Template("en", "", "not_empty")
		require.True(t, ok)
		assert.Equal(t, "%{PropertyName} must not be empty.", tmpl)
	})

	t.Run("regional locale resolves to base catalog", func(t *testing.T) {
		m := newTestManager(t)
		tmpl, ok := m.Template("de-AT", "not_empty")
		require.True(t, ok)
		assert.Equal(t, "%{PropertyName} darf nicht leer sein.", tmpl)
	})

	t.Run("unsupported locale falls back", func(t *testing.T) {
		m := newTestManager(t)
		tmpl, ok := m.Template("fr", "not_empty")
		require.True(t, ok)
		assert.Equal(t, "%{PropertyName} must not be empty.", tmpl)
	})

	t.Run("missing key falls back before giving up", func(t *testing.T) {
		m := newTestManager(t)

		// de has no ERR_REQUIRED, en does
		tmpl, ok := m.Template("de", "ERR_REQUIRED")
		require.True(t, ok)
		assert.Equal(t, "%{PropertyName} is required.", tmpl)

		_, ok = m.Template("de", "nonexistent")
		assert.False(t, ok)
	})

	t.Run("custom fallback locale", func(t *testing.T) {
		m := newTestManager(t, lang.WithFallback("de"))
		tmpl, ok := m.Template("fr", "not_empty")
		require.True(t, ok)
		assert.Equal(t, "%{PropertyName} darf nicht leer sein.", tmpl)
	})
}

func TestDefault(t *testing.T) {
	t.Run("embedded catalog serves built-in templates", func(t *testing.T) {
		m := lang.Default()
		require.NotNil(t, m)

		tmpl, ok := m.Template("en", "not_empty")
		require.True(t, ok)
		assert.Contains(t, tmpl, "%{PropertyName}")
	})

	t.Run("returns the same instance", func(t *testing.T) {
		assert.Same(t, lang.Default(), lang.Default())
	})
}
