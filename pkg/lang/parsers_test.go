package lang_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/lang"
)

func TestYAMLParser(t *testing.T) {
	parser := lang.NewYAMLParser()

	t.Run("parses locale catalogs", func(t *testing.T) {
		content := []byte(`
en:
  not_empty: "%{PropertyName} must not be empty."
de:
  not_empty: "%{PropertyName} darf nicht leer sein."
`)
		catalog, err := parser.Parse(context.Background(), content)
		require.NoError(t, err)
		assert.Equal(t, "%{PropertyName} must not be empty.", catalog["en"]["not_empty"])
		assert.Equal(t, "%{PropertyName} darf nicht leer sein.", catalog["de"]["not_empty"])
	})

	t.Run("rejects malformed content", func(t *testing.T) {
		_, err := parser.Parse(context.Background(), []byte("en: [not, a, map]"))
		assert.ErrorIs(t, err, lang.ErrParseCatalog)
	})

	t.Run("rejects empty catalogs", func(t *testing.T) {
		_, err := parser.Parse(context.Background(), []byte("en: {}"))
		assert.ErrorIs(t, err, lang.ErrEmptyCatalog)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := parser.Parse(ctx, []byte("en:\n  k: v"))
		assert.ErrorIs(t, err, lang.ErrLoadCancelled)
	})

	t.Run("supported extensions", func(t *testing.T) {
		assert.True(t, parser.SupportsFileExtension("yaml"))
		assert.True(t, parser.SupportsFileExtension(".yml"))
		assert.False(t, parser.SupportsFileExtension("json"))
	})
}

func TestJSONParser(t *testing.T) {
	parser := lang.NewJSONParser()

	t.Run("parses locale catalogs", func(t *testing.T) {
		content := []byte(`{"en": {"uuid": "%{PropertyName} must be a valid UUID."}}`)
		catalog, err := parser.Parse(context.Background(), content)
		require.NoError(t, err)
		assert.Equal(t, "%{PropertyName} must be a valid UUID.", catalog["en"]["uuid"])
	})

	t.Run("rejects malformed content", func(t *testing.T) {
		_, err := parser.Parse(context.Background(), []byte(`{"en": 42}`))
		assert.ErrorIs(t, err, lang.ErrParseCatalog)
	})

	t.Run("supported extensions", func(t *testing.T) {
		assert.True(t, parser.SupportsFileExtension(".json"))
		assert.False(t, parser.SupportsFileExtension("yml"))
	})
}
