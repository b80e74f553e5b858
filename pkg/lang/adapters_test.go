package lang_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/lang"
)

func TestFileAdapter(t *testing.T) {
	t.Run("rejects invalid construction", func(t *testing.T) {
		assert.Nil(t, lang.NewFileAdapter(nil, "catalog.yaml"))
		assert.Nil(t, lang.NewFileAdapter(lang.NewYAMLParser(), ""))
	})

	t.Run("loads a catalog file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "en.yaml")
		require.NoError(t, os.WriteFile(path, []byte("en:\n  not_empty: \"required\"\n"), 0o600))

		adapter := lang.NewFileAdapter(lang.NewYAMLParser(), path)
		catalog, err := adapter.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "required", catalog["en"]["not_empty"])
	})

	t.Run("missing file", func(t *testing.T) {
		adapter := lang.NewFileAdapter(lang.NewYAMLParser(), filepath.Join(t.TempDir(), "missing.yaml"))
		_, err := adapter.Load(context.Background())
		assert.ErrorIs(t, err, lang.ErrReadCatalog)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		adapter := lang.NewFileAdapter(lang.NewYAMLParser(), path)
		_, err := adapter.Load(context.Background())
		assert.ErrorIs(t, err, lang.ErrReadCatalog)
	})
}

func TestFSAdapter(t *testing.T) {
	t.Run("rejects invalid construction", func(t *testing.T) {
		assert.Nil(t, lang.NewFSAdapter(nil, fstest.MapFS{}, "catalogs"))
		assert.Nil(t, lang.NewFSAdapter(lang.NewYAMLParser(), nil, "catalogs"))
		assert.Nil(t, lang.NewFSAdapter(lang.NewYAMLParser(), fstest.MapFS{}, ""))
	})

	t.Run("merges supported files per locale", func(t *testing.T) {
		fsys := fstest.MapFS{
			"catalogs/base.yaml": &fstest.MapFile{
				Data: []byte("en:\n  not_empty: \"required\"\n"),
			},
			"catalogs/extra.yml": &fstest.MapFile{
				Data: []byte("en:\n  email: \"bad email\"\nde:\n  not_empty: \"pflicht\"\n"),
			},
			"catalogs/readme.txt": &fstest.MapFile{
				Data: []byte("not a catalog"),
			},
		}

		adapter := lang.NewFSAdapter(lang.NewYAMLParser(), fsys, "catalogs")
		catalog, err := adapter.Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "required", catalog["en"]["not_empty"])
		assert.Equal(t, "bad email", catalog["en"]["email"])
		assert.Equal(t, "pflicht", catalog["de"]["not_empty"])
	})

	t.Run("no supported files", func(t *testing.T) {
		fsys := fstest.MapFS{
			"catalogs/readme.txt": &fstest.MapFile{Data: []byte("nope")},
		}
		adapter := lang.NewFSAdapter(lang.NewYAMLParser(), fsys, "catalogs")
		_, err := adapter.Load(context.Background())
		assert.ErrorIs(t, err, lang.ErrEmptyCatalog)
	})

	t.Run("missing directory", func(t *testing.T) {
		adapter := lang.NewFSAdapter(lang.NewYAMLParser(), fstest.MapFS{}, "catalogs")
		_, err := adapter.Load(context.Background())
		assert.ErrorIs(t, err, lang.ErrReadCatalog)
	})
}

func TestMapAdapter(t *testing.T) {
	t.Run("serves the provided catalog", func(t *testing.T) {
		adapter := &lang.MapAdapter{Data: lang.Catalog{"en": {"k": "v"}}}
		catalog, err := adapter.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "v", catalog["en"]["k"])
	})

	t.Run("empty data", func(t *testing.T) {
		adapter := &lang.MapAdapter{}
		_, err := adapter.Load(context.Background())
		assert.ErrorIs(t, err, lang.ErrEmptyCatalog)
	})
}
