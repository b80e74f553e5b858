package lang

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
)

// CatalogAdapter defines how template catalogs are loaded.
type CatalogAdapter interface {
	Load(ctx context.Context) (Catalog, error)
}

// MapAdapter serves an in-memory Catalog, useful for tests and for hosts
// that assemble templates programmatically.
type MapAdapter struct {
	Data Catalog
}

// Load implements the CatalogAdapter interface.
func (a *MapAdapter) Load(_ context.Context) (Catalog, error) {
	if len(a.Data) == 0 {
		return nil, ErrEmptyCatalog
	}
	return a.Data, nil
}

// FileAdapter loads a single catalog file from disk.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a new FileAdapter instance.
// Returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the CatalogAdapter interface.
func (a *FileAdapter) Load(ctx context.Context) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrReadCatalog, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: catalog file %q is empty", ErrReadCatalog, a.path)
	}

	return a.parser.Parse(ctx, content)
}

// FSAdapter loads every supported catalog file from a directory of an
// fs.FS, merging templates per locale. Works with embed.FS as well as
// os.DirFS, which covers both bundled defaults and on-disk catalogs.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter creates a new FSAdapter instance.
// Returns nil if parser or fsys is nil, or dir is empty.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil || dir == "" {
		return nil
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// Load implements the CatalogAdapter interface.
func (a *FSAdapter) Load(ctx context.Context) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrReadCatalog, err)
	}

	merged := make(Catalog)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !a.parser.SupportsFileExtension(filepath.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadCancelled, err)
		}

		path := a.dir + "/" + entry.Name()
		content, err := fs.ReadFile(a.fsys, path)
		if err != nil {
			return nil, errors.Join(ErrReadCatalog, err)
		}

		catalog, err := a.parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("catalog file %q: %w", path, err)
		}

		for locale, templates := range catalog {
			if merged[locale] == nil {
				merged[locale] = make(map[string]string, len(templates))
			}
			maps.Copy(merged[locale], templates)
		}
	}

	if len(merged) == 0 {
		return nil, fmt.Errorf("%w: no catalog files in %q", ErrEmptyCatalog, a.dir)
	}
	return merged, nil
}
