package lang

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog maps a locale code to its template table (template key -> template).
type Catalog map[string]map[string]string

// Parser turns raw catalog file content into a Catalog.
type Parser interface {
	Parse(ctx context.Context, content []byte) (Catalog, error)
	SupportsFileExtension(ext string) bool
}

// YAMLParser parses catalogs of the form:
//
//	en:
//	  not_empty: "%{PropertyName} must not be empty."
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse implements the Parser interface.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var raw map[string]map[string]string
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, errors.Join(ErrParseCatalog, err)
	}

	return catalogFromRaw(raw)
}

// SupportsFileExtension implements the Parser interface.
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser parses catalogs of the form:
//
//	{"en": {"not_empty": "%{PropertyName} must not be empty."}}
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse implements the Parser interface.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var raw map[string]map[string]string
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, errors.Join(ErrParseCatalog, err)
	}

	return catalogFromRaw(raw)
}

// SupportsFileExtension implements the Parser interface.
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

func catalogFromRaw(raw map[string]map[string]string) (Catalog, error) {
	catalog := make(Catalog, len(raw))
	for locale, templates := range raw {
		if locale == "" {
			return nil, fmt.Errorf("%w: empty locale code", ErrInvalidCatalog)
		}
		if len(templates) == 0 {
			continue
		}
		catalog[locale] = templates
	}

	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	return catalog, nil
}
