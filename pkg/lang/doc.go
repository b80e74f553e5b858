// Package lang provides localized message-template catalogs for the
// validation engine.
//
// A Manager loads a Catalog (locale -> template key -> template string)
// through a CatalogAdapter and answers template lookups by error code or
// validator name. Requested locales are negotiated against the loaded
// catalog with golang.org/x/text language matching, so "en-GB" resolves to
// an "en" catalog when no better match exists.
//
// # Usage
//
//	mgr, err := lang.NewManager(ctx, &lang.MapAdapter{Data: lang.Catalog{
//	    "en": {"not_empty": "%{PropertyName} must not be empty."},
//	    "de": {"not_empty": "%{PropertyName} darf nicht leer sein."},
//	}})
//	tmpl, ok := mgr.Template("de-AT", "ERR_REQUIRED", "not_empty")
//
// Template tries the given keys in order and falls back to the configured
// fallback locale before giving up.
//
// File and fs.FS adapters parse YAML and JSON catalog files; Default
// returns a Manager backed by the embedded English catalog shipped with
// this package.
package lang
