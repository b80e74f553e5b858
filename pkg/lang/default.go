package lang

import (
	"context"
	"embed"
	"fmt"
	"sync"
)

//go:embed catalogs/*.yaml
var defaultCatalogFS embed.FS

var (
	defaultManager     *Manager
	defaultManagerOnce sync.Once
)

// Default returns the Manager backed by the embedded English catalog of
// built-in validator templates. The instance is created once and shared;
// hosts that need their own catalogs should build a Manager with NewManager
// instead of mutating this one.
func Default() *Manager {
	defaultManagerOnce.Do(func() {
		adapter := NewFSAdapter(NewYAMLParser(), defaultCatalogFS, "catalogs")
		m, err := NewManager(context.Background(), adapter)
		if err != nil {
			// The embedded catalog ships with the package; failing to load
			// it is a build defect, not a runtime condition.
			panic(fmt.Sprintf("lang: loading embedded catalog: %v", err))
		}
		defaultManager = m
	})
	return defaultManager
}
