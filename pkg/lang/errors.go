package lang

import "errors"

var (
	// ErrNilAdapter is returned when a Manager is created without a catalog adapter.
	ErrNilAdapter = errors.New("catalog adapter is nil")

	// ErrEmptyCatalog is returned when an adapter produced no usable templates.
	ErrEmptyCatalog = errors.New("catalog has no templates")

	// ErrInvalidCatalog is returned when a catalog has a structural problem,
	// such as an empty locale code.
	ErrInvalidCatalog = errors.New("invalid catalog structure")

	// ErrLoadCancelled is returned when catalog loading was interrupted by
	// context cancellation.
	ErrLoadCancelled = errors.New("catalog loading cancelled")

	// ErrReadCatalog is returned when a catalog source could not be read.
	ErrReadCatalog = errors.New("failed to read catalog source")

	// ErrParseCatalog is returned when catalog content could not be parsed.
	ErrParseCatalog = errors.New("failed to parse catalog content")
)
