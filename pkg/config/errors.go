package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil destination.
	ErrNilPointer = errors.New("config destination is nil")

	// ErrParsingConfig is returned when environment variables could not be
	// parsed into the destination struct.
	ErrParsingConfig = errors.New("failed to parse environment config")
)
