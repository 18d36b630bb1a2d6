package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil target.
	ErrNilPointer = errors.New("config: nil pointer provided")

	// ErrParsingConfig wraps env parsing failures.
	ErrParsingConfig = errors.New("config: failed to parse environment")

	// ErrConfigNotLoaded is returned when a caller loses the parse race and
	// no cached value exists because the winning parse failed.
	ErrConfigNotLoaded = errors.New("config: configuration not loaded")
)
