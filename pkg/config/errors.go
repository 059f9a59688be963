package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrEnvFileLoad is returned when an explicitly named .env file cannot be read
	ErrEnvFileLoad = errors.New("failed to load env file")

	// ErrConfigNotLoaded is returned when a previous parse failure left no cached value for the type
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
