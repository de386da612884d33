package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates a missing host address or request
	// timeout on the launcher side.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or request
	// timeout on the host side.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates inconsistent token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidVisualizationsConfigs indicates an empty visualizations dir.
	ErrInvalidVisualizationsConfigs = errors.New("invalid visualizations configuration")
)
