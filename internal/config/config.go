// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the boundary token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage selects the participant store backend and the legacy import file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the host boundary listen address.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the launcher's view of the host boundary.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Visualizations points at the folder scanned for visualizations.
	Visualizations Visualizations `envPrefix:"VISUALIZATIONS_"`

	// Window controls the browser used for the visualization host window.
	Window Window `envPrefix:"WINDOW_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// TokenSignKey signs and verifies boundary tokens. When empty the
	// boundary runs without token checks.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of boundary tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a boundary token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the store settings.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
}

// DB holds the SQL store settings.
type DB struct {
	// DSN selects the SQL store. "postgres://" and "postgresql://" DSNs use
	// PostgreSQL, anything else is treated as a SQLite path. When empty the
	// JSON file store is used.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds the file store settings.
type Files struct {
	// StateFile is the JSON document holding the store. Empty means
	// <user config dir>/julekalender/state.json.
	// Env: STORAGE_FILES_STATE_FILE
	StateFile string `env:"STATE_FILE"`

	// LegacyNamesFile is the newline-delimited names file imported into an
	// empty participant collection at startup.
	// Env: STORAGE_FILES_LEGACY_NAMES_FILE
	LegacyNamesFile string `env:"LEGACY_NAMES_FILE"`
}

// Server holds the inbound boundary settings.
type Server struct {
	// HTTPAddress is the "host:port" the boundary listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single boundary request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the launcher's outbound boundary settings.
type Adapter struct {
	// HTTPAddress is the host boundary address the launcher calls.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Visualizations holds discovery settings.
type Visualizations struct {
	// Dir is the visualizations root. Each immediate subfolder holding an
	// index.html is one visualization.
	// Env: VISUALIZATIONS_DIR
	Dir string `env:"DIR"`
}

// Window holds visualization window settings.
type Window struct {
	// BrowserPath overrides the Chrome/Chromium executable. Empty means
	// the browser is looked up on PATH.
	// Env: WINDOW_BROWSER_PATH
	BrowserPath string `env:"BROWSER_PATH"`

	// Windowed opens a regular window instead of a fullscreen kiosk.
	// Env: WINDOW_WINDOWED
	Windowed bool `env:"WINDOWED"`
}

// ServerConfig is the host process view of [StructuredConfig].
type ServerConfig struct {
	App            App
	Storage        Storage
	Server         Server
	Visualizations Visualizations
	Window         Window
}

// ClientConfig is the launcher process view of [StructuredConfig].
type ClientConfig struct {
	App     App
	Adapter Adapter
}

// GetStructuredConfig loads, merges, and validates the configuration from
// defaults, environment variables, flags and the JSON file (path resolved
// from the env and flag sources).
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
