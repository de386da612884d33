// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig]. Only rules shared by both
// processes live here; role-specific checks run on the views.
func (cfg *StructuredConfig) validate() error {
	return cfg.App.validate()
}

func (a App) validate() error {
	if a.TokenSignKey == "" {
		return nil
	}
	if a.TokenIssuer == "" || a.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and duration are required with a sign key", ErrInvalidAppConfigs)
	}
	return nil
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Visualizations.Dir == "" {
		return ErrInvalidVisualizationsConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
