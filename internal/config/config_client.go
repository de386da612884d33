package config

import (
	"fmt"
)

// GetServerConfig builds and validates the host process configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.ServerView()
	return serverCfg, serverCfg.validate()
}

// GetClientConfig builds and validates the launcher configuration.
//
// It loads the base config via [GetStructuredConfig] and keeps only the
// fields relevant to the launcher runtime.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientView()
	return clientCfg, clientCfg.validate()
}

// ServerView maps the merged config onto the host process fields.
func (cfg *StructuredConfig) ServerView() *ServerConfig {
	return &ServerConfig{
		App:            cfg.App,
		Storage:        cfg.Storage,
		Server:         cfg.Server,
		Visualizations: cfg.Visualizations,
		Window:         cfg.Window,
	}
}

// ClientView maps the merged config onto the launcher fields.
func (cfg *StructuredConfig) ClientView() *ClientConfig {
	return &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
	}
}
