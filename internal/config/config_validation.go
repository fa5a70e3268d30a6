package config

import (
	"fmt"
	"time"
)

// Default server settings applied when no source provides a value.
const (
	DefaultHTTPAddress          = "localhost:8080"
	DefaultTokenIssuer          = "notewell"
	DefaultTokenDuration        = 24 * time.Hour
	DefaultServerRequestTimeout = 30 * time.Second
	DefaultAIRequestTimeout     = 60 * time.Second
)

func (c *StructuredConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = DefaultHTTPAddress
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = DefaultServerRequestTimeout
	}
	if c.Auth.TokenIssuer == "" {
		c.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if c.Auth.TokenDuration <= 0 {
		c.Auth.TokenDuration = DefaultTokenDuration
	}
	if c.AI.RequestTimeout <= 0 {
		c.AI.RequestTimeout = DefaultAIRequestTimeout
	}
}

// validate checks that all settings required to run the server are present.
// The AI section is optional: when BaseURL is empty the AI endpoints report
// the feature as unavailable instead of failing startup.
func (c *StructuredConfig) validate() error {
	if c.Auth.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAuthConfigs)
	}
	if c.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidServerConfigs)
	}

	return nil
}

// validate checks that all settings required to run the client are present.
func (c *ClientConfig) validate() error {
	if c.Adapter.HTTPAddress == "" {
		return fmt.Errorf("%w: server address is required", ErrInvalidAdapterConfigs)
	}
	if c.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}
	if c.Workers.TagRefreshInterval <= 0 {
		return fmt.Errorf("%w: tag refresh interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
