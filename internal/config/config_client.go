package config

import "time"

// Default client settings applied when no source provides a value.
const (
	DefaultServerAddress      = "http://localhost:8080"
	DefaultRequestTimeout     = 15 * time.Second
	DefaultTagRefreshInterval = time.Minute
)

// ClientConfig is the configuration view consumed by the TUI client. It
// carries only the client-relevant subset of [StructuredConfig].
type ClientConfig struct {
	// Adapter holds the server endpoint and request timeout used by the
	// HTTP adapter.
	Adapter Adapter

	// Workers holds background worker settings.
	Workers Workers
}

// GetClientConfig loads the client configuration from environment variables,
// command-line flags and an optional JSON file, fills in defaults for any
// missing values and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	structured, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg := &ClientConfig{
		Adapter: structured.Adapter,
		Workers: structured.Workers,
	}
	cfg.applyDefaults()

	return cfg, cfg.validate()
}

func (c *ClientConfig) applyDefaults() {
	if c.Adapter.HTTPAddress == "" {
		c.Adapter.HTTPAddress = DefaultServerAddress
	}
	if c.Adapter.RequestTimeout <= 0 {
		c.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if c.Workers.TagRefreshInterval <= 0 {
		c.Workers.TagRefreshInterval = DefaultTagRefreshInterval
	}
}
