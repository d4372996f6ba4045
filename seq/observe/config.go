package observe

import (
	"errors"

	"go.opentelemetry.io/otel/attribute"
)

// DefaultPrefix is the default instrument name prefix.
const DefaultPrefix = "seq"

// Config holds configuration for OpenTelemetry instruments.
type Config struct {
	Prefix     string
	Attributes []attribute.KeyValue
}

// Option is a functional option for configuring instruments.
type Option func(*Config)

// WithPrefix sets the prefix of every instrument name, for example
// "<prefix>.elements".
func WithPrefix(prefix string) Option {
	return func(c *Config) {
		c.Prefix = prefix
	}
}

// WithAttributes adds attributes to every measurement.
func WithAttributes(attrs ...attribute.KeyValue) Option {
	return func(c *Config) {
		c.Attributes = append(c.Attributes, attrs...)
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Prefix == "" {
		return errors.New("observe: instrument prefix must not be empty")
	}
	return nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Prefix: DefaultPrefix,
	}
}

// applyOptions applies functional options to a config.
func applyOptions(opts ...Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
