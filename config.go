package helloao

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config mirrors the client's construction knobs for deployments that wire
// the SDK from the environment instead of functional options. Variables
// are read with the HELLOAO_ prefix.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL" default:"https://bible.helloao.org/api"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG"`
}

// ConfigFromEnv reads HELLOAO_* variables, applying defaults for anything
// unset.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("helloao", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromEnv constructs a Client from the environment. Extra options are
// applied after the environment-derived ones and take precedence.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithBaseURL(cfg.BaseURL),
		WithHTTPTimeout(cfg.HTTPTimeout),
		WithDebugLogging(cfg.Debug),
	}
	return New(append(base, opts...)...), nil
}
