package waybacknews

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries environment-driven client settings. Variables use the
// WAYBACKNEWS_ prefix, e.g. WAYBACKNEWS_BASE_URL.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG"`
}

// ConfigFromEnv loads Config from the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("waybacknews", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromEnv constructs a Client for the collection with settings taken
// from the environment.
func NewFromEnv(collection string) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	opts := []Option{WithHTTPTimeout(cfg.HTTPTimeout)}
	if cfg.BaseURL != "" {
		opts = append(opts, WithBaseURL(cfg.BaseURL))
	}
	if cfg.Debug {
		opts = append(opts, WithDebugLogging(true))
	}
	return New(collection, opts...), nil
}
