// Package config holds the service endpoints and HTTP identity used by the CLI.
package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/naka-gawa/pypi-stats/internal/gateway"
)

// Config is the runtime configuration. Zero values in a file keep the defaults.
type Config struct {
	IndexURL  string `toml:"index_url"`
	StatsURL  string `toml:"stats_url"`
	UserAgent string `toml:"user_agent"`
}

// Default returns the configuration used when no file is given.
func Default(version string) Config {
	return Config{
		IndexURL:  gateway.DefaultIndexURL,
		StatsURL:  gateway.DefaultStatsURL,
		UserAgent: "pypi-stats/" + version,
	}
}

// Load reads the TOML file at path over the defaults. An empty path returns the
// defaults unchanged. Unknown keys are rejected.
func Load(path, version string) (Config, error) {
	cfg := Default(version)
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	var file Config
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Merge(file)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Merge overrides c with every non-empty field of other.
func (c *Config) Merge(other Config) {
	if other.IndexURL != "" {
		c.IndexURL = other.IndexURL
	}
	if other.StatsURL != "" {
		c.StatsURL = other.StatsURL
	}
	if other.UserAgent != "" {
		c.UserAgent = other.UserAgent
	}
}

// Validate checks that both endpoints are absolute http(s) URLs.
func (c Config) Validate() error {
	for name, raw := range map[string]string{"index_url": c.IndexURL, "stats_url": c.StatsURL} {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%s: %q is not an http(s) URL", name, raw)
		}
	}
	return nil
}
