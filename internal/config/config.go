// Package config provides the library's configuration, sourced from
// environment variables with development defaults.
package config

import "github.com/kelseyhightower/envconfig"

// Config holds the settings consumed by the request gateway.
type Config struct {
	// APIURL is the base URL of the backend service. All endpoints are
	// relative to it.
	APIURL string `envconfig:"API_URL" default:"http://localhost:3000"`

	// StoragePath is where the file-backed session store lives.
	StoragePath string `envconfig:"STORAGE_PATH" default:"session.json"`
}

// Load reads configuration from HEALTHBUDDIE_-prefixed environment
// variables, falling back to the development defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("healthbuddie", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
