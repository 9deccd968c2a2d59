// Package config assembles runtime settings for the order console.
//
// Values are layered: defaults, then a JSON file (-c/-config), then
// environment variables, then command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the console.
//
// AdminEmail/AdminPassword form the single shared-secret credential pair the
// session gate checks against. This is a UI gate, not a security boundary:
// the values live in plain configuration on the operator's own machine.
type Config struct {
	StoreEndpointAddr string        `env:"ORDERDECK_STORE_ADDR"`
	StoreDataset      string        `env:"ORDERDECK_STORE_DATASET"`
	StoreToken        string        `env:"ORDERDECK_STORE_TOKEN"`
	DatabasePath      string        `env:"ORDERDECK_DB_PATH"`
	AdminEmail        string        `env:"ORDERDECK_ADMIN_EMAIL"`
	AdminPassword     string        `env:"ORDERDECK_ADMIN_PASSWORD"`
	SessionSigningKey string        `env:"ORDERDECK_SESSION_KEY"`
	RequestTimeout    time.Duration `env:"ORDERDECK_REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreEndpointAddr = "http://127.0.0.1:3333"
	c.StoreDataset = "production"
	c.StoreToken = ""
	c.DatabasePath = "orderdeck.db"
	c.AdminEmail = "admin123@gmail.com"
	c.AdminPassword = "admin123"
	c.SessionSigningKey = "orderdeck-local-session"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
