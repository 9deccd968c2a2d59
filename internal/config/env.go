package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays cfg with ORDERDECK_* environment variables declared in
// the struct tags. Unset variables leave the current values in place.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
