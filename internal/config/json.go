package config

import (
	"encoding/json"
	"os"
	"time"

	"orderdeck/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling.
// The timeout is given in whole seconds, matching the -t flag.
type jsonConfig struct {
	StoreEndpointAddr  *string `json:"store_endpoint_addr"`
	StoreDataset       *string `json:"store_dataset"`
	StoreToken         *string `json:"store_token"`
	DatabasePath       *string `json:"database_path"`
	AdminEmail         *string `json:"admin_email"`
	AdminPassword      *string `json:"admin_password"`
	SessionSigningKey  *string `json:"session_signing_key"`
	RequestTimeoutSecs *int    `json:"request_timeout_seconds"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. Absent flag means no JSON layer. Fields missing from the
// file keep their current values. Read or unmarshal errors panic; config is
// resolved once at startup and a broken file should stop the program.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StoreEndpointAddr != nil {
		cfg.StoreEndpointAddr = *jc.StoreEndpointAddr
	}
	if jc.StoreDataset != nil {
		cfg.StoreDataset = *jc.StoreDataset
	}
	if jc.StoreToken != nil {
		cfg.StoreToken = *jc.StoreToken
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.AdminEmail != nil {
		cfg.AdminEmail = *jc.AdminEmail
	}
	if jc.AdminPassword != nil {
		cfg.AdminPassword = *jc.AdminPassword
	}
	if jc.SessionSigningKey != nil {
		cfg.SessionSigningKey = *jc.SessionSigningKey
	}
	if jc.RequestTimeoutSecs != nil {
		cfg.RequestTimeout = time.Duration(*jc.RequestTimeoutSecs) * time.Second
	}
}
