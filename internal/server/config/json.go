package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tasktracker/internal/flagx"
	"github.com/dmitrijs2005/tasktracker/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields let a
// file override only the settings it mentions.
type JsonConfig struct {
	HTTPAddr              *string         `json:"http_addr"`
	DatabaseDSN           *string         `json:"database_dsn"`
	SecretKey             *string         `json:"secret_key"`
	SessionSecret         *string         `json:"session_secret"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	SecureCookies         *bool           `json:"secure_cookies"`
	MigrateOnStart        *bool           `json:"migrate_on_start"`
	InMemory              *bool           `json:"in_memory"`
	GinMode               *string         `json:"gin_mode"`
	ShutdownTimeout       *timex.Duration `json:"shutdown_timeout"`

	LoginAttemptsPerMinute *int `json:"login_attempts_per_minute"`
}

// parseJSON overlays the file named by -c/-config. Nothing happens when no
// file is named.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(b, c); err != nil {
		return err
	}

	if c.HTTPAddr != nil {
		cfg.HTTPAddr = *c.HTTPAddr
	}
	if c.DatabaseDSN != nil {
		cfg.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		cfg.SecretKey = *c.SecretKey
	}
	if c.SessionSecret != nil {
		cfg.SessionSecret = *c.SessionSecret
	}
	if c.TokenValidityDuration != nil {
		cfg.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.SecureCookies != nil {
		cfg.SecureCookies = *c.SecureCookies
	}
	if c.MigrateOnStart != nil {
		cfg.MigrateOnStart = *c.MigrateOnStart
	}
	if c.InMemory != nil {
		cfg.InMemory = *c.InMemory
	}
	if c.GinMode != nil {
		cfg.GinMode = *c.GinMode
	}
	if c.ShutdownTimeout != nil {
		cfg.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.LoginAttemptsPerMinute != nil {
		cfg.LoginAttemptsPerMinute = *c.LoginAttemptsPerMinute
	}
	return nil
}
