package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// envFile is read into the environment before the variables below are
// looked up. Variables already set in the environment win.
var envFile = ".env.local"

const (
	envHTTPAddr        = "TASKTRACKER_HTTP_ADDR"
	envDatabaseDSN     = "TASKTRACKER_DATABASE_DSN"
	envSecretKey       = "TASKTRACKER_SECRET_KEY"
	envSessionSecret   = "TASKTRACKER_SESSION_SECRET"
	envTokenValidity   = "TASKTRACKER_TOKEN_VALIDITY"
	envSecureCookies   = "TASKTRACKER_SECURE_COOKIES"
	envMigrateOnStart  = "TASKTRACKER_MIGRATE_ON_START"
	envInMemory        = "TASKTRACKER_IN_MEMORY"
	envGinMode         = "GIN_MODE"
	envShutdownTimeout = "TASKTRACKER_SHUTDOWN_TIMEOUT"
	envLoginAttempts   = "TASKTRACKER_LOGIN_ATTEMPTS_PER_MINUTE"
)

func loadEnvFile() {
	if err := godotenv.Load(envFile); err == nil {
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		return
	}
	parent := filepath.Dir(cwd)
	if parent == "" || parent == cwd {
		return
	}
	_ = godotenv.Load(filepath.Join(parent, envFile))
}

func parseEnv(cfg *Config) error {
	loadEnvFile()

	setString(&cfg.HTTPAddr, envHTTPAddr)
	setString(&cfg.DatabaseDSN, envDatabaseDSN)
	setString(&cfg.SecretKey, envSecretKey)
	setString(&cfg.SessionSecret, envSessionSecret)
	setString(&cfg.GinMode, envGinMode)

	if err := setDuration(&cfg.TokenValidityDuration, envTokenValidity); err != nil {
		return err
	}
	if err := setDuration(&cfg.ShutdownTimeout, envShutdownTimeout); err != nil {
		return err
	}
	if err := setBool(&cfg.SecureCookies, envSecureCookies); err != nil {
		return err
	}
	if err := setBool(&cfg.MigrateOnStart, envMigrateOnStart); err != nil {
		return err
	}
	if err := setInt(&cfg.LoginAttemptsPerMinute, envLoginAttempts); err != nil {
		return err
	}
	return setBool(&cfg.InMemory, envInMemory)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
