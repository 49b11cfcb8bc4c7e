package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the process needs at startup.
type Config struct {
	AppPort         string
	Environment     string
	ServiceName     string
	ServiceVersion  string
	ShutdownTimeout time.Duration
	Database        Database
	RabbitMQ        RabbitMQ
}

// Database describes how to reach the relational store.
type Database struct {
	Driver   string // "sqlite" or "postgres"
	DSN      string
	LogLevel string // "silent", "error", "warn" or "info"
}

// RabbitMQ describes the broker used for entity events. Events go to a fanout
// exchange; Queue is the audit consumer's own queue bound to it. An empty URL
// disables publishing.
type RabbitMQ struct {
	URL      string
	Exchange string
	Queue    string
}

// Enabled reports whether a broker URL was configured.
func (r RabbitMQ) Enabled() bool {
	return r.URL != ""
}

// Load reads configuration from environment variables and, when CONFIG_FILE
// is set, from that file. Environment variables win over the file.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := Config{
		AppPort:         v.GetString("APP_PORT"),
		Environment:     v.GetString("ENVIRONMENT"),
		ServiceName:     v.GetString("SERVICE_NAME"),
		ServiceVersion:  v.GetString("SERVICE_VERSION"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		Database: Database{
			Driver:   v.GetString("DATABASE_DRIVER"),
			DSN:      v.GetString("DATABASE_DSN"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		RabbitMQ: RabbitMQ{
			URL:      v.GetString("RABBITMQ_URL"),
			Exchange: v.GetString("RABBITMQ_EXCHANGE"),
			Queue:    v.GetString("RABBITMQ_QUEUE"),
		},
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":3000")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("SERVICE_NAME", "Store API")
	v.SetDefault("SERVICE_VERSION", "2.0.0")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "file:store.db?_foreign_keys=1")
	v.SetDefault("DATABASE_LOG_LEVEL", "warn")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "entity_events")
	v.SetDefault("RABBITMQ_QUEUE", "entity_events.audit")
}

func (c Config) validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}
	switch c.Database.LogLevel {
	case "silent", "error", "warn", "info":
	default:
		return fmt.Errorf("unsupported DATABASE_LOG_LEVEL %q", c.Database.LogLevel)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("DATABASE_DSN is required")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}
