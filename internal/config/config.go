package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName             string
	AppEnv              string
	AppPort             string
	DatabaseDSN         string
	RedisURL            string
	NATSURL             string
	EventSubjectBase    string
	HostelCapacity      int
	DefaultAdmissionFee float64
	StreamInterval      time.Duration
	SeedDemoData        bool
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CAMPUS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Campus Admin API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	// The record store is process-local by design: the sqlite in-memory DSN
	// keeps records for the lifetime of the process only.
	v.SetDefault("database.dsn", "file::memory:?cache=shared")
	v.SetDefault("events.subject_base", "campus.events")
	v.SetDefault("hostel.capacity", 40)
	v.SetDefault("admission.default_fee", 20000)
	v.SetDefault("dashboard.stream_interval", "30s")
	v.SetDefault("seed.demo", true)

	intervalString := v.GetString("dashboard.stream_interval")
	if intervalString == "" {
		intervalString = "30s"
	}

	interval, err := time.ParseDuration(intervalString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid dashboard stream interval: %w", err)
	}

	cfg := Config{
		AppName:             v.GetString("app.name"),
		AppEnv:              v.GetString("app.env"),
		AppPort:             v.GetString("app.port"),
		DatabaseDSN:         v.GetString("database.dsn"),
		RedisURL:            v.GetString("redis.url"),
		NATSURL:             v.GetString("nats.url"),
		EventSubjectBase:    v.GetString("events.subject_base"),
		HostelCapacity:      v.GetInt("hostel.capacity"),
		DefaultAdmissionFee: v.GetFloat64("admission.default_fee"),
		StreamInterval:      interval,
		SeedDemoData:        v.GetBool("seed.demo"),
	}

	if cfg.HostelCapacity <= 0 {
		cfg.HostelCapacity = 40
	}

	if cfg.DefaultAdmissionFee <= 0 {
		cfg.DefaultAdmissionFee = 20000
	}

	return cfg, nil
}
