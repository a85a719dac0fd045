package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Port string `validate:"required,numeric"`

	// Storage backend: sqlite3 (default), postgres or memory.
	DBDriver string `validate:"oneof=sqlite3 postgres memory"`
	DBDSN    string `validate:"required_unless=DBDriver memory"`

	// Simulated latency of the demo weather provider.
	CurrentLatency  time.Duration `validate:"gte=0s"`
	ForecastLatency time.Duration `validate:"gte=0s"`

	// Locations recorded periodically; empty disables the recorder.
	RecordLocations []string
	RecordInterval  time.Duration `validate:"gt=0s"`

	CORSOrigins string

	LogLevel  string `validate:"oneof=trace debug info warn error"`
	LogFormat string `validate:"oneof=auto json text"`
}

var validate = validator.New()

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "4000")
	v.SetDefault("db_driver", "sqlite3")
	v.SetDefault("db_dsn", "./weather.db")
	v.SetDefault("current_latency", "1s")
	v.SetDefault("forecast_latency", "800ms")
	v.SetDefault("record_locations", "")
	v.SetDefault("record_interval", "15m")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "auto")
}

// Load reads configuration from .env, an optional weather-records.yaml and
// the environment, in increasing order of precedence. Flags bound to v
// beforehand win over all of them.
func Load(v *viper.Viper) (*AppConfig, error) {
	// .env is optional.
	_ = godotenv.Load()

	SetDefaults(v)
	v.SetConfigName("weather-records")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	v.AutomaticEnv()

	cfg := &AppConfig{
		Port:            v.GetString("port"),
		DBDriver:        v.GetString("db_driver"),
		DBDSN:           v.GetString("db_dsn"),
		CurrentLatency:  v.GetDuration("current_latency"),
		ForecastLatency: v.GetDuration("forecast_latency"),
		RecordLocations: splitLocations(v.GetString("record_locations")),
		RecordInterval:  v.GetDuration("record_interval"),
		CORSOrigins:     v.GetString("cors_origins"),
		LogLevel:        strings.ToLower(v.GetString("log_level")),
		LogFormat:       strings.ToLower(v.GetString("log_format")),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// splitLocations splits a ';'-separated list. Locations may contain commas
// ("San Francisco, CA"), so ',' is not a separator.
func splitLocations(s string) []string {
	var locs []string
	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			locs = append(locs, part)
		}
	}
	return locs
}
