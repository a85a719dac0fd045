package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "sqlite3", cfg.DBDriver)
	assert.Equal(t, "./weather.db", cfg.DBDSN)
	assert.Equal(t, time.Second, cfg.CurrentLatency)
	assert.Equal(t, 800*time.Millisecond, cfg.ForecastLatency)
	assert.Empty(t, cfg.RecordLocations)
	assert.Equal(t, 15*time.Minute, cfg.RecordInterval)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8081")
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("DB_DSN", "")
	t.Setenv("RECORD_LOCATIONS", "San Francisco, CA; Paris ;")
	t.Setenv("FORECAST_LATENCY", "0s")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "memory", cfg.DBDriver)
	assert.Equal(t, []string{"San Francisco, CA", "Paris"}, cfg.RecordLocations)
	assert.Equal(t, time.Duration(0), cfg.ForecastLatency)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("DB_DRIVER", "oracle")
	_, err := Load(viper.New())
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("PORT", "http")
	_, err = Load(viper.New())
	assert.Error(t, err)
}
