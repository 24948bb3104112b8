package config_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/config"
)

type SimulatorConfig struct {
	LogLevel  string `env:"SIM_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"SIM_LOG_FORMAT" envDefault:"text"`
	MaxSteps  int    `env:"SIM_MAX_STEPS" envDefault:"100"`
}

type RequiredConfig struct {
	StoreURL string `env:"SIM_STORE_URL,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("SIM_LOG_LEVEL", "debug")
	t.Setenv("SIM_LOG_FORMAT", "json")
	t.Setenv("SIM_MAX_STEPS", "5")

	var cfg SimulatorConfig
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error with valid environment variables")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5, cfg.MaxSteps)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("SIM_LOG_LEVEL")
	os.Unsetenv("SIM_LOG_FORMAT")
	os.Unsetenv("SIM_MAX_STEPS")

	var cfg SimulatorConfig
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error when using default values")
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 100, cfg.MaxSteps)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("SIM_STORE_URL")

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err, "Load should return an error when a required value is missing")
	assert.True(t, errors.Is(err, config.ErrParsingConfig), "Error should be ErrParsingConfig")
}

func TestLoad_NilPointer(t *testing.T) {
	err := config.Load[SimulatorConfig](nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrNilPointer), "Error should be ErrNilPointer")
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	os.Unsetenv("SIM_STORE_URL")

	assert.Panics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg)
	}, "MustLoad should panic when loading fails")
}

func TestMustLoad_Success(t *testing.T) {
	t.Setenv("SIM_STORE_URL", "redis://localhost:6379/0")

	var cfg RequiredConfig
	assert.NotPanics(t, func() {
		config.MustLoad(&cfg)
	})
	assert.Equal(t, "redis://localhost:6379/0", cfg.StoreURL)
}
