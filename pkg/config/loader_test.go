package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospectly/platform/pkg/config"
)

type testConfig struct {
	Host string `env:"TEST_CONFIG_HOST" envDefault:"localhost"`
	Port int    `env:"TEST_CONFIG_PORT" envDefault:"5432"`
}

type overrideConfig struct {
	Value string `env:"TEST_CONFIG_VALUE" envDefault:"fallback"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
	})

	t.Run("env value wins over default", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_VALUE", "from-env")

		var cfg overrideConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "from-env", cfg.Value)
	})

	t.Run("nil pointer rejected", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("second load returns cached value", func(t *testing.T) {
		var first testConfig
		require.NoError(t, config.Load(&first))

		// Changing the environment after the first load must not leak
		// into later loads of the same type.
		t.Setenv("TEST_CONFIG_HOST", "other-host")

		var second testConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first.Host, second.Host)
	})
}
