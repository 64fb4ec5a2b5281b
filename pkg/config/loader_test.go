package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formdesk/contactapi/pkg/config"
)

type serverTestConfig struct {
	Addr string `env:"TEST_SERVER_ADDR" envDefault:":8080"`
	Name string `env:"TEST_SERVER_NAME"`
}

type requiredTestConfig struct {
	Secret string `env:"TEST_REQUIRED_SECRET,required"`
}

type cachedTestConfig struct {
	Value string `env:"TEST_CACHED_VALUE" envDefault:"initial"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults and env values", func(t *testing.T) {
		t.Setenv("TEST_SERVER_NAME", "contactapi")

		var cfg serverTestConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "contactapi", cfg.Name)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredTestConfig
		err := config.Load(&cfg)

		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer rejected", func(t *testing.T) {
		err := config.Load[serverTestConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("second load returns cached value", func(t *testing.T) {
		t.Setenv("TEST_CACHED_VALUE", "first")

		var first cachedTestConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "first", first.Value)

		// Environment changes after the first parse are not observed.
		t.Setenv("TEST_CACHED_VALUE", "second")

		var again cachedTestConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "first", again.Value)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on missing required variable", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredTestConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("does not panic on valid config", func(t *testing.T) {
		assert.NotPanics(t, func() {
			var cfg serverTestConfig
			config.MustLoad(&cfg)
		})
	})
}
