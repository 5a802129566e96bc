package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechainkit/walletkit/core/config"
)

type testConfig struct {
	AppID   string `env:"WALLETKIT_TEST_APP_ID" envDefault:"default-app"`
	Network string `env:"WALLETKIT_TEST_NETWORK" envDefault:"main"`
}

type requiredConfig struct {
	Secret string `env:"WALLETKIT_TEST_REQUIRED_SECRET,required"`
}

func TestLoad(t *testing.T) {
	// No t.Parallel: these tests mutate process environment.

	t.Run("applies defaults when env is unset", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "default-app", cfg.AppID)
		assert.Equal(t, "main", cfg.Network)
	})

	t.Run("caches the first loaded value per type", func(t *testing.T) {
		t.Setenv("WALLETKIT_TEST_APP_ID", "changed-after-first-load")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "default-app", cfg.AppID, "second load must return the cached value")
	})

	t.Run("reports missing required variables", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "WALLETKIT_TEST_REQUIRED_SECRET")
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
