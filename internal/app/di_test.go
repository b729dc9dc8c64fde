package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireassist/backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:             "localhost",
		ServerPort:             0,
		LogLevel:               "error",
		StorageDriver:          "memory",
		TokenSecret:            "test-secret",
		SessionTokenExpiration: 24 * time.Hour,
		MetricsNamespace:       "hireassist",
	}
}

func TestContainer(t *testing.T) {
	t.Run("wires the full graph on a memory store", func(t *testing.T) {
		container := NewContainer(testConfig())

		require.NotNil(t, container.Logger())

		store, err := container.Store()
		require.NoError(t, err)
		require.NotNil(t, store)

		directory, err := container.Directory()
		require.NoError(t, err)
		require.NotNil(t, directory)

		server, err := container.HTTPServer()
		require.NoError(t, err)
		require.NotNil(t, server)
		require.NotNil(t, server.GetHandler())

		assert.NoError(t, container.Shutdown(context.Background()))
	})

	t.Run("returns the same instance on repeated access", func(t *testing.T) {
		container := NewContainer(testConfig())

		first, err := container.Directory()
		require.NoError(t, err)
		second, err := container.Directory()
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("unsupported storage driver fails", func(t *testing.T) {
		cfg := testConfig()
		cfg.StorageDriver = "cassandra"
		container := NewContainer(cfg)

		_, err := container.Store()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported storage driver")

		// The error is sticky
		_, err = container.Directory()
		assert.Error(t, err)
	})

	t.Run("metrics disabled yields nil servers and a no-op recorder", func(t *testing.T) {
		container := NewContainer(testConfig())

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		assert.Nil(t, provider)

		business, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.NotNil(t, business)

		metricsServer, err := container.MetricsServer()
		require.NoError(t, err)
		assert.Nil(t, metricsServer)
	})

	t.Run("metrics enabled yields provider and server", func(t *testing.T) {
		cfg := testConfig()
		cfg.MetricsEnabled = true
		cfg.MetricsPort = 0
		container := NewContainer(cfg)

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		require.NotNil(t, provider)

		metricsServer, err := container.MetricsServer()
		require.NoError(t, err)
		require.NotNil(t, metricsServer)

		assert.NoError(t, container.Shutdown(context.Background()))
	})
}
