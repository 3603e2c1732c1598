package cmd_test

import (
	"log/slog"
	"testing"
	"time"

	"fooddelivery/cmd"
	"fooddelivery/internal/metrics"
	"fooddelivery/internal/pkg/errs"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rootConfig() cmd.Config {
	return cmd.Config{
		EtaBaseTimeMinutes:     30,
		EtaNoCourierMultiplier: 3,
		ReviewCooldown:         10 * time.Minute,
		RetryMaxAttempts:       3,
		OverdueScanSchedule:    "0 * * * * *",
		IdempotencyTTL:         time.Hour,
	}
}

func newRoot(t *testing.T, config cmd.Config) (*cmd.CompositionRoot, error) {
	t.Helper()
	return cmd.NewCompositionRoot(config, nil, metrics.New(prometheus.NewRegistry()), slog.New(slog.DiscardHandler))
}

func TestNewCompositionRoot(t *testing.T) {
	t.Run("should refuse an eta that does not fit a duration", func(t *testing.T) {
		config := rootConfig()
		config.EtaBaseTimeMinutes = 1 << 40
		config.EtaNoCourierMultiplier = 1 << 30

		_, err := newRoot(t, config)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should close the event writer", func(t *testing.T) {
		config := rootConfig()
		config.KafkaHost = "localhost:9092"
		config.KafkaOrderChangedTopic = "order.status.changed"

		root, err := newRoot(t, config)
		require.NoError(t, err)

		require.NoError(t, root.Close())
	})
}

func TestCompositionRoot_CreateRedisClient(t *testing.T) {
	t.Run("should return nil without an address", func(t *testing.T) {
		root, err := newRoot(t, rootConfig())
		require.NoError(t, err)

		client, err := root.CreateRedisClient(t.Context())

		require.NoError(t, err)
		assert.Nil(t, client)
	})

	t.Run("should release the client on Close", func(t *testing.T) {
		server := miniredis.RunT(t)
		config := rootConfig()
		config.RedisAddr = server.Addr()
		root, err := newRoot(t, config)
		require.NoError(t, err)

		client, err := root.CreateRedisClient(t.Context())
		require.NoError(t, err)
		require.NoError(t, client.Ping(t.Context()).Err())

		require.NoError(t, root.Close())

		require.ErrorIs(t, client.Ping(t.Context()).Err(), redis.ErrClosed)
	})

	t.Run("should fail when redis is unreachable", func(t *testing.T) {
		server := miniredis.RunT(t)
		config := rootConfig()
		config.RedisAddr = server.Addr()
		server.Close()
		root, err := newRoot(t, config)
		require.NoError(t, err)

		client, err := root.CreateRedisClient(t.Context())

		require.Error(t, err)
		assert.Nil(t, client)
		require.NoError(t, root.Close())
	})
}
