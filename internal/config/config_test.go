package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tractorcare/order-service/internal/config"
)

func TestConfig_MemoryDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	conf := config.New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "development", conf.Env)
	assert.Empty(t, conf.Kafka.Brokers)
	assert.Equal(t, 1000, conf.Cache.Capacity)
	assert.Equal(t, 24*time.Hour, conf.Redis.IdempotencyTTL)
	assert.Len(t, conf.Cors.AllowedOrigins, 2)
}

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("POSTGRES_USER", "orders")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("REQUEST_TIMEOUT", "bogus")

	conf := config.New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 30*time.Second, conf.Cache.TTL)
	assert.Equal(t, 10*time.Second, conf.Http.RequestTimeout)
	assert.Equal(t, "redis:6379", conf.Redis.Addr)
}

func TestConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "postgres without credentials",
			env:  map[string]string{"STORAGE_DRIVER": "postgres"},
		},
		{
			name: "unknown storage driver",
			env:  map[string]string{"STORAGE_DRIVER": "mongo"},
		},
		{
			name: "unknown env",
			env:  map[string]string{"STORAGE_DRIVER": "memory", "ENV": "dev"},
		},
		{
			name: "bad broker address",
			env:  map[string]string{"STORAGE_DRIVER": "memory", "KAFKA_BROKERS": "not a broker"},
		},
		{
			name: "bad cors origin",
			env:  map[string]string{"STORAGE_DRIVER": "memory", "ALLOWED_CORS_ORIGINS": "localhost"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Error(t, config.New().Validate())
		})
	}
}
