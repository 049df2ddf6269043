package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Empty variables count as unset for viper.
func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "MONGO_URI", "MONGO_DATABASE", "MONGO_CONNECT_TIMEOUT", "KAFKA_BROKERS", "KAFKA_TOPIC", "KAFKA_GROUP_ID", "OTLP_ENDPOINT", "OTEL_SERVICE_NAME"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Empty(t, cfg.Mongo.Database)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "portfolio.events", cfg.Kafka.Topic)
	assert.Equal(t, "portfolio-audit", cfg.Kafka.GroupID)
	assert.Empty(t, cfg.Tracing.OTLPEndpoint)
	assert.Equal(t, "portfolio-api", cfg.Tracing.ServiceName)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://db:27017/portfolio")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "3s")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "mongodb://db:27017/portfolio", cfg.Mongo.URI)
	assert.Equal(t, 3*time.Second, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGO_DATABASE", "")

	dir := t.TempDir()
	yaml := "app:\n  port: \"7000\"\nmongo:\n  database: portfolio\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.App.Port)
	assert.Equal(t, "portfolio", cfg.Mongo.Database)
}
