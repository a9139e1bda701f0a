package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("DB_DRIVER", "Postgres")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, DriverPostgres, cfg.Driver)
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_HOST", "DB_DRIVER", "MONGO_URI", "MONGO_COLLECTION", "APP_TIMEZONE", "MINIO_ENDPOINT"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "localhost:3000", cfg.AppHost)
	assert.Equal(t, DriverMongo, cfg.Driver)
	assert.Equal(t, "mongodb://localhost:27017/mydb", cfg.Mongo.URI)
	assert.Equal(t, "names", cfg.Mongo.Collection)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Empty(t, cfg.MinIO.Endpoint)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvLocation(t *testing.T) {
	key := "TEST_TZ_VAR"

	t.Setenv(key, "Not/AZone")
	assert.Equal(t, time.UTC, getEnvLocation(key, time.UTC))

	t.Setenv(key, "UTC")
	assert.Equal(t, "UTC", getEnvLocation(key, time.Local).String())
}
