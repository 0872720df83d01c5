package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Cleanup(Load)
	for _, key := range []string{"LOG_LEVEL", "SERVER_RUN_ADDRESS", "STORAGE", "MIGRATE_ON_START", "MAX_UPLOAD_BYTES", "ADMIN_PASSWORD", "STATIC_DIR"} {
		t.Setenv(key, "")
	}

	Load()

	assert.Equal(t, "info", LogLevel)
	assert.Equal(t, "0.0.0.0:8080", ServerRunAddress)
	assert.Equal(t, StoragePostgres, Storage)
	assert.True(t, MigrateOnStart)
	assert.Equal(t, int64(defaultMaxUploadBytes), MaxUploadBytes)
	assert.Empty(t, AdminPassword)
	assert.Empty(t, StaticDir)
}

func TestLoadOverrides(t *testing.T) {
	t.Cleanup(Load)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORAGE", "Memory")
	t.Setenv("MIGRATE_ON_START", "false")
	t.Setenv("MAX_UPLOAD_BYTES", "2048")
	t.Setenv("ADMIN_PASSWORD", "host")
	t.Setenv("STATIC_DIR", "./web/dist")

	Load()

	assert.Equal(t, "debug", LogLevel)
	assert.Equal(t, StorageMemory, Storage)
	assert.False(t, MigrateOnStart)
	assert.Equal(t, int64(2048), MaxUploadBytes)
	assert.Equal(t, "host", AdminPassword)
	assert.Equal(t, "./web/dist", StaticDir)
}

func TestLoadIgnoresBadValues(t *testing.T) {
	t.Cleanup(Load)
	t.Setenv("STORAGE", "mongo")
	t.Setenv("MIGRATE_ON_START", "perhaps")
	t.Setenv("MAX_UPLOAD_BYTES", "-1")

	Load()

	assert.Equal(t, StoragePostgres, Storage)
	assert.True(t, MigrateOnStart)
	assert.Equal(t, int64(defaultMaxUploadBytes), MaxUploadBytes)
}
