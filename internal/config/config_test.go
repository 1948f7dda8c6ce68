package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, Load())

	assert.Equal(t, ":8080", APIAddr())
	assert.Equal(t, time.Second, LoginDelay())
	assert.Equal(t, "u-001", ProfileUserID())
	assert.InDelta(t, 0.3, FailureRate(), 1e-9)

	src, ok := DataSource()
	assert.True(t, ok)
	assert.Equal(t, SourceMock, src)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("FIELDOPS_TEST_FROM_FILE=yes\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Cleanup(func() { os.Unsetenv("FIELDOPS_TEST_FROM_FILE") })

	require.NoError(t, Load())
	assert.Equal(t, "yes", os.Getenv("FIELDOPS_TEST_FROM_FILE"))
}

func TestDataSource_UnknownFallsBackToMock(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, Load())

	t.Setenv("DATA_SOURCE", " DynamoDB ")
	src, ok := DataSource()
	assert.True(t, ok)
	assert.Equal(t, SourceDynamoDB, src)

	t.Setenv("DATA_SOURCE", "mongodb")
	src, ok = DataSource()
	assert.False(t, ok)
	assert.Equal(t, SourceMock, src)
}

func TestLogLevel(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, Load())

	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, zerolog.DebugLevel, LogLevel())

	t.Setenv("LOG_LEVEL", "loud")
	assert.Equal(t, zerolog.InfoLevel, LogLevel())
}
