package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE", "ENVIRONMENT", "PORT", "SECRET_KEY", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "board.sqlite", cfg.Database)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DialectSQLite, cfg.Dialect())
	assert.Equal(t, ":5000", cfg.Addr())
}

func TestLoadFromEnvFile(t *testing.T) {
	for _, key := range []string{"DATABASE", "ENVIRONMENT", "PORT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DATABASE=/tmp/posts.db\nENVIRONMENT=staging\nPORT=8081\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("DATABASE")
		os.Unsetenv("ENVIRONMENT")
		os.Unsetenv("PORT")
	})

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/posts.db", cfg.Database)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, 8081, cfg.Port)
}

func TestValidate(t *testing.T) {
	valid := Config{Database: "board.sqlite", Port: 5000, LogFormat: "text"}
	require.NoError(t, valid.Validate())

	noDB := valid
	noDB.Database = "  "
	assert.Error(t, noDB.Validate())

	badPort := valid
	badPort.Port = 70000
	assert.Error(t, badPort.Validate())

	badFormat := valid
	badFormat.LogFormat = "xml"
	assert.Error(t, badFormat.Validate())
}

func TestDialect(t *testing.T) {
	assert.Equal(t, DialectPostgres, Config{Database: "postgres://u:p@localhost:5432/board"}.Dialect())
	assert.Equal(t, DialectPostgres, Config{Database: "postgresql://localhost/board"}.Dialect())
	assert.Equal(t, DialectSQLite, Config{Database: "./instance/board.sqlite"}.Dialect())
}
