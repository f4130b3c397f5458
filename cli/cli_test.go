package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"board/config"
	"board/database"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "board.sqlite")
	t.Setenv("DATABASE", dbPath)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("PORT", "5000")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"init-db", "--env-file", filepath.Join(t.TempDir(), "missing.env")})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "You successfully initialized the database!")

	_, err := os.Stat(dbPath)
	require.NoError(t, err)

	log, _ := logtest.NewNullLogger()
	db, err := database.Open(config.Config{Database: dbPath}, log)
	require.NoError(t, err)
	defer database.Close(db)
	assert.True(t, db.Migrator().HasTable("post"))
}

func TestInitDBBadConfig(t *testing.T) {
	t.Setenv("DATABASE", filepath.Join(t.TempDir(), "board.sqlite"))
	t.Setenv("PORT", "0")

	rootCmd.SetArgs([]string{"init-db", "--env-file", filepath.Join(t.TempDir(), "missing.env")})
	assert.Error(t, rootCmd.ExecuteContext(context.Background()))
}
