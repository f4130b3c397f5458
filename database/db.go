package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"board/config"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// sqlite returns SQLITE_BUSY immediately without this when two requests write at once.
const sqliteBusyTimeout = "_busy_timeout=5000"

// Open creates the process-wide connection pool for the configured store.
func Open(cfg config.Config, log *logrus.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Dialect() {
	case config.DialectPostgres:
		dialector = postgres.Open(cfg.Database)
	default:
		sqlDB, err := sql.Open("sqlite3", sqliteDSN(cfg.Database))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		dialector = &sqlite.Dialector{Conn: sqlDB}
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Close closes the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?" + sqliteBusyTimeout
}
