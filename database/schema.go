package database

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// InitSchema drops and recreates the post table.
func InitSchema(ctx context.Context, db *gorm.DB, dialect string) error {
	script, err := schemaFS.ReadFile("schema/" + dialect + ".sql")
	if err != nil {
		return fmt.Errorf("no schema for dialect %q: %w", dialect, err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range splitStatements(string(script)) {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("failed to execute schema statement %q: %w", stmt, err)
			}
		}
		return nil
	})
}

func splitStatements(script string) []string {
	var lines []string
	for _, line := range strings.Split(script, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		lines = append(lines, line)
	}

	var stmts []string
	for _, stmt := range strings.Split(strings.Join(lines, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
