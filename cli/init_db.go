package cli

import (
	"fmt"

	"board/config"
	"board/database"
	"board/logger"

	"github.com/spf13/cobra"
)

const initDBMessage = "You successfully initialized the database!"

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the post table, dropping any existing one",
	RunE:  runInitDB,
}

func runInitDB(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.InitSchema(cmd.Context(), db, cfg.Dialect()); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), initDBMessage)
	return nil
}
