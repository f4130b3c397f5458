package cli

import (
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "board",
	Short: "A small board for short text posts",
	Long: `board serves a home page, an about page and a feed of short text posts.

Configuration is read from the environment (and an optional .env file):
  DATABASE     sqlite file path or postgres:// URL
  ENVIRONMENT  free-text label, logged at startup
  PORT         HTTP listen port
  SECRET_KEY   key signing the flash-message cookie
  LOG_LEVEL    logrus level (debug, info, warn, ...)
  LOG_FORMAT   text or json`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initDBCmd)
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.Execute()
}
