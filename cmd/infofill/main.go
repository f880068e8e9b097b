// Package main provides the entry point for the infofill CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "infofill",
	Short: "Personal information manager and template filler",
	Long: "infofill keeps one personal profile (basic info, education and work experience, family) " +
		"and renders it through user-authored Mustache templates into text, JSON or tab-separated tables " +
		"ready to paste into application forms.",
	SilenceUsage: true,
}

var (
	rootConfigFile  string
	rootStore       string
	rootDataDir     string
	rootDatabaseURL string
	rootMySQLDSN    string
	rootRedisAddr   string
	rootLogLevel    string
	rootVerbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootConfigFile, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&rootStore, "store", "", "Storage backend: file, postgres, mysql, redis or memory")
	rootCmd.PersistentFlags().StringVar(&rootDataDir, "data-dir", "", "Directory for the file backend (default ~/.infofill)")
	rootCmd.PersistentFlags().StringVar(&rootDatabaseURL, "db-url", "", "PostgreSQL connection URL (postgres backend)")
	rootCmd.PersistentFlags().StringVar(&rootMySQLDSN, "mysql-dsn", "", "MySQL data source name (mysql backend)")
	rootCmd.PersistentFlags().StringVar(&rootRedisAddr, "redis-addr", "", "Redis host:port (redis backend)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
