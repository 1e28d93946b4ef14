package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "filedepot",
	Short:   "File upload server backed by a relational store",
	Long: `Filedepot is a small HTTP server for uploading, retrieving, listing,
updating, and deleting binary files. Files and their metadata live in a
single relational table (SQLite or PostgreSQL).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		readConfig(cmd)
		setupLogging()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("db-type", "", "database type: sqlite, postgres (default: sqlite, env: FILEDEPOT_DATABASE_TYPE)")
	rootCmd.PersistentFlags().String("db-dsn", "", "database connection string (default: filedepot.db, env: FILEDEPOT_DATABASE_DSN)")
	rootCmd.PersistentFlags().String("table", "", "file records table name (default: file_records, env: FILEDEPOT_DATABASE_TABLE)")

	_ = viper.BindPFlag("database.type", rootCmd.PersistentFlags().Lookup("db-type"))
	_ = viper.BindPFlag("database.dsn", rootCmd.PersistentFlags().Lookup("db-dsn"))
	_ = viper.BindPFlag("database.table", rootCmd.PersistentFlags().Lookup("table"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
