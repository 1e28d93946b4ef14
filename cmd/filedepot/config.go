package main

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/filedepot/filedepot/config"
)

func init() {
	setDefaults()
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.max_upload_size", 0)

	viper.SetDefault("database.type", "sqlite")
	viper.SetDefault("database.dsn", "filedepot.db")
	viper.SetDefault("database.table", "file_records")

	viper.SetDefault("log.level", "info")
}

func readConfig(cmd *cobra.Command) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		slog.Warn("failed to bind flags", "err", err)
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("FILEDEPOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			slog.Warn("error reading config file", "err", err)
		}
	}
}

// loadConfig builds the validated configuration for a command, combining the
// --config file (when given) with environment variables and explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var configFiles []string
	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		configFiles = append(configFiles, configFile)
	}

	return config.Load(configFiles, cmd.Flags())
}
