package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/filedepot/filedepot/clientcli"
)

var (
	version = "dev"

	cfgFile    string
	server     string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:     "filedepot-cli",
	Version: version,
	Short:   "Client for the filedepot file upload server",
	Long: `filedepot-cli - client for the filedepot HTTP API

Commands:
  upload:    Upload a local file
  download:  Fetch a stored file by id
  update:    Replace a stored file by id
  list:      List stored file metadata
  delete:    Remove a stored file by id
  configure: Save the server endpoint to ~/.filedepot/config.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.filedepot/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&server, "server", "s", "", "server URL (default: http://localhost:8080, env: FILEDEPOT_SERVER)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(configureCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig merges config from file, env vars, and flags (flags take precedence).
func buildConfig() (*clientcli.Config, error) {
	var configs []*clientcli.Config

	configPath := cfgFile
	if configPath == "" {
		configPath = clientcli.DefaultConfigPath()
	}

	if configPath != "" {
		fileCfg, err := clientcli.LoadConfigFromFile(configPath)
		if err != nil {
			// Only error if user explicitly specified a config file
			if cfgFile != "" {
				return nil, err
			}
		} else {
			configs = append(configs, fileCfg)
		}
	}

	configs = append(configs, clientcli.ConfigFromEnv())
	configs = append(configs, &clientcli.Config{Endpoint: server})

	return clientcli.MergeConfig(configs...), nil
}

// getClient creates and returns a configured client.
func getClient() (*clientcli.Client, error) {
	cfg, err := buildConfig()
	if err != nil {
		return nil, err
	}

	return clientcli.New(cfg)
}
