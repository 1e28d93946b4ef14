package main

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/filedepot/filedepot/clientcli"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Save server settings",
	Long: `Save the server endpoint to the configuration file.

You will be prompted for the endpoint URL. Configuration is stored in
~/.filedepot/config.yaml unless --config is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigure,
}

func runConfigure(_ *cobra.Command, _ []string) error {
	configPath := cfgFile
	if configPath == "" {
		configPath = clientcli.DefaultConfigPath()
	}
	if configPath == "" {
		return errors.New("cannot determine config path, use --config")
	}

	current := clientcli.DefaultEndpoint
	if existing, err := clientcli.LoadConfigFromFile(configPath); err == nil && existing.Endpoint != "" {
		current = existing.Endpoint
	}

	endpointPrompt := promptui.Prompt{
		Label:   "Endpoint URL",
		Default: current,
		Validate: func(input string) error {
			if input == "" {
				return errors.New("endpoint URL is required")
			}
			parsedURL, parseErr := url.Parse(input)
			if parseErr != nil {
				return fmt.Errorf("invalid URL: %w", parseErr)
			}
			if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
				return errors.New("URL must start with http:// or https://")
			}
			return nil
		},
	}

	endpoint, err := endpointPrompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			fmt.Println("Cancelled.")
			return nil
		}
		return fmt.Errorf("prompt: %w", err)
	}

	if err := clientcli.SaveConfigToFile(configPath, &clientcli.Config{Endpoint: endpoint}); err != nil {
		return err
	}

	fmt.Printf("Saved %s\n", configPath)
	return nil
}
