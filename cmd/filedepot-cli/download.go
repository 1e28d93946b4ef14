package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var downloadOutput string

var downloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Download a stored file",
	Long: `Download the stored bytes for a file by its numeric id.

Writes to stdout unless --output is given.

Examples:
  filedepot-cli download 42 --output photo.png
  filedepot-cli download 42 > photo.png`,
	Args: cobra.ExactArgs(1),
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadOutput, "output", "o", "", "write to file instead of stdout")
}

func runDownload(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	client, err := getClient()
	if err != nil {
		return err
	}

	out := os.Stdout
	if downloadOutput != "" {
		f, createErr := os.Create(downloadOutput)
		if createErr != nil {
			return fmt.Errorf("create %s: %w", downloadOutput, createErr)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	contentType, err := client.Download(context.Background(), id, out)
	if err != nil {
		return err
	}

	if downloadOutput != "" {
		fmt.Fprintf(os.Stderr, "Saved %s (%s)\n", downloadOutput, contentType)
	}
	return nil
}
