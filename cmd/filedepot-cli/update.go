package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var updateContentType string

var updateCmd = &cobra.Command{
	Use:   "update <id> <local-path>",
	Short: "Replace a stored file",
	Long: `Replace the stored file with the given id using a local file.

The server only accepts image types on update.

Examples:
  filedepot-cli update 42 ./new-photo.png`,
	Args: cobra.ExactArgs(2),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVarP(&updateContentType, "content-type", "t", "", "override content-type")
}

func runUpdate(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	client, err := getClient()
	if err != nil {
		return err
	}

	info, err := client.Update(context.Background(), id, args[1], updateContentType)
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(info)
	}

	fmt.Printf("Updated %d: %s (%d bytes, %s)\n", info.ID, info.FileName, info.SizeBytes, info.ContentType)
	return nil
}
