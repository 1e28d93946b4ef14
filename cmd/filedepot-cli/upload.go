package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var uploadContentType string

var uploadCmd = &cobra.Command{
	Use:   "upload <local-path>",
	Short: "Upload a file to the server",
	Long: `Upload a local file to the server.

The content type is derived from the file extension unless overridden
with --content-type. The server only accepts images, PDFs, and Word
documents up to 10 MiB.

Examples:
  filedepot-cli upload ./photo.png
  filedepot-cli upload --content-type image/png ./photo`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadContentType, "content-type", "t", "", "override content-type")
}

func runUpload(_ *cobra.Command, args []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	info, err := client.Upload(context.Background(), args[0], uploadContentType)
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(info)
	}

	fmt.Printf("Uploaded %s (id %d, %d bytes, %s)\n", info.FileName, info.ID, info.SizeBytes, info.ContentType)
	return nil
}
