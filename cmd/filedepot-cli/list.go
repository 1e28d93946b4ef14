package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored files",
	Long: `List metadata for every stored file.

Examples:
  filedepot-cli list
  filedepot-cli list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	items, err := client.List(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(items)
	}

	if len(items) == 0 {
		fmt.Println("No files stored.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tSIZE\tUPLOADED")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			item.ID, item.FileName, item.ContentType, item.SizeBytes,
			item.UploadedAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
