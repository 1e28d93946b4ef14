package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a stored file",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func runDelete(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	client, err := getClient()
	if err != nil {
		return err
	}

	if err := client.Delete(context.Background(), id); err != nil {
		return err
	}

	fmt.Printf("Deleted %d\n", id)
	return nil
}
