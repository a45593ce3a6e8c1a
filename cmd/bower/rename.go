package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <dir-id> <new-name>",
	Short: "Rename a directory",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(true)
		if err != nil {
			fatal("Error opening notebook", err)
		}

		if err := nb.RenameDirectory(context.Background(), args[0], args[1]); err != nil {
			fatal("Error renaming directory", err)
		}
		fmt.Printf("renamed %s to %q\n", args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
