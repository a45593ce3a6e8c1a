package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <note-id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(true)
		if err != nil {
			fatal("Error opening notebook", err)
		}

		if err := nb.DeleteNote(context.Background(), args[0]); err != nil {
			fatal("Error deleting note", err)
		}
		fmt.Println("deleted", args[0])
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
