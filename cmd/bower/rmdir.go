package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var rmdirCascade bool

var rmdirCmd = &cobra.Command{
	Use:   "rmdir <dir-id>",
	Short: "Delete a directory and its subtree",
	Long: `Delete a directory together with all of its sub-directories. With
--cascade, every note in the subtree is deleted as well; without it, the notes
are moved into the root directory.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(true)
		if err != nil {
			fatal("Error opening notebook", err)
		}

		if err := nb.DeleteDirectory(context.Background(), args[0], rmdirCascade); err != nil {
			fatal("Error deleting directory", err)
		}
		fmt.Println("deleted", args[0])
	},
}

func init() {
	rootCmd.AddCommand(rmdirCmd)
	rmdirCmd.Flags().BoolVar(&rmdirCascade, "cascade", false, "Also delete every note in the subtree")
}
