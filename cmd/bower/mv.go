package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var mvCmd = &cobra.Command{
	Use:   "mv <dir-id> <new-parent-id>",
	Short: "Move a directory under another directory",
	Long: `Move a directory to the end of another directory's children. Moves that
would make a directory its own ancestor are rejected.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(true)
		if err != nil {
			fatal("Error opening notebook", err)
		}

		if err := nb.MoveDirectory(context.Background(), args[0], args[1]); err != nil {
			fatal("Error moving directory", err)
		}
		fmt.Printf("moved %s under %s\n", args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(mvCmd)
}
