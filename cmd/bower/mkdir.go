package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var mkdirParent string

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <name>",
	Short: "Create a directory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(false)
		if err != nil {
			fatal("Error opening notebook", err)
		}

		dir, err := nb.CreateDirectory(context.Background(), args[0], mkdirParent)
		if err != nil {
			fatal("Error creating directory", err)
		}
		fmt.Println(dir.ID)
	},
}

func init() {
	rootCmd.AddCommand(mkdirCmd)
	mkdirCmd.Flags().StringVar(&mkdirParent, "parent", "", "Parent directory id (default root)")
}
