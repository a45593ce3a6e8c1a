package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	newDir     string
	newContent string
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(false)
		if err != nil {
			fatal("Error opening notebook", err)
		}

		note, err := nb.CreateNote(context.Background(), newDir, args[0], newContent)
		if err != nil {
			fatal("Error creating note", err)
		}
		fmt.Println(note.ID)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVar(&newDir, "dir", "", "Directory id to create the note in (default root)")
	newCmd.Flags().StringVar(&newContent, "content", "", "Initial note content")
}
