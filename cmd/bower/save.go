package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	saveTitle      string
	saveContent    string
	saveNoSnapshot bool
)

var saveCmd = &cobra.Command{
	Use:   "save <note-id>",
	Short: "Update a note's title and content",
	Long: `Update a note. Unless --no-snapshot is given (or disabled in the config
file), the previous state is kept in the note's version history when a value
actually changed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			fatal("Error loading config", err)
		}
		nb, err := openNotebook(true)
		if err != nil {
			fatal("Error opening notebook", err)
		}

		note, err := nb.Note(args[0])
		if err != nil {
			fatal("Error reading note", err)
		}

		title := note.Title
		if cmd.Flags().Changed("title") {
			title = saveTitle
		}
		content := note.Content
		if cmd.Flags().Changed("content") {
			content = saveContent
		}

		snapshot := cfg.snapshotOnSave() && !saveNoSnapshot
		if err := nb.UpdateNote(context.Background(), args[0], title, content, snapshot); err != nil {
			fatal("Error saving note", err)
		}
		fmt.Println("saved", args[0])
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().StringVar(&saveTitle, "title", "", "New title")
	saveCmd.Flags().StringVar(&saveContent, "content", "", "New content")
	saveCmd.Flags().BoolVar(&saveNoSnapshot, "no-snapshot", false, "Do not keep the previous state as a version")
}
