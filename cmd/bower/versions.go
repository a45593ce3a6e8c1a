package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var versionsJSON bool

var versionsCmd = &cobra.Command{
	Use:   "versions <note-id>",
	Short: "List the saved versions of a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(true)
		if err != nil {
			fatal("Error opening notebook", err)
		}

		versions, err := nb.NoteVersions(args[0])
		if err != nil {
			fatal("Error listing versions", err)
		}

		if versionsJSON {
			out, err := json.MarshalIndent(versions, "", "  ")
			if err != nil {
				fatal("Error encoding versions", err)
			}
			fmt.Println(string(out))
			return
		}

		if len(versions) == 0 {
			fmt.Println("no versions")
			return
		}
		for i, v := range versions {
			fmt.Printf("%d\t%s\t%s\n", i, v.Time.Format("2006-01-02 15:04:05"), v.Title)
		}
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <note-id>",
	Short: "Save the current state of a note as a new version",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(true)
		if err != nil {
			fatal("Error opening notebook", err)
		}

		if err := nb.SnapshotNote(context.Background(), args[0]); err != nil {
			fatal("Error snapshotting note", err)
		}
		fmt.Printf("snapshotted %s\n", args[0])
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <note-id> <version-index>",
	Short: "Restore a note to a saved version",
	Long: `Restore a note's title and content from one of its saved versions. The
note's history is kept intact.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid version index %q\n", args[1])
			os.Exit(1)
		}

		nb, err := openNotebook(true)
		if err != nil {
			fatal("Error opening notebook", err)
		}

		if err := nb.RestoreNoteVersion(context.Background(), args[0], index); err != nil {
			fatal("Error restoring version", err)
		}
		fmt.Printf("restored %s to version %d\n", args[0], index)
	},
}

func init() {
	versionsCmd.Flags().BoolVar(&versionsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(restoreCmd)
}
