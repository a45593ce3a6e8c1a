package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/bower"
)

var (
	lsDir  string
	lsJSON bool
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the notes in a directory, most recently modified first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(true)
		if err != nil {
			fatal("Error opening notebook", err)
		}

		dir := lsDir
		if dir == "" {
			dir = bower.RootID
		}
		notes, err := nb.ListNotesInDirectory(dir)
		if err != nil {
			fatal("Error listing notes", err)
		}

		if lsJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		for _, note := range notes {
			fmt.Printf("%s  %s  (%s)\n", note.ID, note.Title, note.Modified.Format("2006-01-02 15:04"))
		}
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().StringVar(&lsDir, "dir", "", "Directory id to list (default root)")
	lsCmd.Flags().BoolVar(&lsJSON, "json", false, "Output in JSON format")
}
