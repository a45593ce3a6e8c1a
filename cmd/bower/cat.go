package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var catJSON bool

var catCmd = &cobra.Command{
	Use:   "cat <note-id>",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(true)
		if err != nil {
			fatal("Error opening notebook", err)
		}

		note, err := nb.Note(args[0])
		if err != nil {
			fatal("Error reading note", err)
		}

		if catJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note.Record()); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		fmt.Printf("# %s\n\n%s\n", note.Title, note.Content)
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
	catCmd.Flags().BoolVar(&catJSON, "json", false, "Output the full note record as JSON")
}
