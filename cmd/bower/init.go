package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty notebook store",
	Long:  `Create the snapshot file with a fresh root-only notebook, if it does not exist yet.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(false)
		if err != nil {
			fatal("Error initializing notebook", err)
		}
		if err := nb.Flush(context.Background()); err != nil {
			fatal("Error writing store file", err)
		}
		fmt.Println("notebook initialized")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
