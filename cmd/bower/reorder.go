package main

import (
	"context"
	"fmt"

	"github.com/aretw0/bower"
	"github.com/spf13/cobra"
)

var reorderParent string

var reorderCmd = &cobra.Command{
	Use:   "reorder <child-id>...",
	Short: "Reorder the subdirectories of a directory",
	Long: `Set the order of a directory's children. The arguments must name every
current child exactly once, in the desired order.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(true)
		if err != nil {
			fatal("Error opening notebook", err)
		}

		if err := nb.ReorderDirectories(context.Background(), reorderParent, args); err != nil {
			fatal("Error reordering directories", err)
		}
		fmt.Printf("reordered %d directories under %s\n", len(args), reorderParent)
	},
}

func init() {
	reorderCmd.Flags().StringVar(&reorderParent, "parent", bower.RootID, "Parent directory ID")
	rootCmd.AddCommand(reorderCmd)
}
