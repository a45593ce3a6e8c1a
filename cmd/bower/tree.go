package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/bower"
)

var (
	treeJSON bool
	treeFrom string
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the directory tree",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(true)
		if err != nil {
			fatal("Error opening notebook", err)
		}

		tree, err := nb.DirectoryTree(treeFrom)
		if err != nil {
			fatal("Error building tree", err)
		}

		if treeJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(tree); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		printTree(tree, 0)
	},
}

func printTree(node *bower.TreeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s%s/ (%s)\n", indent, node.Name, node.ID)
	for _, ref := range node.Notes {
		fmt.Printf("%s  - %s (%s)\n", indent, ref.Title, ref.ID)
	}
	for _, child := range node.Children {
		printTree(child, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().BoolVar(&treeJSON, "json", false, "Output in JSON format")
	treeCmd.Flags().StringVar(&treeFrom, "from", "", "Directory id to start from (default root)")
}
