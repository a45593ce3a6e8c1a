package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/aretw0/bower"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and environment information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bower version %s (%s, %s/%s)\n",
			strings.TrimSpace(bower.Version), runtime.Version(), runtime.GOOS, runtime.GOARCH)

		cfg, err := loadConfig(configPath)
		if err != nil {
			return
		}
		fmt.Printf("store: %s\n", resolveStorePath(cfg))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
