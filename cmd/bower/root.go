package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/bower"
)

var (
	verbose    bool
	storePath  string
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bower",
	Short: "A hierarchical note store with version history",
	Long: `Bower keeps notes in a tree of directories, each note carrying its own
version history, persisted as a single JSON snapshot file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Path to the store file (default: resolved from config or the nearest bower.json)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the CLI config file (default ./bower.yaml)")
}

// resolveStorePath picks the store file in priority order: --store flag,
// BOWER_STORE env var, the config file, the nearest bower.json above the
// working directory, and finally a fresh ./bower.json.
func resolveStorePath(cfg cliConfig) string {
	if storePath != "" {
		return storePath
	}
	if env := os.Getenv("BOWER_STORE"); env != "" {
		return env
	}
	if cfg.Store != "" {
		return cfg.Store
	}
	if wd, err := os.Getwd(); err == nil {
		if found, err := bower.FindStore(wd); err == nil {
			return found
		}
	}
	return "bower.json"
}

// openNotebook loads the notebook the command should operate on.
func openNotebook(mustExist bool) (*bower.Notebook, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return bower.New(resolveStorePath(cfg),
		bower.WithLogger(slog.Default()),
		bower.WithMustExist(mustExist),
	)
}
