package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// cliConfig is the optional on-disk configuration for the bower CLI.
type cliConfig struct {
	// Store is the path of the snapshot file to operate on.
	Store string `yaml:"store"`
	// SnapshotOnSave controls whether `bower save` keeps the previous state
	// as a version by default. Defaults to true.
	SnapshotOnSave *bool `yaml:"snapshot_on_save"`
}

const defaultConfigFile = "bower.yaml"

// loadConfig reads the CLI config file. A missing default file is not an
// error; an explicitly requested file must exist.
func loadConfig(path string) (cliConfig, error) {
	var cfg cliConfig

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c cliConfig) snapshotOnSave() bool {
	if c.SnapshotOnSave == nil {
		return true
	}
	return *c.SnapshotOnSave
}
