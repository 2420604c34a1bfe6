// Package config reads the navtool configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/gorustyt/regionnav/common/logger"
	"github.com/gorustyt/regionnav/navmesh"
	"gopkg.in/yaml.v3"
)

type Config struct {
	NavMesh navmesh.Config `yaml:"navmesh"`
	Log     logger.Config  `yaml:"log"`
}

func Default() Config {
	return Config{
		NavMesh: navmesh.DefaultConfig(),
		Log:     logger.DefaultConfig(),
	}
}

// Load reads path over the defaults, so keys missing from the file keep
// their default value. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Write stores cfg at path as YAML.
func Write(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
