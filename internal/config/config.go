package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStrategy = "switch"
	DefaultTrials   = 100
	DefaultWorkers  = 1
)

// Config holds the bulk-run settings loadable from a yaml file.
// A zero Seed means "derive from the clock" at the call site.
type Config struct {
	Strategy string `yaml:"strategy"`
	Trials   int    `yaml:"trials"`
	Seed     int64  `yaml:"seed"`
	Workers  int    `yaml:"workers"`
}

func Default() *Config {
	return &Config{
		Strategy: DefaultStrategy,
		Trials:   DefaultTrials,
		Workers:  DefaultWorkers,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
