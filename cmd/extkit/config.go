package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults that flags may override.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Reduce   ReduceConfig `yaml:"reduce"`
}

type ReduceConfig struct {
	Length int    `yaml:"length"`
	Suffix string `yaml:"suffix"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		Reduce: ReduceConfig{
			Length: 80,
			Suffix: "...",
		},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty filename yields
// the defaults.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()
	if filename == "" {
		return config, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return config, nil
}
