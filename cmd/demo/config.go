package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var errEmptyDataset = errors.New("dataset must not be empty")

// Config holds the datasets the demonstrations run over. Fields left out of
// the YAML file keep their defaults.
type Config struct {
	Integers   []int64  `yaml:"integers"`
	Words      []string `yaml:"words"`
	Duplicates []int64  `yaml:"duplicates"`
	TextOrder  string   `yaml:"text_order"`
	Search     struct {
		Integer int64  `yaml:"integer"`
		Word    string `yaml:"word"`
	} `yaml:"search"`
	Remove struct {
		Integer   int64 `yaml:"integer"`
		Duplicate int64 `yaml:"duplicate"`
	} `yaml:"remove"`
}

// DefaultConfig returns the built-in datasets.
func DefaultConfig() Config {
	cfg := Config{
		Integers:   []int64{42, 17, 89, 3, 56, 23, 91, 8},
		Words:      []string{"python", "algorithm", "sorted", "linked", "list", "example", "zebra", "apple"},
		Duplicates: []int64{5, 3, 5, 1, 3, 5, 2, 1},
		TextOrder:  "lexical",
	}

	cfg.Search.Integer = 56
	cfg.Search.Word = "algorithm"
	cfg.Remove.Integer = 17
	cfg.Remove.Duplicate = 5

	return cfg
}

// LoadConfig overlays the YAML file at path onto DefaultConfig. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	bts, err := os.ReadFile(path) // #nosec G304 -- path is supplied by the operator
	if err != nil {
		return cfg, fmt.Errorf("reading demo config: %w", err)
	}

	if err := yaml.Unmarshal(bts, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing demo config %s: %w", path, err)
	}

	if len(cfg.Integers) == 0 || len(cfg.Words) == 0 || len(cfg.Duplicates) == 0 {
		return cfg, fmt.Errorf("demo config %s: %w", path, errEmptyDataset)
	}

	return cfg, nil
}
