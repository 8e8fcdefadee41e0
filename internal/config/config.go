package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/seqbench/internal/seq"
)

const (
	DefaultLabel       = "ArrayList-go"
	DefaultStructure   = "arraylist"
	DefaultRepetitions = 30
	DefaultInsertValue = 10
	DefaultOutputDir   = "data/results/time"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
)

// Operations is the full measured set, in the order result files are written.
var Operations = []string{
	"add_first", "add_middle", "add_last",
	"get_first", "get", "get_last",
	"remove_first", "remove_middle", "remove_last",
}

// Structures names the containers the harness can build.
var Structures = []string{"arraylist", "queue"}

type Config struct {
	Label           string    `yaml:"label"`
	Structure       string    `yaml:"structure"`
	InitialCapacity int       `yaml:"initial_capacity"`
	Repetitions     int       `yaml:"repetitions"`
	InsertValue     int       `yaml:"insert_value"`
	OutputDir       string    `yaml:"output_dir"`
	Operations      []string  `yaml:"operations"`
	Log             LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Label:           DefaultLabel,
		Structure:       DefaultStructure,
		InitialCapacity: seq.DefaultCapacity,
		Repetitions:     DefaultRepetitions,
		InsertValue:     DefaultInsertValue,
		OutputDir:       DefaultOutputDir,
		Operations:      append([]string(nil), Operations...),
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
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

// Validate rejects settings the harness cannot run with.
func (c *Config) Validate() error {
	if c.InitialCapacity <= 0 {
		return fmt.Errorf("%w: initial_capacity must be positive, got %d", seq.ErrInvalidConfiguration, c.InitialCapacity)
	}
	if c.Repetitions <= 0 {
		return fmt.Errorf("%w: repetitions must be positive, got %d", seq.ErrInvalidConfiguration, c.Repetitions)
	}
	if c.Label == "" {
		return fmt.Errorf("%w: label is empty", seq.ErrInvalidConfiguration)
	}
	if !contains(Structures, c.Structure) {
		return fmt.Errorf("%w: unknown structure: %s", seq.ErrInvalidConfiguration, c.Structure)
	}
	if len(c.Operations) == 0 {
		return fmt.Errorf("%w: no operations selected", seq.ErrInvalidConfiguration)
	}
	for _, op := range c.Operations {
		if !contains(Operations, op) {
			return fmt.Errorf("%w: unknown operation: %s", seq.ErrInvalidConfiguration, op)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
