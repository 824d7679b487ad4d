package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const FileName = "aoc.toml"

type Config struct {
	InputsDir string   `toml:"inputs_dir"`
	Format    string   `toml:"format"`
	Cubes     Cubes    `toml:"cubes"`
	Galaxies  Galaxies `toml:"galaxies"`
}

// Cubes is the bag content day 2 checks each game against
type Cubes struct {
	Red   int `toml:"red"`
	Green int `toml:"green"`
	Blue  int `toml:"blue"`
}

// Galaxies holds the day 11 expansion factors for part 1 and part 2
type Galaxies struct {
	Expansion      int `toml:"expansion"`
	OlderExpansion int `toml:"older_expansion"`
}

func Default() *Config {
	return &Config{
		InputsDir: "inputs",
		Format:    "default",
		Cubes:     Cubes{Red: 12, Green: 13, Blue: 14},
		Galaxies:  Galaxies{Expansion: 2, OlderExpansion: 1000000},
	}
}

// ReadConfig loads aoc.toml from dir. A missing file yields the default config.
// Unset or non-positive puzzle parameters fall back to their defaults.
func ReadConfig(dir string) (*Config, error) {
	defaultConfig := Default()

	fileName := filepath.Join(dir, FileName)
	if _, err := os.Stat(fileName); errors.Is(err, os.ErrNotExist) {
		return defaultConfig, nil
	}
	file, err := os.ReadFile(fileName)
	if err != nil {
		return defaultConfig, err
	}
	config := Default()
	err = toml.Unmarshal(file, config)
	if err != nil {
		return defaultConfig, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	config.applyDefaults(defaultConfig)
	return config, nil
}

func (c *Config) applyDefaults(d *Config) {
	if c.InputsDir == "" {
		c.InputsDir = d.InputsDir
	}
	if c.Format == "" {
		c.Format = d.Format
	}
	if c.Cubes.Red <= 0 {
		c.Cubes.Red = d.Cubes.Red
	}
	if c.Cubes.Green <= 0 {
		c.Cubes.Green = d.Cubes.Green
	}
	if c.Cubes.Blue <= 0 {
		c.Cubes.Blue = d.Cubes.Blue
	}
	if c.Galaxies.Expansion <= 0 {
		c.Galaxies.Expansion = d.Galaxies.Expansion
	}
	if c.Galaxies.OlderExpansion <= 0 {
		c.Galaxies.OlderExpansion = d.Galaxies.OlderExpansion
	}
}

// InputsPath resolves the inputs directory against root unless it is absolute
func (c *Config) InputsPath(root string) string {
	if filepath.IsAbs(c.InputsDir) {
		return c.InputsDir
	}
	return filepath.Join(root, c.InputsDir)
}
