package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/nestframe/internal/form"
	"github.com/san-kum/nestframe/internal/pattern"
)

const (
	DefaultWidth   = 20
	DefaultHeight  = 20
	DefaultPadding = 4
	DefaultTheme   = "classic"
	DefaultDataDir = ".nestframe"
	DefaultAddr    = ":8080"
)

type Config struct {
	Width   int         `yaml:"width"`
	Height  int         `yaml:"height"`
	Padding int         `yaml:"padding"`
	Theme   string      `yaml:"theme"`
	DataDir string      `yaml:"data_dir"`
	Addr    string      `yaml:"addr"`
	Limits  form.Limits `yaml:"limits"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Padding: DefaultPadding,
		Theme:   DefaultTheme,
		DataDir: DefaultDataDir,
		Addr:    DefaultAddr,
		Limits:  form.DefaultLimits(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
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

func (c *Config) Dimensions() pattern.Dimensions {
	return pattern.Dimensions{Width: c.Width, Height: c.Height, Padding: c.Padding}
}

// Validate checks the configured dimensions against the configured limits.
func (c *Config) Validate() error {
	return c.Limits.Check(c.Dimensions())
}
