// Package config loads the YAML configuration of the vif command.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/anyappinc/vif"
	"github.com/anyappinc/vif/plot"
)

// Config mirrors the command line flags. Unset switches default to true.
type Config struct {
	Features        []string `yaml:"features"`
	Sort            *bool    `yaml:"sort"`
	ThresholdLines  *bool    `yaml:"threshold_lines"`
	AddConstant     *bool    `yaml:"add_constant"`
	DropConstantRow *bool    `yaml:"drop_constant_row"`
	Output          string   `yaml:"output"`
	Format          string   `yaml:"format"`
	Width           int      `yaml:"width"`
	Height          int      `yaml:"height"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: "vif.png",
		Format: string(plot.PNG),
		Width:  plot.DefaultWidth,
		Height: plot.DefaultHeight,
	}
}

// Load reads the file at path on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the output settings.
func (c *Config) Validate() error {
	switch c.Format {
	case string(plot.PNG), string(plot.SVG), "none":
	default:
		return fmt.Errorf("invalid format %q: must be 'png', 'svg', or 'none'", c.Format)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid chart size %dx%d", c.Width, c.Height)
	}
	return nil
}

// Options converts the configuration into computation options.
func (c *Config) Options() vif.Options {
	opts := vif.Options{
		Sort:               enabled(c.Sort),
		ShowThresholdLines: enabled(c.ThresholdLines),
		AddConstant:        enabled(c.AddConstant),
		DropConstantRow:    enabled(c.DropConstantRow),
	}
	if c.Features != nil {
		opts.Features = vif.Columns(c.Features...)
	}
	return opts
}

// Disable turns a switch off.
func Disable(b **bool) {
	f := false
	*b = &f
}

func enabled(b *bool) bool {
	return b == nil || *b
}
