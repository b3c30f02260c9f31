package main

import (
	"fmt"
	"image/color"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Config describes a rendered display: digit geometry, colors, and the
// optional bezel around the panel.
type Config struct {
	// Digit geometry
	DigitWidth   int `yaml:"digit_width"`
	DigitHeight  int `yaml:"digit_height"`
	DigitSpacing int `yaml:"digit_spacing"`
	SegmentWidth int `yaml:"segment_width"`

	// Colors (hex, e.g. "#ff2a00"); an empty inactive color leaves the
	// background visible through unlit segments.
	SegmentColor         string `yaml:"segment_color"`
	InactiveSegmentColor string `yaml:"inactive_segment_color"`
	BackgroundColor      string `yaml:"background_color"`

	// Output
	Scale  int `yaml:"scale"`
	Margin int `yaml:"margin"`

	// Bezel
	BezelEnabled bool   `yaml:"bezel"`
	BezelColor   string `yaml:"bezel_color"`
	BezelWidth   int    `yaml:"bezel_width"`
	BezelRadius  int    `yaml:"bezel_radius"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		DigitWidth:   12,
		DigitHeight:  24,
		DigitSpacing: 5,
		SegmentWidth: 3,

		SegmentColor:         "#ff2a00",
		InactiveSegmentColor: "#2a0d00",
		BackgroundColor:      "#120500",

		Scale:  4,
		Margin: 8,

		BezelEnabled: true,
		BezelColor:   "#30343a",
		BezelWidth:   24,
		BezelRadius:  16,
	}
}

// presets are built-in display looks selectable with --preset.
var presets = map[string]func(Config) Config{
	"red": func(c Config) Config {
		return c
	},
	"green": func(c Config) Config {
		c.SegmentColor = "#33ff66"
		c.InactiveSegmentColor = "#0a2913"
		c.BackgroundColor = "#051108"
		return c
	},
	"blue": func(c Config) Config {
		c.SegmentColor = "#41b0ff"
		c.InactiveSegmentColor = "#0b2233"
		c.BackgroundColor = "#040d14"
		return c
	},
	"lcd": func(c Config) Config {
		c.SegmentColor = "#15201a"
		c.InactiveSegmentColor = "#9fb3a1"
		c.BackgroundColor = "#aabfab"
		c.BezelColor = "#65707c"
		return c
	},
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset applies a named preset on top of the config.
func (c Config) ApplyPreset(name string) (Config, error) {
	apply, ok := presets[name]
	if !ok {
		return c, fmt.Errorf("unknown preset %q (available: %v)", name, PresetNames())
	}
	return apply(c), nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ParseColor parses a "#rrggbb" hex string. An empty string returns
// (zero, false) so callers can treat the color as unset.
func ParseColor(hex string) (color.RGBA, bool) {
	if len(hex) == 0 {
		return color.RGBA{}, false
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return color.RGBA{}, false
	}

	return color.RGBA{
		R: hexValue(hex[0])<<4 | hexValue(hex[1]),
		G: hexValue(hex[2])<<4 | hexValue(hex[3]),
		B: hexValue(hex[4])<<4 | hexValue(hex[5]),
		A: 255,
	}, true
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
