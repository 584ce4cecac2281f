package main

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wavegrid/orientation"
	"github.com/katalvlaran/wavegrid/wfc"
)

// generateConfig carries every knob of the generate command. The same
// struct backs the flag set and the optional YAML config file; flags
// that were set explicitly win over file values.
type generateConfig struct {
	Input        string `yaml:"input"`
	Output       string `yaml:"output"`
	PatternSize  int    `yaml:"pattern_size"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Orientations string `yaml:"orientations"`
	Wrap         string `yaml:"wrap"`
	Attempts     int    `yaml:"attempts"`
	Parallel     bool   `yaml:"parallel"`
	Workers      int    `yaml:"workers"`
	Seed         int64  `yaml:"seed"`
	EmptyColour  string `yaml:"empty_colour"`
}

func defaultGenerateConfig() generateConfig {
	return generateConfig{
		PatternSize:  3,
		Width:        64,
		Height:       64,
		Orientations: "all",
		Wrap:         "none",
		Attempts:     10,
	}
}

// mergeConfigFile loads path and fills in every knob whose flag the user
// did not set explicitly.
func mergeConfigFile(cmd *cobra.Command, cfg *generateConfig, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var file generateConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	set := func(flag string, apply func()) {
		if !cmd.Flags().Changed(flag) {
			apply()
		}
	}
	set("input", func() { cfg.Input = file.Input })
	set("output", func() { cfg.Output = file.Output })
	set("pattern-size", func() {
		if file.PatternSize != 0 {
			cfg.PatternSize = file.PatternSize
		}
	})
	set("width", func() {
		if file.Width != 0 {
			cfg.Width = file.Width
		}
	})
	set("height", func() {
		if file.Height != 0 {
			cfg.Height = file.Height
		}
	})
	set("orientations", func() {
		if file.Orientations != "" {
			cfg.Orientations = file.Orientations
		}
	})
	set("wrap", func() {
		if file.Wrap != "" {
			cfg.Wrap = file.Wrap
		}
	})
	set("attempts", func() {
		if file.Attempts != 0 {
			cfg.Attempts = file.Attempts
		}
	})
	set("parallel", func() { cfg.Parallel = cfg.Parallel || file.Parallel })
	set("workers", func() { cfg.Workers = file.Workers })
	set("seed", func() { cfg.Seed = file.Seed })
	set("empty-colour", func() { cfg.EmptyColour = file.EmptyColour })

	return nil
}

func parseOrientations(s string) ([]orientation.Orientation, error) {
	switch s {
	case "all":
		return orientation.All, nil
	case "original":
		return orientation.Only(orientation.Original), nil
	default:
		return nil, fmt.Errorf("unknown orientations %q (want all or original)", s)
	}
}

func parseWrap(s string) (wfc.Wrap, error) {
	switch s {
	case "none":
		return wfc.WrapNone{}, nil
	case "x":
		return wfc.WrapX{}, nil
	case "y":
		return wfc.WrapY{}, nil
	case "xy":
		return wfc.WrapXY{}, nil
	default:
		return nil, fmt.Errorf("unknown wrap mode %q (want none, x, y or xy)", s)
	}
}

// parseColour reads an RRGGBBAA hex string.
func parseColour(s string) (color.RGBA, error) {
	if len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("colour %q must be 8 hex digits (RRGGBBAA)", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
