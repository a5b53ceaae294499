// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the paintmix tool.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/paintmix/cie"
	"cogentcore.org/paintmix/mix"
	"cogentcore.org/paintmix/spectral"
)

// Config is the configuration for all paintmix commands.
// It is set from flags and from paintmix.toml files.
type Config struct {

	// LogLevel is the minimum level of log messages to show:
	// debug, info, warn or error.
	LogLevel string `flag:"log-level" default:"warn"`

	// Palette is an optional TOML, YAML or JSON file of pigments
	// that extend or replace the built-in ones.
	Palette string `flag:"p,palette"`

	// Samples is an optional CSV or XLSX spreadsheet of measured
	// pigment reflectances in percent.
	Samples string `flag:"s,samples"`

	// GridStart is the first wavelength of the spectral grid in nm.
	GridStart float64 `default:"400"`

	// GridEnd is the last wavelength of the spectral grid in nm.
	GridEnd float64 `default:"700"`

	// GridStep is the spacing of the spectral grid in nm.
	GridStep float64 `default:"10"`

	// DarkeningRate in (0, 1] sets how fast a pigment's effect
	// saturates as its drops are added.
	DarkeningRate float64 `default:"0.5"`

	// MinFloor is the lowest reflectance a mix can reach.
	MinFloor float64 `default:"0.01"`

	// Model is the mixing model: multiplicative, kubelka-munk or layered.
	Model string `default:"multiplicative"`

	// Normalization is how tristimulus values are scaled:
	// white or chromaticity.
	Normalization string `default:"white"`

	// Target is the target color, as r,g,b or #rrggbb.
	Target string `flag:"t,target" default:"#c83232"`

	// Mixed is the color compared with Target by delta-e.
	Mixed string `flag:"m,mixed"`

	// Drops are the pigment drops to mix, such as `red=3 "hansa yellow"=2`.
	Drops string `flag:"d,drops"`

	// Pigment is the pigment to plot; if empty the mix of Drops is plotted.
	Pigment string

	// Output is the file to write plots to.
	Output string `flag:"o,output" default:"spectrum.png"`

	// Width is the width of plots in pixels.
	Width int `default:"400"`

	// Height is the height of plots in pixels.
	Height int `default:"200"`

	// JSON prints results as JSON instead of text.
	JSON bool `flag:"json"`
}

// Level returns the log level named by LogLevel, such as "debug",
// "info", "warn" or "error", optionally with an offset like "info+2".
// An empty LogLevel is [slog.LevelWarn].
func (c *Config) Level() (slog.Level, error) {
	name := strings.TrimSpace(c.LogLevel)
	if name == "" {
		return slog.LevelWarn, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

// Grid returns the configured spectral grid.
func (c *Config) Grid() (spectral.Grid, error) {
	return spectral.NewGrid(c.GridStart, c.GridEnd, c.GridStep)
}

// Params returns the configured mixing parameters.
func (c *Config) Params() (mix.Params, error) {
	m, err := mix.ParseModel(c.Model)
	if err != nil {
		return mix.Params{}, err
	}
	p := mix.Params{DarkeningRate: c.DarkeningRate, MinFloor: c.MinFloor, Model: m}
	return p, p.Validate()
}

// ConverterOptions returns the configured spectrum conversion options.
func (c *Config) ConverterOptions() ([]spectral.Option, error) {
	n, err := spectral.ParseNormalization(c.Normalization)
	if err != nil {
		return nil, err
	}
	return []spectral.Option{spectral.WithNormalization(n)}, nil
}

// TargetRGB returns the parsed target color.
func (c *Config) TargetRGB() (cie.RGB, error) {
	rgb, err := cie.ParseRGB(c.Target)
	if err != nil {
		return rgb, fmt.Errorf("target: %w", err)
	}
	return rgb, nil
}

// MixedRGB returns the parsed mixed color.
func (c *Config) MixedRGB() (cie.RGB, error) {
	rgb, err := cie.ParseRGB(c.Mixed)
	if err != nil {
		return rgb, fmt.Errorf("mixed: %w", err)
	}
	return rgb, nil
}

// DropCounts returns the parsed drops.
func (c *Config) DropCounts() (mix.DropCounts, error) {
	return mix.ParseDropCounts(c.Drops)
}
