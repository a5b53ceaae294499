// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the command definitions
// for the paintmix tool.
package cmd

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/paintmix"
	"cogentcore.org/paintmix/config"
	"cogentcore.org/paintmix/pigment"
	"cogentcore.org/paintmix/spectral"
)

// Stdout is where commands write their results.
var Stdout io.Writer = os.Stdout

// setup configures logging and returns an engine for the palette
// described by c, along with the function that rebuilds that palette.
func setup(c *config.Config) (*paintmix.Engine, func() (*pigment.Palette, error), error) {
	level, err := c.Level()
	if err != nil {
		return nil, nil, err
	}
	logx.UserLevel = level
	logx.SetDefaultLogger()

	g, err := c.Grid()
	if err != nil {
		return nil, nil, err
	}
	params, err := c.Params()
	if err != nil {
		return nil, nil, err
	}
	opts, err := c.ConverterOptions()
	if err != nil {
		return nil, nil, err
	}
	build := func() (*pigment.Palette, error) {
		return pigment.Build(g, spectral.CIE1931, c.Palette, c.Samples)
	}
	p, err := build()
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("palette", "pigments", p.Names(), "grid", g)
	e, err := paintmix.NewEngine(pigment.NewRegistry(p), params, opts...)
	if err != nil {
		return nil, nil, err
	}
	return e, build, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
