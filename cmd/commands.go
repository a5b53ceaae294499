// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/paintmix/config"
	"cogentcore.org/paintmix/pigment"
	"cogentcore.org/paintmix/spectral"
	"github.com/mitchellh/go-homedir"
)

// DeltaE prints the CIEDE2000 difference between the target
// and mixed colors.
func DeltaE(c *config.Config) error {
	e, _, err := setup(c)
	if err != nil {
		return err
	}
	target, err := c.TargetRGB()
	if err != nil {
		return err
	}
	mixed, err := c.MixedRGB()
	if err != nil {
		return err
	}
	de, err := e.ComputeDeltaE(target, mixed)
	if err != nil {
		return err
	}
	if c.JSON {
		return printJSON(map[string]any{"target": target, "mixed": mixed, "delta_e": de})
	}
	fmt.Fprintf(Stdout, "target %s\nmixed  %s\ndelta_e %.4f\n", describe(target), describe(mixed), de)
	return nil
}

// Mix prints the color and spectrum of a mix of pigment drops.
func Mix(c *config.Config) error {
	e, _, err := setup(c)
	if err != nil {
		return err
	}
	drops, err := c.DropCounts()
	if err != nil {
		return err
	}
	r, err := e.MixPigments(drops)
	if err != nil {
		return err
	}
	if c.JSON {
		return printJSON(r)
	}
	fmt.Fprintf(Stdout, "%s  %d drops\n", describe(r.RGB), drops.Total())
	for i, nm := range r.Spectrum.Wavelengths {
		fmt.Fprintf(Stdout, "%5g nm  %.4f\n", nm, r.Spectrum.Reflectances[i])
	}
	return nil
}

// Score mixes the drops and prints how far the result is
// from the target color.
func Score(c *config.Config) error {
	e, _, err := setup(c)
	if err != nil {
		return err
	}
	target, err := c.TargetRGB()
	if err != nil {
		return err
	}
	drops, err := c.DropCounts()
	if err != nil {
		return err
	}
	s, err := e.Score(target, drops)
	if err != nil {
		return err
	}
	if c.JSON {
		return printJSON(s)
	}
	fmt.Fprintf(Stdout, "target %s\nmixed  %s\ndrops  %v (%d)\ndelta_e %.4f\n",
		describe(s.Target), describe(s.Mixed), drops, s.TotalDrops, s.DeltaE)
	return nil
}

// Pigments lists the available pigments with their colors.
func Pigments(c *config.Config) error {
	e, _, err := setup(c)
	if err != nil {
		return err
	}
	list, err := e.ListPigmentSpectra()
	if err != nil {
		return err
	}
	if c.JSON {
		return printJSON(list)
	}
	for _, name := range e.Registry().Palette().Names() {
		ps := list[name]
		fmt.Fprintf(Stdout, "%-12s %s  %s\n", name, describe(ps.RGB), ps.Label)
	}
	return nil
}

// Plot writes a PNG plot of the spectrum of a pigment, or of the
// mix of the drops if no pigment is given.
func Plot(c *config.Config) error {
	e, _, err := setup(c)
	if err != nil {
		return err
	}
	p := e.Registry().Palette()
	var s spectral.Spectrum
	if c.Pigment != "" {
		s, err = p.Spectrum(c.Pigment)
		if err != nil {
			return err
		}
	} else {
		drops, err := c.DropCounts()
		if err != nil {
			return err
		}
		r, err := e.Mixer().Mix(p, drops)
		if err != nil {
			return err
		}
		s = r.Spectrum
	}
	rgb, err := e.Mixer().Converter().RGB(s)
	if err != nil {
		return err
	}
	opts := spectral.DefaultPlotOptions()
	opts.Width, opts.Height = c.Width, c.Height
	opts.Line = rgb.AsRGBA()

	file, err := homedir.Expand(c.Output)
	if err != nil {
		return err
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := spectral.Plot(f, p.Grid(), s, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("wrote spectrum plot", "file", file)
	fmt.Fprintln(Stdout, file)
	return nil
}

// Watch reloads the palette and samples files whenever they change,
// until interrupted.
func Watch(c *config.Config) error {
	e, build, err := setup(c)
	if err != nil {
		return err
	}
	if c.Palette == "" && c.Samples == "" {
		return fmt.Errorf("watch: no palette or samples file given")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	slog.Info("watching pigment files", "palette", c.Palette, "samples", c.Samples)
	fmt.Fprintln(Stdout, "watching for changes; press Ctrl+C to stop")
	return pigment.Watch(ctx, e.Registry(), build, c.Palette, c.Samples)
}
