// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paintmix provides the operations of a paint mixing
// exercise: perceptual color differences, simulated mixing of pigment
// drops and the spectra and colors of the available pigments.
// Results are plain structs that encode to JSON for request layers.
package paintmix

import (
	"cogentcore.org/paintmix/cie"
	"cogentcore.org/paintmix/deltae"
	"cogentcore.org/paintmix/mix"
	"cogentcore.org/paintmix/pigment"
	"cogentcore.org/paintmix/spectral"
)

// Spectrum is a reflectance spectrum with its wavelengths in nm.
type Spectrum struct {
	Wavelengths  []float64 `json:"wavelengths"`
	Reflectances []float64 `json:"reflectances"`
}

// MixResult is the outcome of [Engine.MixPigments].
type MixResult struct {
	RGB      [3]int   `json:"rgb"`
	Spectrum Spectrum `json:"spectrum"`
}

// PigmentSpectrum describes one pigment in [Engine.ListPigmentSpectra].
type PigmentSpectrum struct {
	Label        string    `json:"label"`
	Wavelengths  []float64 `json:"wavelengths"`
	Reflectances []float64 `json:"reflectances"`
	RGB          [3]int    `json:"rgb"`
}

// ScoreResult is the outcome of [Engine.Score].
type ScoreResult struct {
	Target     [3]int         `json:"target"`
	Mixed      [3]int         `json:"mixed"`
	DeltaE     float64        `json:"delta_e"`
	DropCounts map[string]int `json:"drop_counts"`
	TotalDrops int            `json:"total_drops"`
}

// Engine performs the operations against the current palette of a
// registry. An Engine is safe for concurrent use; each call works on
// the palette that is current when it starts.
type Engine struct {
	registry *pigment.Registry
	mixer    *mix.Mixer
}

// NewEngine returns an engine mixing pigments from reg with params.
// Spectra are converted on the grid of the current palette with the
// CIE 1931 observer and the given converter options.
func NewEngine(reg *pigment.Registry, params mix.Params, opts ...spectral.Option) (*Engine, error) {
	conv, err := spectral.NewConverter(reg.Palette().Grid(), spectral.CIE1931, opts...)
	if err != nil {
		return nil, err
	}
	m, err := mix.NewMixer(conv, params)
	if err != nil {
		return nil, err
	}
	return &Engine{registry: reg, mixer: m}, nil
}

// Registry returns the pigment registry.
func (e *Engine) Registry() *pigment.Registry { return e.registry }

// Mixer returns the mixer.
func (e *Engine) Mixer() *mix.Mixer { return e.mixer }

// ComputeDeltaE returns the CIEDE2000 difference between two sRGB
// colors with channels in [0, 255].
func (e *Engine) ComputeDeltaE(a, b [3]int) (float64, error) {
	return deltae.RGB(cie.RGB(a), cie.RGB(b))
}

// MixPigments mixes the given drops of pigments.
func (e *Engine) MixPigments(drops map[string]int) (*MixResult, error) {
	p := e.registry.Palette()
	r, err := e.mixer.Mix(p, drops)
	if err != nil {
		return nil, err
	}
	return &MixResult{
		RGB:      r.RGB,
		Spectrum: Spectrum{Wavelengths: p.Grid().Wavelengths(), Reflectances: r.Spectrum},
	}, nil
}

// ListPigmentSpectra returns every pigment of the current palette
// by name, with its spectrum and color.
func (e *Engine) ListPigmentSpectra() (map[string]PigmentSpectrum, error) {
	p := e.registry.Palette()
	conv := e.mixer.Converter()
	out := make(map[string]PigmentSpectrum, p.Len())
	for _, pg := range p.All() {
		rgb, err := conv.RGB(pg.Spectrum)
		if err != nil {
			return nil, err
		}
		out[pg.Name] = PigmentSpectrum{
			Label:        pg.Label,
			Wavelengths:  p.Grid().Wavelengths(),
			Reflectances: pg.Spectrum.Clone(),
			RGB:          rgb,
		}
	}
	return out, nil
}

// Score mixes the drops and returns how far the mixed color is
// from target.
func (e *Engine) Score(target [3]int, drops map[string]int) (*ScoreResult, error) {
	if err := cie.RGB(target).Validate(); err != nil {
		return nil, err
	}
	m, err := e.MixPigments(drops)
	if err != nil {
		return nil, err
	}
	de, err := e.ComputeDeltaE(target, m.RGB)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(drops))
	for name, n := range drops {
		if n > 0 {
			counts[pigment.NormalizeName(name)] += n
		}
	}
	return &ScoreResult{
		Target:     target,
		Mixed:      m.RGB,
		DeltaE:     de,
		DropCounts: counts,
		TotalDrops: mix.DropCounts(drops).Total(),
	}, nil
}
