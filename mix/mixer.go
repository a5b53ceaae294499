// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mix simulates subtractive mixing of pigment drops on a
// spectral grid.
package mix

import (
	"math"

	"cogentcore.org/paintmix/cie"
	"cogentcore.org/paintmix/pigment"
	"cogentcore.org/paintmix/spectral"
)

// Result is the outcome of a mix.
type Result struct {

	// Spectrum is the mixed reflectance on the palette grid.
	Spectrum spectral.Spectrum

	// RGB is the sRGB color of the spectrum.
	RGB cie.RGB

	// Total is the total number of drops.
	Total int
}

// Mixer mixes pigments from a palette. A Mixer is immutable and safe
// for concurrent use.
type Mixer struct {
	conv   *spectral.Converter
	params Params
}

// NewMixer returns a mixer that converts mixed spectra with conv.
func NewMixer(conv *spectral.Converter, params Params) (*Mixer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Mixer{conv: conv, params: params}, nil
}

// Params returns the mixing parameters.
func (m *Mixer) Params() Params { return m.params }

// Converter returns the spectrum converter.
func (m *Mixer) Converter() *spectral.Converter { return m.conv }

// Mix returns the mix of the given drops of pigments from p.
// All counts are validated before anything is computed: negative
// counts fail with [ErrInvalidDropCount] and pigments with positive
// counts that p does not hold fail with [pigment.ErrUnknownPigment].
// Pigments with zero counts are ignored. With no drops the result
// is the all-ones spectrum and its color, which is white under
// [spectral.NormalizeWhite].
func (m *Mixer) Mix(p *pigment.Palette, drops DropCounts) (*Result, error) {
	if err := drops.Validate(); err != nil {
		return nil, err
	}
	g := m.conv.Grid()
	if !p.Grid().Equal(g) {
		return nil, &spectral.GridMismatchError{Want: g.Len(), Got: p.Grid().Len()}
	}
	var used []*pigment.Pigment
	var counts []int
	for _, name := range drops.Names() {
		n := drops[name]
		if n == 0 {
			continue
		}
		pg, err := p.Pigment(name)
		if err != nil {
			return nil, err
		}
		used = append(used, pg)
		counts = append(counts, n)
	}
	total := drops.Total()
	if total == 0 {
		s := spectral.Uniform(g, 1)
		rgb, err := m.conv.RGB(s)
		if err != nil {
			return nil, err
		}
		return &Result{Spectrum: s, RGB: rgb}, nil
	}

	var s spectral.Spectrum
	switch m.params.Model {
	case KubelkaMunk:
		s = m.kubelkaMunk(used, counts, total)
	default:
		s = m.multiplicative(used, counts, total)
	}
	for i, r := range s {
		s[i] = min(max(r, m.params.MinFloor), 1)
	}
	rgb, err := m.conv.RGB(s)
	if err != nil {
		return nil, err
	}
	return &Result{Spectrum: s, RGB: rgb, Total: total}, nil
}

// Saturation returns 1-(1-rate)^n for n drops: 0 for no drops,
// the darkening rate for one drop, approaching 1 as drops are added.
func (m *Mixer) Saturation(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 1 - math.Pow(1-m.params.DarkeningRate, float64(n))
}

// Exponent returns the exponent applied to the reflectance of a
// pigment contributing count of total drops. In the [Multiplicative]
// model it is the pigment's share count/total times the saturation
// of the total, so the exponents of a mix sum to [Mixer.Saturation]
// of the total. In the [Layered] model it is the saturation of count
// alone.
func (m *Mixer) Exponent(count, total int) float64 {
	if count <= 0 || total <= 0 {
		return 0
	}
	if m.params.Model == Layered {
		return m.Saturation(count)
	}
	return float64(count) / float64(total) * m.Saturation(total)
}

func (m *Mixer) multiplicative(used []*pigment.Pigment, counts []int, total int) spectral.Spectrum {
	s := spectral.Uniform(m.conv.Grid(), 1)
	for j, pg := range used {
		e := m.Exponent(counts[j], total)
		for i, r := range pg.Spectrum {
			s[i] *= math.Pow(r, e)
		}
	}
	return s
}

// kmMin and kmMax bound reflectances entering K/S so that the ratio
// stays finite.
const (
	kmMin = 1e-4
	kmMax = 0.9999
)

// KS returns the single-constant Kubelka-Munk absorption to
// scattering ratio of reflectance r.
func KS(r float64) float64 {
	r = min(max(r, kmMin), kmMax)
	return (1 - r) * (1 - r) / (2 * r)
}

// KSReflectance returns the reflectance with K/S ratio ks.
func KSReflectance(ks float64) float64 {
	return 1 + ks - math.Sqrt(ks*ks+2*ks)
}

func (m *Mixer) kubelkaMunk(used []*pigment.Pigment, counts []int, total int) spectral.Spectrum {
	s := make(spectral.Spectrum, m.conv.Grid().Len())
	for j, pg := range used {
		share := float64(counts[j]) / float64(total)
		for i, r := range pg.Spectrum {
			s[i] += share * KS(r)
		}
	}
	for i, ks := range s {
		s[i] = KSReflectance(ks)
	}
	return s
}
