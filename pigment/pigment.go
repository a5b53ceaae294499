// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pigment provides named pigment reflectance spectra,
// organized into immutable palettes held by a [Registry].
package pigment

import (
	"fmt"
	"math"
	"strings"

	"cogentcore.org/paintmix/cie"
	"cogentcore.org/paintmix/spectral"
	"github.com/jinzhu/copier"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Source is a pigment as measured: reflectance samples at a set of
// wavelengths, independent of any grid.
type Source struct {

	// Name is the lookup name, such as "red". Lookups are case insensitive.
	Name string `toml:"name" yaml:"name" json:"name"`

	// Label is the display name, such as "Bengal Rose (PR169)".
	// It defaults to the title-cased name.
	Label string `toml:"label" yaml:"label" json:"label,omitempty"`

	// Wavelengths are the sample wavelengths in nm, strictly increasing.
	Wavelengths []float64 `toml:"wavelengths" yaml:"wavelengths" json:"wavelengths"`

	// Reflectances are the measured reflectances, one per wavelength.
	Reflectances []float64 `toml:"reflectances" yaml:"reflectances" json:"reflectances"`

	// Percent indicates that Reflectances are given as 0-100
	// percentages rather than 0-1 fractions.
	Percent bool `toml:"percent" yaml:"percent" json:"percent,omitempty"`
}

// Pigment is a named pigment with its reflectance resampled onto
// the grid of the [Palette] that holds it. Pigments are immutable.
type Pigment struct {

	// Name is the normalized lookup name.
	Name string

	// Label is the display name.
	Label string

	// Source is the definition the pigment was built from,
	// with reflectances converted to 0-1.
	Source Source

	// Spectrum is the reflectance on the palette grid.
	// It is shared and must not be modified.
	Spectrum spectral.Spectrum
}

// NormalizeName returns the lookup key for a pigment name:
// trimmed and case folded.
func NormalizeName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// fractions returns a copy of the source with reflectances as 0-1
// fractions, validating lengths and ranges.
func (s Source) fractions() (Source, error) {
	var out Source
	if err := copier.CopyWithOption(&out, &s, copier.Option{DeepCopy: true}); err != nil {
		return Source{}, err
	}
	if len(out.Wavelengths) != len(out.Reflectances) {
		return Source{}, &spectral.GridMismatchError{Want: len(out.Wavelengths), Got: len(out.Reflectances)}
	}
	scale, hi := 1.0, 1.0
	if out.Percent {
		scale, hi = 0.01, 100
	}
	for i, v := range out.Reflectances {
		if math.IsNaN(v) || v < 0 || v > hi {
			return Source{}, &cie.ValueError{Field: fmt.Sprintf("%s.reflectances[%d]", s.Name, i), Value: v}
		}
		out.Reflectances[i] = v * scale
	}
	out.Percent = false
	if out.Label == "" {
		out.Label = cases.Title(language.English).String(strings.TrimSpace(out.Name))
	}
	return out, nil
}

// newPigment validates the source and resamples it onto g.
func newPigment(s Source, g spectral.Grid) (*Pigment, error) {
	name := NormalizeName(s.Name)
	if name == "" {
		return nil, fmt.Errorf("pigment: empty name")
	}
	src, err := s.fractions()
	if err != nil {
		return nil, fmt.Errorf("pigment %q: %w", s.Name, err)
	}
	sp, err := spectral.Resample(src.Wavelengths, src.Reflectances, g)
	if err != nil {
		return nil, fmt.Errorf("pigment %q: %w", s.Name, err)
	}
	return &Pigment{Name: name, Label: src.Label, Source: src, Spectrum: sp}, nil
}

func (p *Pigment) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Label)
}
