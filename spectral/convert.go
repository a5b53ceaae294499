// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectral

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"cogentcore.org/paintmix/cie"
)

// Normalization selects how summed tristimulus values are scaled.
type Normalization int32

const (
	// NormalizeWhite scales each channel k to
	// W_k * sum(R*S*cmf_k) / sum(S*cmf_k), where S is the illuminant
	// and W the reference white. A perfect reflector maps exactly onto
	// the reference white and Y stays proportional to reflectance.
	NormalizeWhite Normalization = iota

	// NormalizeChromaticity divides X, Y and Z by X+Y+Z. Only the
	// chromaticity survives, so every spectrum of the same shape has
	// the same brightness. Kept for comparison with older results.
	NormalizeChromaticity
)

var normalizationNames = [...]string{"white", "chromaticity"}

func (n Normalization) String() string {
	if n < 0 || int(n) >= len(normalizationNames) {
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
	return normalizationNames[n]
}

// ParseNormalization returns the normalization with the given
// name (case insensitive).
func ParseNormalization(s string) (Normalization, error) {
	for i, nm := range normalizationNames {
		if strings.EqualFold(s, nm) {
			return Normalization(i), nil
		}
	}
	return 0, fmt.Errorf("spectral: unknown normalization %q (want one of %s)", s, strings.Join(normalizationNames[:], ", "))
}

// Converter converts reflectance spectra on a fixed grid to XYZ, Lab
// and sRGB. The observer and illuminant are resampled onto the grid
// once, so a Converter is cheap to use and safe for concurrent use.
type Converter struct {
	grid       Grid
	observer   *Observer
	illuminant *Illuminant
	white      cie.WhitePoint
	norm       Normalization

	// weights are S(λ)·cmf_k(λ) for each grid wavelength.
	weights [3][]float64

	// sums are the weights summed over the grid.
	sums [3]float64
}

// Option configures a [Converter].
type Option func(c *Converter)

// WithIlluminant sets the illuminant and the matching reference white.
// The default is [D65] with [cie.D65].
func WithIlluminant(il *Illuminant, white cie.WhitePoint) Option {
	return func(c *Converter) {
		c.illuminant = il
		c.white = white
	}
}

// WithNormalization sets the normalization; the default is [NormalizeWhite].
func WithNormalization(n Normalization) Option {
	return func(c *Converter) {
		c.norm = n
	}
}

// NewConverter returns a converter for spectra on grid g as seen by
// the given observer. It fails if the grid does not overlap the
// observer's domain.
func NewConverter(g Grid, obs *Observer, opts ...Option) (*Converter, error) {
	c := &Converter{grid: g, observer: obs, illuminant: D65, white: cie.D65}
	for _, opt := range opts {
		opt(c)
	}
	for k := range c.weights {
		c.weights[k] = make([]float64, g.Len())
	}
	for i := range g.Len() {
		nm := g.At(i)
		s := c.illuminant.At(nm)
		x, y, z := obs.At(nm)
		c.weights[0][i] = s * x
		c.weights[1][i] = s * y
		c.weights[2][i] = s * z
	}
	for k, w := range c.weights {
		for _, v := range w {
			c.sums[k] += v
		}
		if c.sums[k] <= 0 {
			return nil, fmt.Errorf("spectral.NewConverter: %v does not overlap %v", g, &obs.Table)
		}
	}
	slog.Debug("spectral converter", "grid", g, "observer", obs.Name, "illuminant", c.illuminant.Name, "normalization", c.norm)
	return c, nil
}

// Grid returns the grid the converter was built for.
func (c *Converter) Grid() Grid { return c.grid }

// Normalization returns the normalization in use.
func (c *Converter) Normalization() Normalization { return c.norm }

// XYZ returns the tristimulus values of the spectrum. It fails with
// [ErrGridMismatch] if the spectrum length differs from the grid and
// with [cie.ErrInvalidColorValue] for non-finite samples.
func (c *Converter) XYZ(s Spectrum) (cie.XYZ, error) {
	if err := c.grid.Check(s); err != nil {
		return cie.XYZ{}, err
	}
	var acc [3]float64
	for i, r := range s {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return cie.XYZ{}, &cie.ValueError{Field: fmt.Sprintf("reflectance[%d]", i), Value: r}
		}
		for k := range acc {
			acc[k] += r * c.weights[k][i]
		}
	}
	switch c.norm {
	case NormalizeChromaticity:
		sum := acc[0] + acc[1] + acc[2]
		if sum > 0 {
			return cie.XYZ{X: acc[0] / sum, Y: acc[1] / sum, Z: acc[2] / sum}, nil
		}
		return cie.XYZ{}, nil
	default:
		return cie.XYZ{
			X: c.white.X * acc[0] / c.sums[0],
			Y: c.white.Y * acc[1] / c.sums[1],
			Z: c.white.Z * acc[2] / c.sums[2],
		}, nil
	}
}

// RGB returns the clamped 8-bit sRGB color of the spectrum.
func (c *Converter) RGB(s Spectrum) (cie.RGB, error) {
	xyz, err := c.XYZ(s)
	if err != nil {
		return cie.RGB{}, err
	}
	return xyz.RGB(), nil
}

// Lab returns the L*a*b* color of the spectrum relative to the
// converter's reference white.
func (c *Converter) Lab(s Spectrum) (cie.Lab, error) {
	xyz, err := c.XYZ(s)
	if err != nil {
		return cie.Lab{}, err
	}
	return cie.XYZToLab(xyz, c.white), nil
}

// SpectrumToXYZ converts a spectrum on grid g to XYZ as seen by the
// observer under [D65], using [NormalizeWhite]. Callers converting
// many spectra should build a [Converter] once instead.
func SpectrumToXYZ(s Spectrum, g Grid, obs *Observer) (cie.XYZ, error) {
	if err := g.Check(s); err != nil {
		return cie.XYZ{}, err
	}
	c, err := NewConverter(g, obs)
	if err != nil {
		return cie.XYZ{}, err
	}
	return c.XYZ(s)
}
