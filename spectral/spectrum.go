// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectral

import (
	"fmt"
	"math"
	"slices"

	"cogentcore.org/paintmix/cie"
)

// Spectrum is a reflectance spectrum: the fraction (0-1) of incident
// light reflected at each wavelength of a [Grid]. Spectra handed out
// by a palette are shared and must not be modified; use [Spectrum.Clone].
type Spectrum []float64

// Uniform returns a spectrum with the same reflectance at every
// wavelength of the grid. Uniform(g, 1) is the perfect white reflector.
func Uniform(g Grid, v float64) Spectrum {
	s := make(Spectrum, g.Len())
	for i := range s {
		s[i] = v
	}
	return s
}

// Clone returns a copy of the spectrum.
func (s Spectrum) Clone() Spectrum { return slices.Clone(s) }

// Validate returns a [cie.ValueError] for the first sample that is
// non-finite or outside 0-1.
func (s Spectrum) Validate() error {
	for i, v := range s {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return &cie.ValueError{Field: fmt.Sprintf("reflectance[%d]", i), Value: v}
		}
	}
	return nil
}

// Resample linearly interpolates the samples (wavelengths, values)
// onto the grid. Grid wavelengths outside the sampled range take the
// value of the nearest end sample. The sample wavelengths must be
// strictly increasing and match values in length.
func Resample(wavelengths, values []float64, g Grid) (Spectrum, error) {
	if len(wavelengths) != len(values) {
		return nil, &GridMismatchError{Want: len(wavelengths), Got: len(values)}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("spectral.Resample: no samples")
	}
	if err := checkIncreasing(wavelengths); err != nil {
		return nil, fmt.Errorf("spectral.Resample: %w", err)
	}
	s := make(Spectrum, g.Len())
	for i := range s {
		s[i] = interp(g.At(i), wavelengths, values)
	}
	return s, nil
}

// interp is piecewise linear interpolation of (xs, ys) at x,
// holding the end values outside the range of xs.
func interp(x float64, xs, ys []float64) float64 {
	n := len(xs)
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	j, found := slices.BinarySearch(xs, x)
	if found {
		return ys[j]
	}
	x0, x1 := xs[j-1], xs[j]
	return ys[j-1] + (ys[j]-ys[j-1])*(x-x0)/(x1-x0)
}
