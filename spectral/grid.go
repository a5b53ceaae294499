// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spectral converts reflectance spectra to tristimulus and
// display colors using tabulated CIE observer and illuminant data.
package spectral

import (
	"fmt"
	"math"
	"slices"

	"cogentcore.org/core/base/errors"
)

// DefaultGrid is 400-700 nm in 10 nm steps (31 samples).
var DefaultGrid = errors.Must1(NewGrid(400, 700, 10))

// MaxGridLen is the largest number of wavelengths a grid can hold.
const MaxGridLen = 10000

// Grid is an immutable, strictly increasing sequence of wavelengths
// in nanometers. Every spectrum paired with a grid must have
// exactly one sample per wavelength.
type Grid struct {
	wl []float64
}

// NewGrid returns the grid start, start+step, ... up to and including
// end (within a small tolerance for floating point steps).
func NewGrid(start, end, step float64) (Grid, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return Grid{}, fmt.Errorf("spectral.NewGrid: step must be positive, got %g", step)
	}
	if math.IsNaN(start) || math.IsNaN(end) || math.IsInf(start, 0) || math.IsInf(end, 0) || end < start {
		return Grid{}, fmt.Errorf("spectral.NewGrid: invalid range %g-%g nm", start, end)
	}
	nf := math.Floor((end-start)/step+1e-9) + 1
	if nf > MaxGridLen {
		return Grid{}, fmt.Errorf("spectral.NewGrid: %g-%g nm in %g nm steps has more than %d samples", start, end, step, MaxGridLen)
	}
	n := int(nf)
	wl := make([]float64, n)
	for i := range wl {
		wl[i] = start + float64(i)*step
	}
	return Grid{wl: wl}, nil
}

// GridOf returns a grid with the given wavelengths, which must be
// finite and strictly increasing.
func GridOf(wavelengths ...float64) (Grid, error) {
	if len(wavelengths) == 0 {
		return Grid{}, errors.New("spectral.GridOf: no wavelengths")
	}
	if len(wavelengths) > MaxGridLen {
		return Grid{}, fmt.Errorf("spectral.GridOf: %d wavelengths is more than %d", len(wavelengths), MaxGridLen)
	}
	if err := checkIncreasing(wavelengths); err != nil {
		return Grid{}, fmt.Errorf("spectral.GridOf: %w", err)
	}
	return Grid{wl: slices.Clone(wavelengths)}, nil
}

func checkIncreasing(wl []float64) error {
	for i, w := range wl {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("wavelength %d is not finite", i)
		}
		if i > 0 && w <= wl[i-1] {
			return fmt.Errorf("wavelengths must be strictly increasing: %g nm follows %g nm", w, wl[i-1])
		}
	}
	return nil
}

// Len returns the number of wavelengths.
func (g Grid) Len() int { return len(g.wl) }

// At returns the i-th wavelength in nm.
func (g Grid) At(i int) float64 { return g.wl[i] }

// Wavelengths returns a copy of the wavelengths.
func (g Grid) Wavelengths() []float64 { return slices.Clone(g.wl) }

// Equal returns whether both grids hold the same wavelengths.
func (g Grid) Equal(o Grid) bool { return slices.Equal(g.wl, o.wl) }

// Range returns the first and last wavelength.
func (g Grid) Range() (lo, hi float64) {
	if len(g.wl) == 0 {
		return 0, 0
	}
	return g.wl[0], g.wl[len(g.wl)-1]
}

func (g Grid) String() string {
	lo, hi := g.Range()
	return fmt.Sprintf("grid(%g-%g nm, %d samples)", lo, hi, g.Len())
}

// Check returns a [GridMismatchError] if s does not have one
// sample per wavelength of the grid.
func (g Grid) Check(s Spectrum) error {
	if len(s) != g.Len() {
		return &GridMismatchError{Want: g.Len(), Got: len(s)}
	}
	return nil
}
