// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectral

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Table is a set of regularly sampled spectral functions.
// Wavelengths are in nm; the sampled values are unitless.
// Outside [Table.Domain] every function is zero.
type Table struct {

	// Name identifies the data set.
	Name string

	// Version is the version of the tabulated data. It changes
	// whenever the values or their resolution change.
	Version *semver.Version

	// Start is the wavelength of the first sample in nm.
	Start float64

	// Step is the spacing between samples in nm.
	Step float64

	// Funcs holds one or more sampled functions of equal length.
	Funcs [][]float64
}

// Len returns the number of samples per function.
func (t *Table) Len() int {
	if len(t.Funcs) == 0 {
		return 0
	}
	return len(t.Funcs[0])
}

// Domain returns the first and last tabulated wavelength.
func (t *Table) Domain() (lo, hi float64) {
	return t.Start, t.Start + float64(t.Len()-1)*t.Step
}

// At returns the value of function f at the given wavelength,
// linearly interpolated between samples, or zero outside the domain.
func (t *Table) At(f int, nm float64) float64 {
	lo, hi := t.Domain()
	if nm < lo || nm > hi {
		return 0
	}
	pos := (nm - t.Start) / t.Step
	i := int(pos)
	vals := t.Funcs[f]
	if i >= len(vals)-1 {
		return vals[len(vals)-1]
	}
	frac := pos - float64(i)
	return vals[i] + (vals[i+1]-vals[i])*frac
}

func (t *Table) String() string {
	lo, hi := t.Domain()
	return fmt.Sprintf("%s v%s (%g-%g nm, %g nm)", t.Name, t.Version, lo, hi, t.Step)
}

// Observer is a standard observer: color matching functions
// x̄, ȳ, z̄ as [Table.Funcs] 0, 1 and 2.
type Observer struct {
	Table
}

// At returns x̄, ȳ and z̄ at the given wavelength.
func (o *Observer) At(nm float64) (x, y, z float64) {
	return o.Table.At(0, nm), o.Table.At(1, nm), o.Table.At(2, nm)
}

// Illuminant is a relative spectral power distribution,
// held in [Table.Funcs] 0.
type Illuminant struct {
	Table
}

// At returns the relative power at the given wavelength.
func (il *Illuminant) At(nm float64) float64 {
	return il.Table.At(0, nm)
}

// CIE1931 is the CIE 1931 2 degree standard observer at 10 nm
// resolution over 380-780 nm.
var CIE1931 = &Observer{Table{
	Name:    "CIE 1931 2°",
	Version: semver.MustParse("1.0.0"),
	Start:   380,
	Step:    10,
	Funcs: [][]float64{
		{ // x̄
			0.001368, 0.004243, 0.014310, 0.043510, 0.134380, 0.283900, 0.348280, 0.336200, 0.290800, 0.195360,
			0.095640, 0.032010, 0.004900, 0.009300, 0.063270, 0.165500, 0.290400, 0.433450, 0.594500, 0.762100,
			0.916300, 1.026300, 1.062200, 1.002600, 0.854450, 0.642400, 0.447900, 0.283500, 0.164900, 0.087400,
			0.046770, 0.022700, 0.011359, 0.005790, 0.002899, 0.001440, 0.000690, 0.000332, 0.000166, 0.000083,
			0.000042,
		},
		{ // ȳ
			0.000039, 0.000120, 0.000396, 0.001210, 0.004000, 0.011600, 0.023000, 0.038000, 0.060000, 0.090980,
			0.139020, 0.208020, 0.323000, 0.503000, 0.710000, 0.862000, 0.954000, 0.994950, 0.995000, 0.952000,
			0.870000, 0.757000, 0.631000, 0.503000, 0.381000, 0.265000, 0.175000, 0.107000, 0.061000, 0.032000,
			0.017000, 0.008210, 0.004102, 0.002091, 0.001047, 0.000520, 0.000249, 0.000120, 0.000060, 0.000030,
			0.000015,
		},
		{ // z̄
			0.006450, 0.020050, 0.067850, 0.207400, 0.645600, 1.385600, 1.747060, 1.772110, 1.669200, 1.287640,
			0.812950, 0.465180, 0.272000, 0.158200, 0.078250, 0.042160, 0.020300, 0.008750, 0.003900, 0.002100,
			0.001650, 0.001100, 0.000800, 0.000340, 0.000190, 0.000050, 0.000020, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0,
		},
	},
}}

// D65 is the CIE standard illuminant D65 at 10 nm resolution
// over 380-780 nm, normalized to 100 at 560 nm.
var D65 = &Illuminant{Table{
	Name:    "CIE D65",
	Version: semver.MustParse("1.0.0"),
	Start:   380,
	Step:    10,
	Funcs: [][]float64{{
		49.9755, 54.6482, 82.7549, 91.4860, 93.4318, 86.6823, 104.865, 117.008, 117.812, 114.861,
		115.923, 108.811, 109.354, 107.802, 104.790, 107.689, 104.405, 104.046, 100.000, 96.3342,
		95.7880, 88.6856, 90.0062, 89.5991, 87.6987, 83.2886, 83.6992, 80.0268, 80.2146, 82.2778,
		78.2842, 69.7213, 71.6091, 74.3490, 61.6040, 69.8856, 75.0870, 63.5927, 46.4182, 66.8054,
		63.3828,
	}},
}}

// E is the equal-energy illuminant over 380-780 nm.
var E = &Illuminant{Table{
	Name:    "CIE E",
	Version: semver.MustParse("1.0.0"),
	Start:   380,
	Step:    400,
	Funcs:   [][]float64{{100, 100}},
}}
