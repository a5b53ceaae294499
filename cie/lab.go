// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"math"
)

// Lab is a color in the CIE 1976 L*a*b* space. L is 0-100 and
// a, b are roughly -128 to 127. Lab values are obtained by conversion
// from [XYZ] or [RGB], not constructed by hand.
type Lab struct {
	L, A, B float64
}

func (c Lab) String() string {
	return fmt.Sprintf("lab(%g, %g, %g)", c.L, c.A, c.B)
}

// XYZ returns the XYZ representation of the color relative to [D65].
func (c Lab) XYZ() XYZ {
	return LabToXYZ(c, D65)
}

// IsFinite returns whether all components are finite numbers.
func (c Lab) IsFinite() bool {
	return isFinite(c.L) && isFinite(c.A) && isFinite(c.B)
}

// Validate returns a [ValueError] for the first non-finite component.
func (c Lab) Validate() error {
	for i, v := range [3]float64{c.L, c.A, c.B} {
		if !isFinite(v) {
			return &ValueError{Field: "Lab." + labNames[i], Value: v}
		}
	}
	return nil
}

var labNames = [3]string{"L", "A", "B"}

const (
	labEpsilon = 216.0 / 24389.0 // 0.008856
	labKappa   = 24389.0 / 27.0  // 903.3
)

// LABCompress applies the forward L*a*b* companding function to
// a white-relative tristimulus ratio: the cube root above
// 0.008856 and a linear segment below.
func LABCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(f float64) float64 {
	f3 := f * f * f
	if f3 > labEpsilon {
		return f3
	}
	return (116*f - 16) / labKappa
}

// XYZToLab converts XYZ to L*a*b* against the given reference white.
func XYZToLab(c XYZ, white WhitePoint) Lab {
	fx := LABCompress(c.X / white.X)
	fy := LABCompress(c.Y / white.Y)
	fz := LABCompress(c.Z / white.Z)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToXYZ converts L*a*b* to XYZ against the given reference white.
func LabToXYZ(c Lab, white WhitePoint) XYZ {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200
	return XYZ{
		X: LABUncompress(fx) * white.X,
		Y: LABUncompress(fy) * white.Y,
		Z: LABUncompress(fz) * white.Z,
	}
}

// LToY converts an L* lightness value to relative luminance (Y, 0-100).
func LToY(l float64) float64 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL converts relative luminance (Y, 0-100) to L* lightness.
func YToL(y float64) float64 {
	return 116*LABCompress(y/100) - 16
}

// RGBToLab converts an 8-bit sRGB color to L*a*b* relative to [D65].
func RGBToLab(rgb RGB) (Lab, error) {
	xyz, err := RGBToXYZ(rgb)
	if err != nil {
		return Lab{}, err
	}
	return xyz.Lab(), nil
}
