// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie converts between 8-bit sRGB, linear RGB, CIE XYZ and
// CIE L*a*b* colors. All functions are pure and safe for concurrent use.
package cie

import (
	"math"
)

// SRGBToLinearComp converts an sRGB gamma-encoded component (0-1)
// to its linear value (0-1), using the standard piecewise function.
func SRGBToLinearComp(srgb float64) float64 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear component (0-1) to its
// sRGB gamma-encoded value (0-1). It is the inverse of [SRGBToLinearComp].
func SRGBFromLinearComp(lin float64) float64 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*math.Pow(lin, 1/2.4) - 0.055
}

// SRGBToLinear converts gamma-encoded sRGB components (0-1)
// into linear components (0-1).
func SRGBToLinear(r, g, b float64) (rl, gl, bl float64) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts linear components (0-1) into
// gamma-encoded sRGB components (0-1). Values are not clamped.
func SRGBFromLinear(rl, gl, bl float64) (r, g, b float64) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// SRGBFloatToUint8 converts a 0-1 sRGB component to 0-255,
// clamping out-of-gamut values and rounding to the nearest integer.
func SRGBFloatToUint8(c float64) int {
	if math.IsNaN(c) {
		return 0
	}
	return int(math.Round(clamp(c, 0, 1) * 255))
}
