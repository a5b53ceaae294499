// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "fmt"

// XYZ is a set of CIE 1931 tristimulus values, scaled so that
// the Y of the reference white is 1.
type XYZ struct {
	X, Y, Z float64
}

func (c XYZ) String() string {
	return fmt.Sprintf("xyz(%g, %g, %g)", c.X, c.Y, c.Z)
}

// Lab returns the L*a*b* representation of the color relative to [D65].
func (c XYZ) Lab() Lab {
	return XYZToLab(c, D65)
}

// RGB returns the clamped 8-bit sRGB representation of the color.
func (c XYZ) RGB() RGB {
	return XYZToRGB(c)
}

// SRGBLinToXYZ converts linear sRGB components (0-1) to XYZ
// using the IEC 61966-2-1 matrix for a D65 white.
func SRGBLinToXYZ(rl, gl, bl float64) (x, y, z float64) {
	x = 0.4124564*rl + 0.3575761*gl + 0.1804375*bl
	y = 0.2126729*rl + 0.7151522*gl + 0.0721750*bl
	z = 0.0193339*rl + 0.1191920*gl + 0.9503041*bl
	return
}

// XYZToSRGBLin converts XYZ to linear sRGB components.
// It is the inverse of [SRGBLinToXYZ]; results may lie outside 0-1
// for colors that are outside the sRGB gamut.
func XYZToSRGBLin(x, y, z float64) (rl, gl, bl float64) {
	rl = 3.2404542*x - 1.5371385*y - 0.4985314*z
	gl = -0.9692660*x + 1.8760108*y + 0.0415560*z
	bl = 0.0556434*x - 0.2040259*y + 1.0572252*z
	return
}

// SRGBToXYZ converts gamma-encoded sRGB components (0-1) to XYZ.
func SRGBToXYZ(r, g, b float64) (x, y, z float64) {
	return SRGBLinToXYZ(SRGBToLinear(r, g, b))
}

// XYZToSRGB converts XYZ to gamma-encoded sRGB components.
// Linear values are clamped to 0-1 before encoding.
func XYZToSRGB(x, y, z float64) (r, g, b float64) {
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	return SRGBFromLinear(clamp(rl, 0, 1), clamp(gl, 0, 1), clamp(bl, 0, 1))
}

// RGBToXYZ converts an 8-bit sRGB color to XYZ. It fails with
// [ErrInvalidColorValue] if any channel is outside 0-255.
func RGBToXYZ(rgb RGB) (XYZ, error) {
	if err := rgb.Validate(); err != nil {
		return XYZ{}, err
	}
	r, g, b := rgb.Normalized()
	x, y, z := SRGBToXYZ(r, g, b)
	return XYZ{x, y, z}, nil
}

// XYZToRGB converts XYZ to an 8-bit sRGB color. It never fails:
// colors outside the sRGB gamut are clamped channel by channel,
// which is lossy and deliberate.
func XYZToRGB(c XYZ) RGB {
	r, g, b := XYZToSRGB(c.X, c.Y, c.Z)
	return RGB{SRGBFloatToUint8(r), SRGBFloatToUint8(g), SRGBFloatToUint8(b)}
}
