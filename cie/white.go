// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// WhitePoint is a reference white expressed as XYZ with Y = 1.
type WhitePoint = XYZ

var (
	// D65 is the CIE standard illuminant D65 (noon daylight) white
	// for the 2 degree observer. It is the sRGB reference white.
	D65 = WhitePoint{X: 0.95047, Y: 1, Z: 1.08883}

	// D50 is the CIE standard illuminant D50 white for the
	// 2 degree observer, used by print and ICC workflows.
	D50 = WhitePoint{X: 0.96422, Y: 1, Z: 0.82521}
)
