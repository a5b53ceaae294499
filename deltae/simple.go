// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"math"

	"cogentcore.org/paintmix/cie"
)

// CIE76 returns the Euclidean distance between two L*a*b* colors.
// It over-weights saturated colors and is mostly useful as a
// quick comparison against [CIEDE2000].
func CIE76(lab1, lab2 cie.Lab) (float64, error) {
	if err := validate(lab1, lab2); err != nil {
		return 0, err
	}
	return math.Sqrt(sq(lab2.L-lab1.L) + sq(lab2.A-lab1.A) + sq(lab2.B-lab1.B)), nil
}

// CIE94 returns the CIE94 color difference using the graphic arts
// constants (kL = 1, K1 = 0.045, K2 = 0.015). Unlike [CIEDE2000]
// it is not symmetric: lab1 is the reference color.
func CIE94(lab1, lab2 cie.Lab) (float64, error) {
	if err := validate(lab1, lab2); err != nil {
		return 0, err
	}
	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	dL := lab1.L - lab2.L
	dC := c1 - c2
	dH2 := sq(lab1.A-lab2.A) + sq(lab1.B-lab2.B) - dC*dC
	sC := 1 + 0.045*c1
	sH := 1 + 0.015*c1
	de := dL*dL + sq(dC/sC) + max(dH2, 0)/(sH*sH)
	return math.Sqrt(de), nil
}

// RGB returns the CIEDE2000 difference between two 8-bit sRGB colors,
// converted to L*a*b* relative to D65. Channels outside 0-255 fail
// with [cie.ErrInvalidColorValue].
func RGB(rgb1, rgb2 cie.RGB) (float64, error) {
	lab1, err := cie.RGBToLab(rgb1)
	if err != nil {
		return 0, err
	}
	lab2, err := cie.RGBToLab(rgb2)
	if err != nil {
		return 0, err
	}
	return CIEDE2000(lab1, lab2)
}

func validate(labs ...cie.Lab) error {
	for _, l := range labs {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func validateWeights(ws ...float64) error {
	names := [3]string{"kL", "kC", "kH"}
	for i, w := range ws {
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return &cie.ValueError{Field: names[i], Value: w}
		}
	}
	return nil
}
