// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deltae computes perceptual color differences (ΔE)
// between [cie.Lab] colors.
package deltae

import (
	"math"

	"cogentcore.org/paintmix/cie"
)

// pow25to7 is 25^7, used by the G factor and the R_C term.
const pow25to7 = 6103515625.0

// CIEDE2000 returns the CIEDE2000 color difference between two
// L*a*b* colors with unit parametric weights (kL = kC = kH = 1).
// The result is symmetric in its arguments, non-negative, and
// exactly zero for identical colors. Non-finite components fail
// with [cie.ErrInvalidColorValue].
func CIEDE2000(lab1, lab2 cie.Lab) (float64, error) {
	return CIEDE2000Weighted(lab1, lab2, 1, 1, 1)
}

// CIEDE2000Weighted is [CIEDE2000] with explicit parametric weights
// for the lightness, chroma and hue terms. The weights must be
// finite and positive.
//
// The steps and equation numbers follow Sharma, Wu and Dalal,
// "The CIEDE2000 Color-Difference Formula: Implementation Notes,
// Supplementary Test Data, and Mathematical Observations" (2005).
func CIEDE2000Weighted(lab1, lab2 cie.Lab, kL, kC, kH float64) (float64, error) {
	if err := validate(lab1, lab2); err != nil {
		return 0, err
	}
	if err := validateWeights(kL, kC, kH); err != nil {
		return 0, err
	}

	// step 1: C'_i and h'_i (eq. 2-7)
	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	cBar7 := math.Pow((c1+c2)/2, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25to7)))
	a1p := (1 + g) * lab1.A
	a2p := (1 + g) * lab2.A
	c1p := math.Hypot(a1p, lab1.B)
	c2p := math.Hypot(a2p, lab2.B)
	h1p := hueAngle(a1p, lab1.B)
	h2p := hueAngle(a2p, lab2.B)

	// step 2: ΔL', ΔC', ΔH' (eq. 8-11)
	dLp := lab2.L - lab1.L
	dCp := c2p - c1p
	cProd := c1p * c2p
	var dhp float64
	if cProd != 0 {
		dhp = h2p - h1p
		switch {
		case dhp > 180:
			dhp -= 360
		case dhp < -180:
			dhp += 360
		}
	}
	dHp := 2 * math.Sqrt(cProd) * sinDeg(dhp/2)

	// step 3: weighting functions and rotation term (eq. 12-22)
	lBarP := (lab1.L + lab2.L) / 2
	cBarP := (c1p + c2p) / 2
	hBarP := meanHue(h1p, h2p, cProd)

	t := 1 -
		0.17*cosDeg(hBarP-30) +
		0.24*cosDeg(2*hBarP) +
		0.32*cosDeg(3*hBarP+6) -
		0.20*cosDeg(4*hBarP-63)
	dTheta := 30 * math.Exp(-sq((hBarP-275)/25))
	cBarP7 := math.Pow(cBarP, 7)
	rC := 2 * math.Sqrt(cBarP7/(cBarP7+pow25to7))
	lBar50 := sq(lBarP - 50)
	sL := 1 + 0.015*lBar50/math.Sqrt(20+lBar50)
	sC := 1 + 0.045*cBarP
	sH := 1 + 0.015*cBarP*t
	rT := -sinDeg(2*dTheta) * rC

	lTerm := dLp / (kL * sL)
	cTerm := dCp / (kC * sC)
	hTerm := dHp / (kH * sH)
	de := lTerm*lTerm + cTerm*cTerm + hTerm*hTerm + rT*cTerm*hTerm
	// rounding can push the sum of a near-zero difference just below 0
	return math.Sqrt(max(de, 0)), nil
}

// hueAngle returns atan2(b, a) in degrees within [0, 360),
// defined as 0 for the achromatic case a = b = 0.
func hueAngle(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

// meanHue returns h̄' (eq. 14), taking the shorter arc
// between the two hues. When either chroma is zero the
// hue is undefined and the plain sum is used.
func meanHue(h1, h2, cProd float64) float64 {
	sum := h1 + h2
	switch {
	case cProd == 0:
		return sum
	case math.Abs(h1-h2) <= 180:
		return sum / 2
	case sum < 360:
		return (sum + 360) / 2
	default:
		return (sum - 360) / 2
	}
}

func sq(x float64) float64 { return x * x }

func sinDeg(d float64) float64 { return math.Sin(d * math.Pi / 180) }

func cosDeg(d float64) float64 { return math.Cos(d * math.Pi / 180) }
