// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"math"
	"testing"

	"cogentcore.org/core/base/errors"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSRGB(t *testing.T) {
	assert.InDelta(t, 0.00015479876, SRGBToLinearComp(0.002), 1e-9)
	assert.InDelta(t, 0.23302202, SRGBToLinearComp(0.52), 1e-6)

	assert.InDelta(t, 0.01292, SRGBFromLinearComp(0.001), 1e-9)
	assert.InDelta(t, 0.84338915, SRGBFromLinearComp(0.68), 1e-6)

	for _, c := range []float64{0, 0.01, 0.2, 0.5, 0.9, 1} {
		assert.InDelta(t, c, SRGBFromLinearComp(SRGBToLinearComp(c)), 1e-12, "component %g", c)
	}
	// the two branch thresholds do not invert each other exactly
	assert.InDelta(t, 0.04045, SRGBFromLinearComp(SRGBToLinearComp(0.04045)), 1e-7)

	assert.Equal(t, 0, SRGBFloatToUint8(-0.2))
	assert.Equal(t, 255, SRGBFloatToUint8(1.7))
	assert.Equal(t, 128, SRGBFloatToUint8(0.5))
	assert.Equal(t, 0, SRGBFloatToUint8(math.NaN()))
}

func TestXYZ(t *testing.T) {
	x, y, z := SRGBLinToXYZ(0.5, 0.6, 0.7)
	assert.InDelta(t, 0.5470801, x, 1e-6)
	assert.InDelta(t, 0.5859503, y, 1e-6)
	assert.InDelta(t, 0.7463950, z, 1e-6)

	rl, gl, bl := XYZToSRGBLin(x, y, z)
	assert.InDelta(t, 0.5, rl, 1e-5)
	assert.InDelta(t, 0.6, gl, 1e-5)
	assert.InDelta(t, 0.7, bl, 1e-5)

	w, err := RGBToXYZ(White)
	require.NoError(t, err)
	assert.InDelta(t, D65.X, w.X, 1e-6)
	assert.InDelta(t, D65.Y, w.Y, 1e-6)
	assert.InDelta(t, D65.Z, w.Z, 1e-6)
	assert.Equal(t, White, XYZToRGB(D65))

	k, err := RGBToXYZ(Black)
	require.NoError(t, err)
	assert.Equal(t, XYZ{}, k)
}

func TestXYZToRGBClamps(t *testing.T) {
	assert.Equal(t, White, XYZToRGB(XYZ{5, 5, 5}))
	assert.Equal(t, Black, XYZToRGB(XYZ{-1, -1, -1}))
	assert.Equal(t, Black, XYZToRGB(XYZ{math.NaN(), math.NaN(), math.NaN()}))
	// pure spectral green is outside the sRGB gamut
	c := XYZToRGB(XYZ{0.1, 0.6, 0.05})
	assert.NoError(t, c.Validate())
}

func TestLab(t *testing.T) {
	assert.InDelta(t, 0.887904, LABCompress(0.7), 1e-6)
	assert.InDelta(t, 0.1379544, LABCompress(0.000003), 1e-6)
	assert.InDelta(t, 0.216, LABUncompress(0.6), 1e-9)

	lab := XYZToLab(XYZ{0.1, 0.3, 0.5}, D65)
	assert.InDelta(t, 61.65422, lab.L, 1e-3)
	assert.InDelta(t, -98.673805, lab.A, 1e-3)
	assert.InDelta(t, -20.413673, lab.B, 1e-3)

	xyz := LabToXYZ(Lab{28, 14, 36.2}, D65)
	assert.InDelta(t, 0.06422656, xyz.X, 1e-6)
	assert.InDelta(t, 0.054573778, xyz.Y, 1e-6)
	assert.InDelta(t, 0.008442593, xyz.Z, 1e-6)

	assert.InDelta(t, 2.3023312, LToY(17), 1e-4)
	assert.InDelta(t, 21.579498, YToL(3.4), 1e-4)

	w, err := RGBToLab(White)
	require.NoError(t, err)
	assert.InDelta(t, 100, w.L, 1e-3)
	assert.InDelta(t, 0, w.A, 1e-3)
	assert.InDelta(t, 0, w.B, 1e-3)
}

func TestLabMatchesColorful(t *testing.T) {
	colors := []RGB{{200, 50, 50}, {12, 200, 99}, {0, 0, 255}, {128, 128, 128}, {250, 240, 10}, {3, 4, 5}}
	for _, c := range colors {
		lab, err := RGBToLab(c)
		require.NoError(t, err)
		r, g, b := c.Normalized()
		l, a, bb := colorful.Color{R: r, G: g, B: b}.Lab()
		assert.InDelta(t, l*100, lab.L, 0.05, "L of %v", c)
		assert.InDelta(t, a*100, lab.A, 0.05, "a of %v", c)
		assert.InDelta(t, bb*100, lab.B, 0.05, "b of %v", c)
	}
}

func TestRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 5 {
		for g := 0; g <= 255; g += 5 {
			for b := 0; b <= 255; b += 5 {
				c := RGB{r, g, b}
				xyz, err := RGBToXYZ(c)
				require.NoError(t, err)
				back := xyz.Lab().XYZ().RGB()
				for i := range c {
					if d := back[i] - c[i]; d < -1 || d > 1 {
						t.Fatalf("round trip of %v gave %v", c, back)
					}
				}
			}
		}
	}
}

func TestInvalidRGB(t *testing.T) {
	_, err := RGBToXYZ(RGB{10, 256, 0})
	assert.ErrorIs(t, err, ErrInvalidColorValue)
	var ve *ValueError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "RGB.G", ve.Field)
	assert.Equal(t, 256.0, ve.Value)

	_, err = RGBToLab(RGB{-1, 0, 0})
	assert.ErrorIs(t, err, ErrInvalidColorValue)

	assert.ErrorIs(t, Lab{math.Inf(1), 0, 0}.Validate(), ErrInvalidColorValue)
	assert.NoError(t, Lab{50, 10, -10}.Validate())
}

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"200,50,50", RGB{200, 50, 50}},
		{"rgb(200, 50, 50)", RGB{200, 50, 50}},
		{"[0 0 0]", Black},
		{"#ffffff", White},
		{"#c83232", RGB{200, 50, 50}},
	}
	for _, tt := range tests {
		got, err := ParseRGB(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseRGB("1,2")
	assert.Error(t, err)
	_, err = ParseRGB("300,2,2")
	assert.ErrorIs(t, err, ErrInvalidColorValue)
	_, err = ParseRGB("#fff")
	assert.Error(t, err)

	assert.Equal(t, "#c83232", RGB{200, 50, 50}.Hex())
}
