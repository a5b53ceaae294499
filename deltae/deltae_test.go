// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"cogentcore.org/paintmix/cie"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sharmaPairs are reference pairs from Sharma, Wu and Dalal (2005), table 1.
var sharmaPairs = []struct {
	a, b cie.Lab
	de   float64
}{
	{cie.Lab{L: 50, A: 2.6772, B: -79.7751}, cie.Lab{L: 50, A: 0, B: -82.7485}, 2.0425},
	{cie.Lab{L: 50, A: 3.1571, B: -77.2803}, cie.Lab{L: 50, A: 0, B: -82.7485}, 2.8615},
	{cie.Lab{L: 50, A: 2.8361, B: -74.0200}, cie.Lab{L: 50, A: 0, B: -82.7485}, 3.4412},
	{cie.Lab{L: 50, A: -1.3802, B: -84.2814}, cie.Lab{L: 50, A: 0, B: -82.7485}, 1.0000},
	{cie.Lab{L: 50, A: -1.1848, B: -84.8006}, cie.Lab{L: 50, A: 0, B: -82.7485}, 1.0000},
	{cie.Lab{L: 50, A: -0.9009, B: -85.5211}, cie.Lab{L: 50, A: 0, B: -82.7485}, 1.0000},
	{cie.Lab{L: 50, A: 0, B: 0}, cie.Lab{L: 50, A: -1, B: 2}, 2.3669},
	{cie.Lab{L: 50, A: -1, B: 2}, cie.Lab{L: 50, A: 0, B: 0}, 2.3669},
	{cie.Lab{L: 50, A: 2.4900, B: -0.0010}, cie.Lab{L: 50, A: -2.4900, B: 0.0009}, 7.1792},
	{cie.Lab{L: 50, A: 2.4900, B: -0.0010}, cie.Lab{L: 50, A: -2.4900, B: 0.0010}, 7.1792},
	{cie.Lab{L: 50, A: 2.4900, B: -0.0010}, cie.Lab{L: 50, A: -2.4900, B: 0.0011}, 7.2195},
	{cie.Lab{L: 50, A: 2.4900, B: -0.0010}, cie.Lab{L: 50, A: -2.4900, B: 0.0012}, 7.2195},
	{cie.Lab{L: 50, A: -0.0010, B: 2.4900}, cie.Lab{L: 50, A: 0.0009, B: -2.4900}, 4.8045},
	{cie.Lab{L: 50, A: 2.5, B: 0}, cie.Lab{L: 73, A: 25, B: -18}, 27.1492},
	{cie.Lab{L: 50, A: 2.5, B: 0}, cie.Lab{L: 61, A: -5, B: 29}, 22.8977},
	{cie.Lab{L: 50, A: 2.5, B: 0}, cie.Lab{L: 56, A: -27, B: -3}, 31.9030},
	{cie.Lab{L: 50, A: 2.5, B: 0}, cie.Lab{L: 58, A: 24, B: 15}, 19.4535},
	{cie.Lab{L: 50, A: 2.5, B: 0}, cie.Lab{L: 50, A: 3.1736, B: 0.5854}, 1.0000},
	{cie.Lab{L: 60.2574, A: -34.0099, B: 36.2677}, cie.Lab{L: 60.4626, A: -34.1751, B: 39.4387}, 1.2644},
	{cie.Lab{L: 63.0109, A: -31.0961, B: -5.8663}, cie.Lab{L: 62.8187, A: -29.7946, B: -4.0864}, 1.2630},
	{cie.Lab{L: 61.2901, A: 3.7196, B: -5.3901}, cie.Lab{L: 61.4292, A: 2.2480, B: -4.9620}, 1.8731},
	{cie.Lab{L: 35.0831, A: -44.1164, B: 3.7933}, cie.Lab{L: 35.0232, A: -40.0716, B: 1.5901}, 1.8645},
	{cie.Lab{L: 22.7233, A: 20.0904, B: -46.6940}, cie.Lab{L: 23.0331, A: 14.9730, B: -42.5619}, 2.0373},
	{cie.Lab{L: 36.4612, A: 47.8580, B: 18.3852}, cie.Lab{L: 36.2715, A: 50.5065, B: 21.2231}, 1.4146},
	{cie.Lab{L: 90.8027, A: -2.0831, B: 1.4410}, cie.Lab{L: 91.1528, A: -1.6435, B: 0.0447}, 1.4441},
	{cie.Lab{L: 90.9257, A: -0.5406, B: -0.9208}, cie.Lab{L: 88.6381, A: -0.8985, B: -0.7239}, 1.5381},
	{cie.Lab{L: 6.7747, A: -0.2908, B: -2.4247}, cie.Lab{L: 5.8714, A: -0.0985, B: -2.2286}, 0.6377},
	{cie.Lab{L: 2.0776, A: 0.0795, B: -1.1350}, cie.Lab{L: 0.9033, A: -0.0636, B: -0.5514}, 0.9082},
}

func TestCIEDE2000Sharma(t *testing.T) {
	for i, p := range sharmaPairs {
		de, err := CIEDE2000(p.a, p.b)
		require.NoError(t, err)
		assert.InDelta(t, p.de, de, 1e-4, "pair %d: %v %v", i+1, p.a, p.b)
	}
}

func randomLab(rnd *rand.Rand) cie.Lab {
	return cie.Lab{L: rnd.Float64() * 100, A: rnd.Float64()*255 - 128, B: rnd.Float64()*255 - 128}
}

func TestCIEDE2000Properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for range 2000 {
		a, b := randomLab(rnd), randomLab(rnd)
		ab, err := CIEDE2000(a, b)
		require.NoError(t, err)
		ba, err := CIEDE2000(b, a)
		require.NoError(t, err)
		assert.Equal(t, ab, ba, "symmetry for %v %v", a, b)
		assert.GreaterOrEqual(t, ab, 0.0)

		aa, err := CIEDE2000(a, a)
		require.NoError(t, err)
		assert.Equal(t, 0.0, aa)
	}
}

func TestCIEDE2000Weights(t *testing.T) {
	a, b := cie.Lab{L: 50, A: 2.5, B: 0}, cie.Lab{L: 73, A: 25, B: -18}
	unit, err := CIEDE2000(a, b)
	require.NoError(t, err)
	textile, err := CIEDE2000Weighted(a, b, 2, 1, 1)
	require.NoError(t, err)
	assert.Less(t, textile, unit)

	_, err = CIEDE2000Weighted(a, b, 0, 1, 1)
	assert.ErrorIs(t, err, cie.ErrInvalidColorValue)
	_, err = CIEDE2000Weighted(a, b, 1, math.NaN(), 1)
	assert.ErrorIs(t, err, cie.ErrInvalidColorValue)
}

func TestCIEDE2000Invalid(t *testing.T) {
	for _, bad := range []cie.Lab{{L: math.NaN(), A: 0, B: 0}, {L: 50, A: math.Inf(1), B: 0}, {L: 50, A: 0, B: math.Inf(-1)}} {
		_, err := CIEDE2000(bad, cie.Lab{L: 50, A: 0, B: 0})
		assert.ErrorIs(t, err, cie.ErrInvalidColorValue)
		_, err = CIEDE2000(cie.Lab{L: 50, A: 0, B: 0}, bad)
		assert.ErrorIs(t, err, cie.ErrInvalidColorValue)
	}
}

func TestRGB(t *testing.T) {
	de, err := RGB(cie.RGB{200, 50, 50}, cie.RGB{200, 50, 50})
	require.NoError(t, err)
	assert.Equal(t, 0.0, de)

	de, err = RGB(cie.White, cie.Black)
	require.NoError(t, err)
	assert.Greater(t, de, 50.0)
	assert.InDelta(t, 100, de, 1e-3)

	_, err = RGB(cie.RGB{0, 0, 300}, cie.Black)
	assert.ErrorIs(t, err, cie.ErrInvalidColorValue)
}

func TestRGBMatchesColorful(t *testing.T) {
	pairs := [][2]cie.RGB{
		{{200, 50, 50}, {190, 60, 40}},
		{{10, 120, 200}, {30, 100, 220}},
		{{250, 250, 10}, {240, 200, 30}},
		{{90, 90, 90}, {100, 95, 90}},
	}
	for _, p := range pairs {
		de, err := RGB(p[0], p[1])
		require.NoError(t, err)
		c1 := toColorful(p[0])
		c2 := toColorful(p[1])
		assert.InDelta(t, c1.DistanceCIEDE2000(c2)*100, de, 0.05, "%v %v", p[0], p[1])
	}
}

func toColorful(c cie.RGB) colorful.Color {
	r, g, b := c.Normalized()
	return colorful.Color{R: r, G: g, B: b}
}

func TestSimple(t *testing.T) {
	a, b := cie.Lab{L: 50, A: 0, B: 0}, cie.Lab{L: 53, A: 4, B: 0}
	de, err := CIE76(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 5, de, 1e-12)

	de94, err := CIE94(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 5, de94, 1e-12)

	de94, err = CIE94(cie.Lab{L: 50, A: 40, B: 0}, cie.Lab{L: 50, A: 44, B: 0})
	require.NoError(t, err)
	assert.InDelta(t, 4/2.8, de94, 1e-9)

	_, err = CIE76(cie.Lab{L: math.NaN(), A: 0, B: 0}, b)
	assert.ErrorIs(t, err, cie.ErrInvalidColorValue)
}

func ExampleRGB() {
	de, _ := RGB(cie.RGB{200, 50, 50}, cie.RGB{200, 50, 50})
	fmt.Println(de)
	// Output: 0
}
