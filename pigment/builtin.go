// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pigment

import "slices"

// builtinWavelengths are the sample wavelengths of the built-in pigments.
var builtinWavelengths = []float64{400, 450, 500, 550, 600, 650, 700}

// Builtin returns the built-in pigment definitions: the red, yellow and
// blue primaries of the mixing exercise plus green and white.
// Each call returns fresh copies.
func Builtin() []Source {
	defs := []struct {
		name, label string
		refl        []float64
	}{
		{"red", "Bengal Rose (PR169)", []float64{0.15, 0.20, 0.25, 0.30, 0.85, 0.95, 0.98}},
		{"yellow", "Hansa Yellow (PY3)", []float64{0.05, 0.08, 0.45, 0.85, 0.90, 0.92, 0.93}},
		{"green", "Phthalo Green (PG7)", []float64{0.10, 0.15, 0.90, 0.95, 0.20, 0.15, 0.10}},
		{"blue", "Phthalo Blue (PB15)", []float64{0.90, 0.95, 0.20, 0.15, 0.10, 0.05, 0.05}},
		{"white", "Titanium White (PW6)", []float64{0.88, 0.92, 0.93, 0.93, 0.93, 0.93, 0.93}},
	}
	srcs := make([]Source, len(defs))
	for i, d := range defs {
		srcs[i] = Source{Name: d.name, Label: d.label, Wavelengths: slices.Clone(builtinWavelengths), Reflectances: d.refl}
	}
	return srcs
}
