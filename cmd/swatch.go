// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"cogentcore.org/paintmix/cie"
	"github.com/muesli/termenv"
)

// swatch returns a block of the color followed by a space, or
// nothing if [Stdout] does not support colors.
func swatch(rgb [3]int) string {
	out := termenv.NewOutput(Stdout)
	if out.Profile == termenv.Ascii {
		return ""
	}
	return out.String("    ").Background(out.Color(cie.RGB(rgb).Hex())).String() + " "
}

// describe returns the color as a swatch, hex code and channels.
func describe(rgb [3]int) string {
	c := cie.RGB(rgb)
	return swatch(rgb) + c.Hex() + " " + c.String()
}
