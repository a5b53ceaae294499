// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
)

// RGB is an 8-bit sRGB color, with each channel in 0-255.
// It marshals to JSON as a three element array.
type RGB [3]int

var (
	// White is the sRGB white point.
	White = RGB{255, 255, 255}

	// Black is the sRGB black point.
	Black = RGB{0, 0, 0}
)

var rgbNames = [3]string{"R", "G", "B"}

// Validate returns a [ValueError] for the first channel outside 0-255.
func (c RGB) Validate() error {
	for i, v := range c {
		if v < 0 || v > 255 {
			return &ValueError{Field: "RGB." + rgbNames[i], Value: float64(v)}
		}
	}
	return nil
}

// Normalized returns the channels scaled to 0-1.
func (c RGB) Normalized() (r, g, b float64) {
	return float64(c[0]) / 255, float64(c[1]) / 255, float64(c[2]) / 255
}

// AsRGBA returns the color as an opaque [color.RGBA].
// Channels are clamped to 0-255.
func (c RGB) AsRGBA() color.RGBA {
	return color.RGBA{uint8(clamp(c[0], 0, 255)), uint8(clamp(c[1], 0, 255)), uint8(clamp(c[2], 0, 255)), 255}
}

// Hex returns the color in #rrggbb form.
func (c RGB) Hex() string {
	rgba := c.AsRGBA()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c[0], c[1], c[2])
}

// ParseRGB parses a color given as "r,g,b" (0-255 integers,
// optionally wrapped in rgb(...) or [...]) or as a #rrggbb hex string.
// The result is validated.
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	s = strings.TrimPrefix(s, "rgb")
	s = strings.Trim(s, "()[] ")
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("cie.ParseRGB: expected 3 channels in %q, got %d", s, len(parts))
	}
	var c RGB
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return RGB{}, fmt.Errorf("cie.ParseRGB: channel %s: %w", rgbNames[i], err)
		}
		c[i] = v
	}
	return c, c.Validate()
}

func parseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, errors.New("cie.ParseRGB: hex colors must have the form #rrggbb, not " + s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("cie.ParseRGB: %w", err)
	}
	return RGB{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}, nil
}
