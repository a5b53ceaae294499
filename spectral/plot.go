// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectral

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// PlotOptions are the rendering options for [Plot].
type PlotOptions struct {

	// Width and Height are the image size in pixels.
	Width, Height int

	// Margin is the blank border around the plot area in pixels.
	Margin int

	// LineWidth is the stroke width of the curve in pixels.
	LineWidth float32

	// Line is the curve color; the area under the curve is filled
	// with the same color at reduced opacity.
	Line color.RGBA

	// Background is the image background.
	Background color.Color
}

// DefaultPlotOptions returns 400x200 plot options with a gray curve.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Width:      400,
		Height:     200,
		Margin:     16,
		LineWidth:  2,
		Line:       color.RGBA{90, 90, 90, 255},
		Background: color.White,
	}
}

// Plot renders the spectrum on grid g as a PNG image: reflectance
// 0-1 on the vertical axis against wavelength on the horizontal axis,
// with the area under the curve filled.
func Plot(w io.Writer, g Grid, s Spectrum, opts PlotOptions) error {
	if err := g.Check(s); err != nil {
		return err
	}
	if g.Len() < 2 {
		return fmt.Errorf("spectral.Plot: need at least 2 samples, got %d", g.Len())
	}
	if opts.Width <= 2*opts.Margin || opts.Height <= 2*opts.Margin {
		return fmt.Errorf("spectral.Plot: image %dx%d too small for margin %d", opts.Width, opts.Height, opts.Margin)
	}
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	m := float32(opts.Margin)
	pw := float32(opts.Width) - 2*m
	ph := float32(opts.Height) - 2*m
	lo, hi := g.Range()
	pts := make([][2]float32, g.Len())
	for i := range pts {
		r := float32(min(max(s[i], 0), 1))
		if math.IsNaN(s[i]) {
			r = 0
		}
		pts[i] = [2]float32{
			m + pw*float32((g.At(i)-lo)/(hi-lo)),
			m + ph*(1-r),
		}
	}
	base := m + ph

	axis := image.NewUniform(color.RGBA{200, 200, 200, 255})
	draw.Draw(img, image.Rect(opts.Margin, int(base), opts.Width-opts.Margin, int(base)+1), axis, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(opts.Margin, opts.Margin, opts.Margin+1, int(base)+1), axis, image.Point{}, draw.Src)

	fill := opts.Line
	fill.R, fill.G, fill.B, fill.A = fill.R/5, fill.G/5, fill.B/5, fill.A/5
	z := vector.NewRasterizer(opts.Width, opts.Height)
	z.MoveTo(pts[0][0], base)
	for _, p := range pts {
		z.LineTo(p[0], p[1])
	}
	z.LineTo(pts[len(pts)-1][0], base)
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{})

	line := image.NewUniform(opts.Line)
	for i := 1; i < len(pts); i++ {
		z.Reset(opts.Width, opts.Height)
		strokeSegment(z, pts[i-1], pts[i], opts.LineWidth)
		z.Draw(img, img.Bounds(), line, image.Point{})
	}
	return png.Encode(w, img)
}

// strokeSegment adds the quad covering the segment p-q with width w.
func strokeSegment(z *vector.Rasterizer, p, q [2]float32, w float32) {
	dx, dy := q[0]-p[0], q[1]-p[1]
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*w/2, dx/l*w/2
	z.MoveTo(p[0]+nx, p[1]+ny)
	z.LineTo(q[0]+nx, q[1]+ny)
	z.LineTo(q[0]-nx, q[1]-ny)
	z.LineTo(p[0]-nx, p[1]-ny)
	z.ClosePath()
}
