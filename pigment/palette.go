// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pigment

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/paintmix/spectral"
	"github.com/jinzhu/copier"
)

// Palette is an immutable set of pigments sampled on a common grid.
// A Palette is safe for concurrent use.
type Palette struct {
	grid     spectral.Grid
	pigments map[string]*Pigment
	names    []string
}

// NewPalette returns a palette of the given sources resampled onto g.
// Names must be unique after normalization.
func NewPalette(g spectral.Grid, sources ...Source) (*Palette, error) {
	if g.Len() == 0 {
		return nil, fmt.Errorf("pigment.NewPalette: empty grid")
	}
	p := &Palette{grid: g, pigments: make(map[string]*Pigment, len(sources))}
	for _, s := range sources {
		pg, err := newPigment(s, g)
		if err != nil {
			return nil, err
		}
		if _, dup := p.pigments[pg.Name]; dup {
			return nil, fmt.Errorf("pigment.NewPalette: duplicate pigment %q", pg.Name)
		}
		p.pigments[pg.Name] = pg
	}
	for name := range p.pigments {
		p.names = append(p.names, name)
	}
	slices.Sort(p.names)
	slog.Debug("built pigment palette", "pigments", len(p.names), "grid", g)
	return p, nil
}

// NewBuiltin returns a palette of the [Builtin] pigments on g.
func NewBuiltin(g spectral.Grid) (*Palette, error) {
	return NewPalette(g, Builtin()...)
}

// With returns a new palette on the same grid holding the pigments of p
// followed by the given sources, which replace any of the same name.
func (p *Palette) With(sources ...Source) (*Palette, error) {
	replaced := make(map[string]bool, len(sources))
	for _, s := range sources {
		replaced[NormalizeName(s.Name)] = true
	}
	all := slices.DeleteFunc(p.Sources(), func(s Source) bool { return replaced[NormalizeName(s.Name)] })
	return NewPalette(p.grid, append(all, sources...)...)
}

// Grid returns the wavelength grid all spectra of the palette share.
func (p *Palette) Grid() spectral.Grid { return p.grid }

// Len returns the number of pigments.
func (p *Palette) Len() int { return len(p.names) }

// Names returns the normalized pigment names in sorted order.
func (p *Palette) Names() []string { return slices.Clone(p.names) }

// Has reports whether the palette holds a pigment of the given name.
func (p *Palette) Has(name string) bool {
	_, ok := p.pigments[NormalizeName(name)]
	return ok
}

// Pigment returns the pigment of the given name, or an [*UnknownError].
// The result is shared and must not be modified.
func (p *Palette) Pigment(name string) (*Pigment, error) {
	pg, ok := p.pigments[NormalizeName(name)]
	if !ok {
		return nil, &UnknownError{Name: name, Suggestions: suggest(NormalizeName(name), p.names)}
	}
	return pg, nil
}

// Spectrum returns a copy of the reflectance of the named pigment.
func (p *Palette) Spectrum(name string) (spectral.Spectrum, error) {
	pg, err := p.Pigment(name)
	if err != nil {
		return nil, err
	}
	return pg.Spectrum.Clone(), nil
}

// All returns the pigments in name order.
// The results are shared and must not be modified.
func (p *Palette) All() []*Pigment {
	out := make([]*Pigment, len(p.names))
	for i, n := range p.names {
		out[i] = p.pigments[n]
	}
	return out
}

// Sources returns deep copies of the pigment definitions in name order.
func (p *Palette) Sources() []Source {
	out := make([]Source, len(p.names))
	for i, n := range p.names {
		errors.Log(copier.CopyWithOption(&out[i], &p.pigments[n].Source, copier.Option{DeepCopy: true}))
	}
	return out
}
