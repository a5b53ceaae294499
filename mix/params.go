// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mix

import (
	"fmt"
	"math"
	"strings"
)

// Model selects how pigment reflectances combine.
type Model int32

const (
	// Multiplicative multiplies the pigment reflectances, each raised
	// to its share of the drops scaled by the saturation of the total.
	// The result is a weighted geometric mean of the pigments that
	// darkens toward the plain mean as drops are added.
	Multiplicative Model = iota

	// KubelkaMunk averages the single-constant K/S ratios of the
	// pigments weighted by their share of the drops.
	KubelkaMunk

	// Layered multiplies the pigment reflectances, each raised to the
	// saturation of its own drop count regardless of the other
	// pigments. Adding any pigment never brightens the mix.
	Layered
)

func (m Model) String() string {
	switch m {
	case Multiplicative:
		return "multiplicative"
	case KubelkaMunk:
		return "kubelka-munk"
	case Layered:
		return "layered"
	}
	return fmt.Sprintf("Model(%d)", int32(m))
}

// ParseModel returns the model with the given name.
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "multiplicative":
		return Multiplicative, nil
	case "kubelka-munk", "km":
		return KubelkaMunk, nil
	case "layered":
		return Layered, nil
	}
	return 0, fmt.Errorf("unknown mixing model %q", s)
}

// Params are the tuning parameters of a [Mixer].
type Params struct {

	// DarkeningRate in (0, 1] is the fraction of the remaining
	// distance to the pure pigments covered by each drop.
	// At 1 a single drop already gives the full mix.
	DarkeningRate float64

	// MinFloor in (0, 1) is the lowest reflectance a mix can reach
	// at any wavelength.
	MinFloor float64

	// Model is the combination model.
	Model Model
}

// DefaultParams returns the default mixing parameters.
func DefaultParams() Params {
	return Params{DarkeningRate: 0.5, MinFloor: 0.01, Model: Multiplicative}
}

// Validate returns an error if a parameter is out of range.
func (p Params) Validate() error {
	if math.IsNaN(p.DarkeningRate) || p.DarkeningRate <= 0 || p.DarkeningRate > 1 {
		return fmt.Errorf("mix: darkening rate %v is not in (0, 1]", p.DarkeningRate)
	}
	if math.IsNaN(p.MinFloor) || p.MinFloor <= 0 || p.MinFloor >= 1 {
		return fmt.Errorf("mix: minimum floor %v is not in (0, 1)", p.MinFloor)
	}
	if p.Model < Multiplicative || p.Model > Layered {
		return fmt.Errorf("mix: unknown model %v", p.Model)
	}
	return nil
}
