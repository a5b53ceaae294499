// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"math"

	"cogentcore.org/core/base/errors"
	"golang.org/x/exp/constraints"
)

// ErrInvalidColorValue is the kind of error returned for color
// components that are non-finite or outside their declared range.
var ErrInvalidColorValue = errors.New("invalid color value")

// ValueError reports an invalid color component. It unwraps
// to [ErrInvalidColorValue].
type ValueError struct {

	// Field names the offending component, such as "RGB.G".
	Field string

	// Value is the offending value.
	Value float64
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%v: %s = %g", ErrInvalidColorValue, e.Field, e.Value)
}

func (e *ValueError) Unwrap() error { return ErrInvalidColorValue }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
