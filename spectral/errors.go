// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectral

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// ErrGridMismatch is the kind of error returned when a spectrum does
// not have one sample per wavelength of its grid.
var ErrGridMismatch = errors.New("spectrum does not match wavelength grid")

// GridMismatchError reports the expected and actual sample counts.
// It unwraps to [ErrGridMismatch].
type GridMismatchError struct {
	Want, Got int
}

func (e *GridMismatchError) Error() string {
	return fmt.Sprintf("%v: want %d samples, got %d", ErrGridMismatch, e.Want, e.Got)
}

func (e *GridMismatchError) Unwrap() error { return ErrGridMismatch }
