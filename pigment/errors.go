// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pigment

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// ErrUnknownPigment is the kind of error returned for pigment
// names that are not in the palette.
var ErrUnknownPigment = errors.New("unknown pigment")

// UnknownError reports a pigment lookup miss. It unwraps to
// [ErrUnknownPigment].
type UnknownError struct {

	// Name is the name that was looked up.
	Name string

	// Suggestions are the most similar known names, best first.
	Suggestions []string
}

func (e *UnknownError) Error() string {
	msg := fmt.Sprintf("%v %q", ErrUnknownPigment, e.Name)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}
	return msg
}

func (e *UnknownError) Unwrap() error { return ErrUnknownPigment }

// suggestThreshold is the minimum Levenshtein similarity for a
// known name to be suggested.
const suggestThreshold = 0.5

// suggest returns up to three of the known names most similar to name.
func suggest(name string, known []string) []string {
	type scored struct {
		name string
		sim  float64
	}
	lev := metrics.NewLevenshtein()
	var cands []scored
	for _, k := range known {
		if sim := strutil.Similarity(name, k, lev); sim >= suggestThreshold {
			cands = append(cands, scored{k, sim})
		}
	}
	slices.SortStableFunc(cands, func(a, b scored) int { return cmp.Compare(b.sim, a.sim) })
	var out []string
	for i := 0; i < len(cands) && i < 3; i++ {
		out = append(out, cands[i].name)
	}
	return out
}
