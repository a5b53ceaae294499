// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mix

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/mattn/go-shellwords"
)

// ErrInvalidDropCount is the kind of error returned for negative
// or malformed drop counts.
var ErrInvalidDropCount = errors.New("invalid drop count")

// DropCountError reports an invalid drop count for a pigment.
// It unwraps to [ErrInvalidDropCount].
type DropCountError struct {
	Name  string
	Count int
}

func (e *DropCountError) Error() string {
	return fmt.Sprintf("%v: %q has %d drops", ErrInvalidDropCount, e.Name, e.Count)
}

func (e *DropCountError) Unwrap() error { return ErrInvalidDropCount }

// DropCounts maps pigment names to the number of drops added.
type DropCounts map[string]int

// Names returns the pigment names in sorted order.
func (d DropCounts) Names() []string {
	return slices.Sorted(maps.Keys(d))
}

// Total returns the sum of the positive counts.
func (d DropCounts) Total() int {
	t := 0
	for _, n := range d {
		if n > 0 {
			t += n
		}
	}
	return t
}

// Validate returns a [*DropCountError] for the first negative count
// in name order.
func (d DropCounts) Validate() error {
	for _, name := range d.Names() {
		if n := d[name]; n < 0 {
			return &DropCountError{Name: name, Count: n}
		}
	}
	return nil
}

// String returns the counts as space separated name=count pairs in
// name order, quoting names that contain spaces. The result can be
// read back with [ParseDropCounts].
func (d DropCounts) String() string {
	var sb strings.Builder
	for i, name := range d.Names() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		n := d[name]
		if strings.ContainsAny(name, " \t'\"") {
			name = strconv.Quote(name)
		}
		fmt.Fprintf(&sb, "%s=%d", name, n)
	}
	return sb.String()
}

// ParseDropCounts parses shell style words of the form name=count,
// such as `red=3 "hansa yellow"=2`. Repeated names add up.
func ParseDropCounts(s string) (DropCounts, error) {
	words, err := shellwords.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("mix.ParseDropCounts: %w", err)
	}
	d := DropCounts{}
	for _, w := range words {
		i := strings.LastIndex(w, "=")
		if i < 0 || strings.TrimSpace(w[:i]) == "" {
			return nil, fmt.Errorf("%w: %q is not name=count", ErrInvalidDropCount, w)
		}
		n, err := strconv.Atoi(strings.TrimSpace(w[i+1:]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidDropCount, w, err)
		}
		d[strings.TrimSpace(w[:i])] += n
	}
	return d, nil
}
